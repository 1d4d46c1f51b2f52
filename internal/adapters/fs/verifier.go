package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputVerifier = (*Verifier)(nil)

// Verifier compares the files produced by a build against an expected list.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// BuiltFiles returns the regular files matching pattern as sorted slash-separated paths.
func (v *Verifier) BuiltFiles(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob built files"), "pattern", pattern)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, filepath.ToSlash(m))
	}
	slices.Sort(files)
	return files, nil
}

// Verify checks that the files matching pattern are exactly those listed in expected.
// Every discrepancy is reported in the returned error.
func (v *Verifier) Verify(expected, pattern string) error {
	want, err := readExpected(expected)
	if err != nil {
		return err
	}
	got, err := v.BuiltFiles(pattern)
	if err != nil {
		return err
	}
	if len(got) == 0 {
		return zerr.With(domain.ErrNoBuiltFiles, "pattern", pattern)
	}

	var problems []error
	if len(got) != len(want) {
		err := zerr.Wrap(domain.ErrBuiltFileCountMismatch, fmt.Sprintf("built %d, expected %d", len(got), len(want)))
		problems = append(problems, zerr.With(zerr.With(err, "built", len(got)), "expected", len(want)))
	}
	for _, f := range want {
		if !slices.Contains(got, f) {
			problems = append(problems, zerr.With(zerr.Wrap(domain.ErrBuiltFileMissing, f), "file", f))
		}
	}
	for _, f := range got {
		if !slices.Contains(want, f) {
			problems = append(problems, zerr.With(zerr.Wrap(domain.ErrBuiltFileUnexpected, f), "file", f))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.Join(append([]error{domain.ErrBuildOutputMismatch}, problems...)...)
}

// WriteExpected records the files currently matching pattern as the expected list.
func (v *Verifier) WriteExpected(expected, pattern string) error {
	files, err := v.BuiltFiles(pattern)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expected), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExpectedOutputWriteFailed.Error()), "path", expected)
	}
	//nolint:gosec // the expected list is checked into the repository
	if err := os.WriteFile(expected, []byte(strings.Join(files, "\n")), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExpectedOutputWriteFailed.Error()), "path", expected)
	}
	return nil
}

// readExpected returns the unique, non-blank lines of the expected list.
func readExpected(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExpectedOutputReadFailed.Error()), "path", path)
	}
	var files []string
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !slices.Contains(files, line) {
			files = append(files, line)
		}
	}
	return files, nil
}
