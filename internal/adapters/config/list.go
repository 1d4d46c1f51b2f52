package config

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ComponentListReader = (*ListReader)(nil)

// ListReader reads component names from plain text files.
// Names are separated by newlines or commas; '#' starts a comment.
type ListReader struct{}

// NewListReader creates a new ListReader.
func NewListReader() *ListReader {
	return &ListReader{}
}

// ReadComponentList returns the names listed in path in file order.
func (r *ListReader) ReadComponentList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		err = zerr.Wrap(err, domain.ErrComponentListReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		for name := range strings.SplitSeq(line, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		err = zerr.Wrap(err, domain.ErrComponentListReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}
	return names, nil
}
