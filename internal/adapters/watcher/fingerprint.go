package watcher

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bento/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprints)(nil)

// Fingerprints remembers the xxhash digest of every file it has seen.
// Editors often rewrite a file without changing it; those writes do not count as changes.
type Fingerprints struct {
	mu      sync.Mutex
	digests map[string]uint64
}

// NewFingerprints creates an empty fingerprint store.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{digests: make(map[string]uint64)}
}

// Changed reports whether path's content differs from the last recorded digest and records the new one.
// A missing file counts as changed and its digest is forgotten.
func (f *Fingerprints) Changed(path string) (bool, error) {
	sum, err := digest(path)
	if os.IsNotExist(err) {
		f.Forget(path)
		return true, nil
	}
	if err != nil {
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, seen := f.digests[path]
	f.digests[path] = sum
	return !seen || prev != sum, nil
}

// Forget drops the recorded digest of path.
func (f *Fingerprints) Forget(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.digests, path)
}

func digest(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from the watcher
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
