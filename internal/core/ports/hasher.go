package ports

// Fingerprinter computes content fingerprints of files.
//
//go:generate mockgen -destination=mocks/fingerprinter_mock.go -package=mocks -source=hasher.go
type Fingerprinter interface {
	// Changed reports whether the content of path differs from the last time it was seen.
	// A path seen for the first time counts as changed.
	Changed(path string) (bool, error)
	// Forget drops the recorded fingerprint of path.
	Forget(path string)
}
