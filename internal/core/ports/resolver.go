package ports

// PathResolver resolves import specifiers to repository-relative paths.
type PathResolver interface {
	// ResolvePath returns the resolved form of path.
	ResolvePath(path string) string
}
