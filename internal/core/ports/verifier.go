package ports

// OutputVerifier compares build output against a checked-in list of expected files.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type OutputVerifier interface {
	// BuiltFiles returns the sorted file names matching pattern.
	BuiltFiles(pattern string) ([]string, error)
	// Verify reports every difference between the files matching pattern and the expected list.
	Verify(expected, pattern string) error
	// WriteExpected overwrites the expected list with the files matching pattern.
	WriteExpected(expected, pattern string) error
}
