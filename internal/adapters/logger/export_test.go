package logger

// FormatError exposes the error chain formatting for tests.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
