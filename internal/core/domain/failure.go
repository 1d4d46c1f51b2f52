package domain

import (
	"fmt"
	"strings"
)

// ComponentFailure pairs a component with the error its build produced.
type ComponentFailure struct {
	Component string
	Err       error
}

// BuildFailures lists every component that failed during one aggregate build.
type BuildFailures []ComponentFailure

// Error implements the error interface.
func (f BuildFailures) Error() string {
	if len(f) == 1 {
		return fmt.Sprintf("%s: %v", f[0].Component, f[0].Err)
	}
	lines := make([]string, 0, len(f)+1)
	lines = append(lines, fmt.Sprintf("%d components failed", len(f)))
	for _, cf := range f {
		lines = append(lines, fmt.Sprintf("%s: %v", cf.Component, cf.Err))
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual component errors to errors.Is and errors.As.
func (f BuildFailures) Unwrap() []error {
	errs := make([]error, len(f))
	for i, cf := range f {
		errs[i] = cf.Err
	}
	return errs
}

// Components returns the names of the failed components.
func (f BuildFailures) Components() []string {
	names := make([]string, len(f))
	for i, cf := range f {
		names[i] = cf.Component
	}
	return names
}
