// Package selection decides which registered components a build covers.
package selection

import (
	"strings"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filter computes the selection set from command line flags.
type Filter struct {
	reader ports.ComponentListReader
}

// NewFilter creates a Filter reading --extensions_from files with reader.
func NewFilter(reader ports.ComponentListReader) *Filter {
	return &Filter{reader: reader}
}

// Select returns the unique component names to build, in first-seen order.
//
// Explicit names come first, then names read from the list file. Only when no
// flag restricts the selection and preBuild is false does it fall back to every
// registered component.
func (f *Filter) Select(reg *domain.Registry, flags domain.SelectionFlags, preBuild bool) ([]string, error) {
	var names []string

	if flags.ExtensionsBare {
		return nil, domain.ErrMissingComponentList
	}
	if flags.Extensions != "" {
		names = domain.Dedupe(names, parseList(flags.Extensions, reg)...)
	}

	if flags.ExtensionsFrom != "" {
		listed, err := f.reader.ReadComponentList(flags.ExtensionsFrom)
		if err != nil {
			return nil, zerr.With(err, "extensions_from", flags.ExtensionsFrom)
		}
		names = domain.Dedupe(names, listed...)
	}

	if !preBuild && !flags.Restricted() {
		names = domain.Dedupe(names, reg.Names()...)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// parseList splits a comma separated --extensions value, expanding the inabox sentinel.
// All whitespace is removed before splitting, so "amp a" names "ampa".
func parseList(value string, reg *domain.Registry) []string {
	if value == domain.InaboxSentinel {
		return reg.InaboxSet()
	}
	parts := strings.Split(strings.Join(strings.Fields(value), ""), ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
