package fs

import (
	"path"
	"sort"
	"strings"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

type alias struct {
	prefix string
	target string
}

// Resolver rewrites aliased import specifiers to paths rooted at "./".
type Resolver struct {
	root    string
	aliases []alias
}

// NewResolver creates a Resolver from the resolve settings.
// Aliases are matched longest prefix first.
func NewResolver(cfg domain.ResolveSettings) *Resolver {
	aliases := make([]alias, 0, len(cfg.Aliases))
	for prefix, target := range cfg.Aliases {
		aliases = append(aliases, alias{prefix: prefix, target: target})
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].prefix) != len(aliases[j].prefix) {
			return len(aliases[i].prefix) > len(aliases[j].prefix)
		}
		return aliases[i].prefix < aliases[j].prefix
	})

	root := cfg.Root
	if root == "" {
		root = "."
	}
	return &Resolver{root: root, aliases: aliases}
}

// ResolvePath returns p with its alias expanded. Unaliased paths are returned unchanged.
func (r *Resolver) ResolvePath(p string) string {
	for _, a := range r.aliases {
		rest, ok := strings.CutPrefix(p, a.prefix)
		if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
			continue
		}
		resolved := path.Join(r.root, a.target, rest)
		if resolved == "." {
			return "./"
		}
		if resolved == ".." || strings.HasPrefix(resolved, "../") {
			return resolved
		}
		return "./" + resolved
	}
	return p
}
