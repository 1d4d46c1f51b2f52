package domain

// InaboxSentinel is the --extensions value that selects the in-a-box component set.
const InaboxSentinel = "inabox"

// InaboxComponents is the predeclared set of components usable inside ads.
var InaboxComponents = []string{
	"amp-ad-exit",
	"amp-analytics",
	"amp-anim",
	"amp-animation",
	"amp-audio",
	"amp-bind",
	"amp-carousel",
	"amp-fit-text",
	"amp-font",
	"amp-form",
	"amp-img",
	"amp-layout",
	"amp-lightbox",
	"amp-list",
	"amp-mustache",
	"amp-position-observer",
	"amp-selector",
	"amp-social-share",
	"amp-video",
}

// SelectionFlags are the command line flags that restrict which components are built.
type SelectionFlags struct {
	// Extensions is the raw comma separated --extensions value. Empty means not given.
	Extensions string
	// ExtensionsBare reports that --extensions was given without a value.
	ExtensionsBare bool
	// ExtensionsFrom is the path of a file listing components.
	ExtensionsFrom  string
	NoComponents    bool
	CoreRuntimeOnly bool
}

// Restricted reports whether any flag narrows the selection below "all components".
func (f SelectionFlags) Restricted() bool {
	return f.ExtensionsBare || f.Extensions != "" || f.ExtensionsFrom != "" || f.NoComponents || f.CoreRuntimeOnly
}

// Dedupe appends each of more to names unless already present, keeping first-seen order.
// Empty names are dropped.
func Dedupe(names []string, more ...string) []string {
	seen := make(map[string]struct{}, len(names)+len(more))
	out := make([]string, 0, len(names)+len(more))
	for _, group := range [][]string{names, more} {
		for _, n := range group {
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
