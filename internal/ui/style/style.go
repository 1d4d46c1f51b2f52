// Package style holds the colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent  = lipgloss.Color("#E3572B")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#2F9E44")
	Failure = lipgloss.Color("#E03131")
	Caution = lipgloss.Color("#F08C00")
	Info    = lipgloss.Color("#1C7ED6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)
