package output

import "github.com/charmbracelet/lipgloss"

// Per-platform accent colors for registry listings.
var platformColors = map[string]lipgloss.Color{
	"darwin":  "#4ccbf1", // light blue
	"linux":   "#f5c800", // yellow
	"windows": "#5084f3", // blue
}

var (
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4dca7d"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// ColorPlatform styles a platform heading; the current host is highlighted.
func ColorPlatform(name string, current bool) string {
	if current {
		return currentStyle.Render(name + " (current)")
	}
	if c, ok := platformColors[name]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(name)
	}
	return name
}

// Dim renders de-emphasized text.
func Dim(s string) string {
	return dimStyle.Render(s)
}
