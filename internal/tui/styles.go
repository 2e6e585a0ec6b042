// Package tui renders freewipe's console output: banners, the drive table,
// progress bars and the exit prompt.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors defines the color palette.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains the lipgloss styles used for console output.
type Styles struct {
	Step        lipgloss.Style
	Warn        lipgloss.Style
	BannerFrame lipgloss.Style
	BannerText  lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	Muted       lipgloss.Style
	Prompt      lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
}

// NewRenderer creates a lipgloss renderer for w. With noColor set, all
// styling is reduced to plain text.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// DefaultStyles returns the default styles bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Step: r.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Warn: r.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		BannerFrame: r.NewStyle().
			Foreground(Colors.Secondary),

		BannerText: r.NewStyle().
			Bold(true),

		TableHeader: r.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			Padding(0, 1),

		TableCell: r.NewStyle().
			Padding(0, 1),

		Muted: r.NewStyle().
			Foreground(Colors.Muted),

		Prompt: r.NewStyle().
			Foreground(Colors.Success),

		Success: r.NewStyle().
			Foreground(Colors.Success).
			Padding(0, 1),

		Failure: r.NewStyle().
			Bold(true).
			Foreground(Colors.Error).
			Padding(0, 1),
	}
}
