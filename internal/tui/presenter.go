package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Presenter implements domain.Presenter interface.
var _ domain.Presenter = (*Presenter)(nil)

// Presenter writes styled human-readable output.
type Presenter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   Styles
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer, noColor bool) *Presenter {
	r := NewRenderer(out, noColor)
	return &Presenter{
		out:      out,
		renderer: r,
		styles:   DefaultStyles(r),
	}
}

// Step prints a progress message.
func (p *Presenter) Step(msg string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Step.Render("==>")+" "+msg)
}

// Warn prints a non-fatal problem.
func (p *Presenter) Warn(msg string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Warn.Render("warning:")+" "+msg)
}

// Banner prints msg in a ■ frame, preceded by a blank line.
func (p *Presenter) Banner(msg string) {
	lines := BannerLines(msg, BannerMinWidth)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.styles.BannerFrame.Render(lines[0]) + "\n")
	b.WriteString(p.styles.BannerText.Render(lines[1]) + "\n")
	b.WriteString(p.styles.BannerFrame.Render(lines[2]) + "\n")
	_, _ = io.WriteString(p.out, b.String())
}

// Drives prints the drive table.
func (p *Presenter) Drives(drives []domain.Drive) {
	if len(drives) == 0 {
		_, _ = fmt.Fprintln(p.out, p.styles.Muted.Render("No drives detected."))
		return
	}
	_, _ = fmt.Fprintln(p.out, DriveTable(p.styles, drives))
}

// Progress returns a progress bar bound to the presenter's output.
func (p *Presenter) Progress() domain.Progress {
	return NewProgressBar(p.out, p.renderer)
}

// Output returns the writer external commands stream to.
func (p *Presenter) Output() io.Writer {
	return p.out
}
