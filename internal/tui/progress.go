package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/freewipe/internal/domain"
)

// progressWidth is the bar width in columns.
const progressWidth = 40

// unknownStep is how many bytes pass between redraws when the total is unknown.
const unknownStep = 256 * 1024

// Ensure ProgressBar implements domain.Progress interface.
var _ domain.Progress = (*ProgressBar)(nil)

// ProgressBar draws a single-line byte progress bar, redrawn in place with
// a carriage return. Redraws happen only when the shown percentage changes.
// Fields are ordered to minimize memory padding.
type ProgressBar struct {
	out     io.Writer
	label   string
	bar     progress.Model
	total   int64
	done    int64
	lastPct int
	lastAt  int64
	active  bool
}

// NewProgressBar creates a progress bar writing to out.
func NewProgressBar(out io.Writer, r *lipgloss.Renderer) *ProgressBar {
	return &ProgressBar{
		out: out,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressWidth),
			progress.WithColorProfile(r.ColorProfile()),
		),
	}
}

// Start begins a transfer. total < 0 means the size is unknown.
func (p *ProgressBar) Start(label string, total int64) {
	p.label = label
	p.total = total
	p.done = 0
	p.lastPct = -1
	p.lastAt = 0
	p.active = true
	p.draw()
}

// Add advances the transfer by n bytes.
func (p *ProgressBar) Add(n int64) {
	if !p.active {
		return
	}
	p.done += n
	if p.total > 0 {
		if pct := p.percent(); pct != p.lastPct {
			p.draw()
		}
		return
	}
	if p.done-p.lastAt >= unknownStep {
		p.draw()
	}
}

// Finish draws the final state and ends the line.
func (p *ProgressBar) Finish() {
	if !p.active {
		return
	}
	p.draw()
	_, _ = fmt.Fprintln(p.out)
	p.active = false
}

func (p *ProgressBar) percent() int {
	if p.total <= 0 {
		return 0
	}
	pct := int(p.done * 100 / p.total)
	return min(pct, 100)
}

func (p *ProgressBar) draw() {
	p.lastAt = p.done
	if p.total <= 0 {
		_, _ = fmt.Fprintf(p.out, "\r%s %s", p.label, FormatBytes(uint64(p.done)))
		return
	}
	p.lastPct = p.percent()
	_, _ = fmt.Fprintf(p.out, "\r%s %s %s/%s",
		p.label,
		p.bar.ViewAs(float64(p.lastPct)/100),
		FormatBytes(uint64(p.done)),
		FormatBytes(uint64(p.total)),
	)
}
