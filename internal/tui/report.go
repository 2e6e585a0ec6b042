package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/runoshun/freewipe/internal/domain"
)

// statusColumn is the index of the status column in ReportTable.
const statusColumn = 1

// ReportTable renders the per-drive results of a run report.
func ReportTable(styles Styles, r *domain.RunReport) string {
	rows := make([][]string, 0, len(r.Drives))
	for _, d := range r.Drives {
		errText := ""
		if d.Err != nil {
			errText = d.Err.Error()
		}
		rows = append(rows, []string{
			d.Drive.Root,
			string(d.Status),
			d.Duration.Round(time.Second).String(),
			errText,
		})
	}

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers("Drive", "Status", "Duration", "Error").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeader
			case col != statusColumn:
				return styles.TableCell
			case r.Drives[row].Status == domain.DriveStatusFailed:
				return styles.Failure
			default:
				return styles.Success
			}
		})
	return t.String()
}

// Report prints a run report: when it ran, the executable, the drive table
// and the summary counts.
func (p *Presenter) Report(r *domain.RunReport) {
	var b strings.Builder
	fmt.Fprintf(&b, "Started:    %s\n", r.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(&b, "Finished:   %s\n", r.FinishedAt.Local().Format(time.DateTime))
	fmt.Fprintf(&b, "Executable: %s\n", r.Executable)
	if r.DryRun {
		b.WriteString(p.styles.Muted.Render("(dry run)") + "\n")
	}
	if len(r.Drives) == 0 {
		b.WriteString(p.styles.Muted.Render("No drives were visited.") + "\n")
	} else {
		b.WriteString(ReportTable(p.styles, r) + "\n")
	}
	ok, failed := r.Counts()
	fmt.Fprintf(&b, "%d succeeded, %d failed\n", ok, failed)
	_, _ = fmt.Fprint(p.out, b.String())
}
