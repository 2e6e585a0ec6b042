package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/runoshun/freewipe/internal/domain"
)

// DriveTable renders the drives as an ASCII table. Kind and capacity columns
// show "-" when the OS did not report them.
func DriveTable(styles Styles, drives []domain.Drive) string {
	rows := make([][]string, 0, len(drives))
	for _, d := range drives {
		kind, free, total := "-", "-", "-"
		if d.Kind != domain.DriveKindUnknown {
			kind = string(d.Kind)
		}
		if d.HasSpace {
			free = FormatBytes(d.FreeBytes)
			total = FormatBytes(d.TotalBytes)
		}
		rows = append(rows, []string{d.Root, kind, free, total})
	}

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers("Drive Letter", "Kind", "Free", "Total").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		})
	return t.String()
}
