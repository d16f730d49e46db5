package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/mattn/go-isatty"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

var (
	taggedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	untaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// TableSink writes an aligned table for terminals
type TableSink struct{}

// Name returns the format name
func (TableSink) Name() string { return "table" }

// Write renders rows as a table; the VLAN column is colored when w is a terminal
func (TableSink) Write(w io.Writer, rows []entities.ReportRow) error {
	color := isTerminal(w)

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("PORT", "VLANS")
	for _, row := range rows {
		vlans := row.VLANs
		if color {
			vlans = colorize(vlans, taggedStyle.Render, untaggedStyle.Render)
		}
		table.AddRow(row.Port, vlans)
	}

	if _, err := fmt.Fprintln(w, table); err != nil {
		return errors.Annotate(err, "failed to write table")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// colorize styles the "T: ..." and "U: ..." segments of a summary
func colorize(summary string, tagged, untagged func(...string) string) string {
	untaggedAt := strings.Index(summary, "U: ")
	switch {
	case strings.HasPrefix(summary, "T: ") && untaggedAt > 0:
		return tagged(strings.TrimSpace(summary[:untaggedAt])) + " " + untagged(summary[untaggedAt:])
	case strings.HasPrefix(summary, "T: "):
		return tagged(summary)
	case untaggedAt == 0:
		return untagged(summary)
	default:
		return summary
	}
}
