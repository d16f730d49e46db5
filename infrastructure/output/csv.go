package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/juju/errors"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// CSVSink writes the two-column Port,VLANs report
type CSVSink struct{}

// Name returns the format name
func (CSVSink) Name() string { return "csv" }

// Write renders rows as CSV with a header line
func (CSVSink) Write(w io.Writer, rows []entities.ReportRow) error {
	return writeCSV(w, records(rows))
}

// PaddedCSVSink writes the CSV report with every column but the last padded
// to its widest cell, so the file also reads well in a terminal
type PaddedCSVSink struct{}

// Name returns the format name
func (PaddedCSVSink) Name() string { return "padded-csv" }

// Write renders rows as padded CSV
func (PaddedCSVSink) Write(w io.Writer, rows []entities.ReportRow) error {
	table := records(rows)
	widths := make([]int, len(header))
	for _, record := range table {
		for i, cell := range record {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, record := range table {
		for i := 0; i < len(record)-1; i++ {
			record[i] += strings.Repeat(" ", widths[i]-len(record[i]))
		}
	}
	return writeCSV(w, table)
}

func records(rows []entities.ReportRow) [][]string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, append([]string(nil), header...))
	for _, row := range rows {
		table = append(table, []string{row.Port, row.VLANs})
	}
	return table
}

func writeCSV(w io.Writer, table [][]string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.WriteAll(table); err != nil {
		return errors.Annotate(err, "failed to write CSV")
	}
	return nil
}
