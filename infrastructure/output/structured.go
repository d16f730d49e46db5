package output

import (
	"encoding/json"
	"io"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// YAMLSink writes the rows as a YAML sequence
type YAMLSink struct{}

// Name returns the format name
func (YAMLSink) Name() string { return "yaml" }

// Write renders rows as YAML
func (YAMLSink) Write(w io.Writer, rows []entities.ReportRow) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(nonNil(rows)); err != nil {
		return errors.Annotate(err, "failed to write YAML")
	}
	return errors.Annotate(encoder.Close(), "failed to write YAML")
}

// JSONSink writes the rows as an indented JSON array
type JSONSink struct{}

// Name returns the format name
func (JSONSink) Name() string { return "json" }

// Write renders rows as JSON
func (JSONSink) Write(w io.Writer, rows []entities.ReportRow) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(nonNil(rows)); err != nil {
		return errors.Annotate(err, "failed to write JSON")
	}
	return nil
}

func nonNil(rows []entities.ReportRow) []entities.ReportRow {
	if rows == nil {
		return []entities.ReportRow{}
	}
	return rows
}
