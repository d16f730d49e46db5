package output

import (
	"strings"

	"github.com/juju/errors"

	"github.com/carlosrabelo/vlanaudit/domain/ports"
)

var header = []string{"Port", "VLANs"}

var registry = []ports.RowSink{
	CSVSink{},
	PaddedCSVSink{},
	TableSink{},
	YAMLSink{},
	JSONSink{},
}

// Get returns the sink rendering the named format
func Get(format string) (ports.RowSink, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, sink := range registry {
		if sink.Name() == normalized {
			return sink, nil
		}
	}
	return nil, errors.NotFoundf("output format %q", format)
}

// Names lists the registered formats
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, sink := range registry {
		names = append(names, sink.Name())
	}
	return names
}
