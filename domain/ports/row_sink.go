package ports

import (
	"io"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// RowSink defines the port rendering report rows
type RowSink interface {
	Name() string
	Write(w io.Writer, rows []entities.ReportRow) error
}
