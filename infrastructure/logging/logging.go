package logging

import (
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

// LevelFor maps the -v verbosity level to the root logger level.
// 1 enables debug messages, 2 raw block dumps (logged at INFO), 3 both.
func LevelFor(verbosity int) loggo.Level {
	switch verbosity {
	case 1, 3:
		return loggo.DEBUG
	case 2:
		return loggo.INFO
	default:
		return loggo.WARNING
	}
}

// Setup routes every vlanaudit logger to w at the level matching verbosity
func Setup(verbosity int, w io.Writer) error {
	if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(w, formatEntry)); err != nil {
		return errors.Annotate(err, "cannot replace default log writer")
	}
	if err := loggo.ConfigureLoggers(fmt.Sprintf("<root>=%s", LevelFor(verbosity))); err != nil {
		return errors.Annotate(err, "cannot configure loggers")
	}
	return nil
}

func formatEntry(entry loggo.Entry) string {
	return fmt.Sprintf("%s: %s %s", entry.Level, entry.Module, entry.Message)
}
