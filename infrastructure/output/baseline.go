package output

import (
	"os"

	"github.com/juju/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffBaseline compares a rendered report with the report stored at path.
// It returns an empty string when both are identical.
func DiffBaseline(path string, rendered string) (string, error) {
	previous, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Annotatef(err, "failed to read baseline %s", path)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(rendered),
		FromFile: path,
		ToFile:   "current",
		Context:  1,
	})
	if err != nil {
		return "", errors.Annotate(err, "failed to diff against baseline")
	}
	return diff, nil
}
