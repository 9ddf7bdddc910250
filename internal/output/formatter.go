package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wesleyorama2/dotconf/internal/schema"
	"github.com/wesleyorama2/dotconf/internal/tree"
)

// Formatter is responsible for formatting diagnostics and single values for
// the terminal
type Formatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	return &Formatter{
		NoColor: noColor,
		scheme:  SchemeFor(noColor),
	}
}

// FormatError formats a fatal error, naming its category.
func (f *Formatter) FormatError(err error) string {
	var label string
	switch {
	case errors.Is(err, tree.ErrStructuralConflict):
		label = "structural conflict"
	case errors.Is(err, schema.ErrValidation):
		label = "schema validation failed"
	default:
		label = "error"
	}

	return fmt.Sprintf("%s %s: %v\n", ErrorIcon(f.NoColor), f.scheme.Error.Sprint(label), err)
}

// FormatSuccess formats a success line.
func (f *Formatter) FormatSuccess(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s\n", SuccessIcon(f.NoColor), fmt.Sprintf(format, args...))
}

// FormatWarning formats a non-fatal warning line.
func (f *Formatter) FormatWarning(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s\n", WarningIcon(f.NoColor), f.scheme.Warning.Sprintf(format, args...))
}

// FormatValue formats a looked-up value: Scalars print as their raw text,
// Sections as compact JSON.
func (f *Formatter) FormatValue(v tree.Value) (string, error) {
	if s, ok := v.(tree.Scalar); ok {
		return string(s) + "\n", nil
	}
	data, err := MarshalJSON(v)
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// FormatSchema formats schema entries as an aligned two-column table.
// Types without a validation rule are marked as pass-through.
func (f *Formatter) FormatSchema(entries []schema.Entry) string {
	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}

	var buf strings.Builder
	for _, e := range entries {
		declared := f.scheme.Highlight.Sprint(e.Type)
		if !schema.Known(e.Type) {
			declared += " (not validated)"
		}
		buf.WriteString(fmt.Sprintf("%s%s  %s\n",
			f.scheme.Key.Sprint(e.Key), strings.Repeat(" ", width-len(e.Key)), declared))
	}
	return buf.String()
}
