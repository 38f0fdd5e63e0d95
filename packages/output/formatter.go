package output

import (
	"io"
	"strings"

	"github.com/aac-tools/f2html/packages/fields"
	"github.com/aac-tools/f2html/packages/serialize"
)

// Formatter displays rendered fields, the list of known tags and errors.
type Formatter interface {
	FormatFields(source string, rendered []fields.Rendered) error
	FormatTypes(tags []serialize.Tag) error
	FormatError(err error)
}

// New picks a formatter by name. Anything other than "json" is the console.
func New(name string, w io.Writer, verbose, noColor bool) Formatter {
	if strings.ToLower(name) == "json" {
		return NewJSONFormatter(JSONWithWriter(w))
	}
	return NewConsoleFormatter(
		WithWriter(w),
		WithVerbose(verbose),
		WithNoColor(noColor),
	)
}
