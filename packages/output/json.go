package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/aac-tools/f2html/packages/fields"
	"github.com/aac-tools/f2html/packages/serialize"
)

// JSONOutput represents a rendered field document
type JSONOutput struct {
	Source string            `json:"source,omitempty"`
	Fields []fields.Rendered `json:"fields"`
	Time   string            `json:"time"`
}

// JSONError is written instead of JSONOutput when rendering fails
type JSONError struct {
	Error string `json:"error"`
}

// JSONFormatter formats rendered fields as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatFields(source string, rendered []fields.Rendered) error {
	if rendered == nil {
		rendered = []fields.Rendered{}
	}
	return f.encode(JSONOutput{
		Source: source,
		Fields: rendered,
		Time:   time.Now().Format(time.RFC3339),
	})
}

func (f *JSONFormatter) FormatTypes(tags []serialize.Tag) error {
	return f.encode(map[string][]serialize.Tag{"types": tags})
}

func (f *JSONFormatter) FormatError(err error) {
	_ = f.encode(JSONError{Error: err.Error()})
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
