package output

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/aac-tools/f2html/packages/fields"
	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithVerbose adds the field type next to each name
func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatFields(source string, rendered []fields.Rendered) error {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if source != "" {
		fmt.Fprintf(f.writer, "\n%s\n\n", bold("Rendering: "+source))
	}

	width := 0
	for _, r := range rendered {
		if n := utf8.RuneCountInString(r.Name); n > width {
			width = n
		}
	}

	for _, r := range rendered {
		name := fmt.Sprintf("%-*s", width, r.Name)
		if f.verbose {
			fmt.Fprintf(f.writer, "  %s %s %s\n", cyan(name), yellow("("+string(r.Tag)+")"), r.Value)
			continue
		}
		fmt.Fprintf(f.writer, "  %s  %s\n", cyan(name), r.Value)
	}

	if source != "" {
		fmt.Fprintf(f.writer, "\nFields: %d\n\n", len(rendered))
	}
	return nil
}

func (f *ConsoleFormatter) FormatTypes(tags []serialize.Tag) error {
	for _, t := range tags {
		fmt.Fprintln(f.writer, string(t))
	}
	return nil
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
