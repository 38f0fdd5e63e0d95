package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <type> <value>",
	Short: "Render one value for a field type",
	Long: `Render a single value the way a field of the given type is displayed.

Values are strings unless --json is set, in which case the value is read as a
JSON literal and keeps its kind. This matters for bool: the string "0" is set
and renders "yes", the number 0 renders "no".

Examples:
  f2html format timestamp 1700000000
  f2html format sha256 e3b0c44298fc1c149afbf4c8996fb924
  f2html format bool 0 --json`,
	Args: cobra.ExactArgs(2),
	RunE: formatCommand,
}

var formatJSONFlag bool

func init() {
	formatCmd.Flags().BoolVar(&formatJSONFlag, "json", false, "Parse the value as a JSON literal")
}

func formatCommand(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	tag, err := serialize.ParseTag(args[0])
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	var value any = args[1]
	if formatJSONFlag {
		value, err = decodeLiteral(args[1])
		if err != nil {
			return withExitCode(ExitUsageError, err)
		}
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	out, err := registry.Format(tag, value)
	if err != nil {
		return withExitCode(ExitRenderError, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func decodeLiteral(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON value %q: %w", s, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON value %q: trailing data", s)
	}
	return v, nil
}
