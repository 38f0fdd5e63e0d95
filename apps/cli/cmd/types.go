package cmd

import (
	"github.com/aac-tools/f2html/packages/output"
	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported field types",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		formatter := output.New(typesOutputFlag, cmd.OutOrStdout(), false, cfg.GetNoColor())
		return formatter.FormatTypes(serialize.NewRegistry().Tags())
	},
}

var typesOutputFlag string

func init() {
	typesCmd.Flags().StringVarP(&typesOutputFlag, "output", "o", "console", "Output format (console, json)")
}
