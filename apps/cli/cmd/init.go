package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aac-tools/f2html/packages/core/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default config file",
	Long: `Write the default settings to .f2html.yaml in dir (default: the current
directory). An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: initCommand,
}

var forceInit bool

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.ConfigFilenames[0])

	if _, err := os.Stat(path); err == nil && !forceInit {
		return withExitCode(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return withExitCode(ExitConfigError, err)
	}

	if err := config.DefaultConfig().SaveConfig(path); err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("writing config: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	return nil
}
