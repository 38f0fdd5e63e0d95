package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aac-tools/f2html/packages/core/config"
	"github.com/aac-tools/f2html/packages/logging"
	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag   string
	logLevelFlag string
	noColorFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "f2html",
	Short: "Render AAC field values and call AAC endpoints.",
	Long: `f2html renders typed AAC field values (booleans, timestamps, hashed
secrets, passwords...) into the strings shown on generated pages, and
issues blocking requests against AAC endpoints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code := ExitUsageError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		stop()
		os.Exit(code)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadRuntime reads the config and builds the logger shared by commands.
// Logs go to stderr so stdout only carries command output.
func loadRuntime(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, nil, withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}

	flags := &config.Config{LogLevel: logLevelFlag}
	if noColorFlag {
		flags.NoColor = config.BoolPtr(true)
	}
	cfg = cfg.Merge(flags)

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, withExitCode(ExitConfigError, err)
	}
	return cfg, logger, nil
}

func newRegistry(cfg *config.Config) (*serialize.Registry, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}
	return serialize.NewRegistry(
		serialize.WithLocation(loc),
		serialize.WithTimeLayout(cfg.TimeLayout),
	), nil
}
