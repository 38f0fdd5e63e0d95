package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aac-tools/f2html/packages/fields"
	"github.com/aac-tools/f2html/packages/output"
	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render every field of a JSON field document",
	Long: `Render the typed fields of a JSON document.

The document holds an array of {"name", "type", "value"} objects, by default
under "fields". Use --path to point at a nested array.

Examples:
  f2html render agent.json
  f2html render response.json --path data.agent.fields -o json
  f2html render agent.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: renderCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	pathFlag    string
	outputFlag  string
	verboseFlag bool
	watchFlag   bool
)

func init() {
	renderCmd.Flags().StringVar(&pathFlag, "path", fields.DefaultPath, "Path of the field array inside the document")
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", "console", "Output format (console, json)")
	renderCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show field types")
	renderCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-render when the file changes")
}

func renderCommand(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	formatter := output.New(outputFlag, cmd.OutOrStdout(), verboseFlag, cfg.GetNoColor())
	file := args[0]

	if err := renderFile(formatter, registry, file); err != nil {
		if !watchFlag {
			return err
		}
		formatter.FormatError(err)
	}

	if !watchFlag {
		return nil
	}

	return watchFile(cmd, logger, file, func() {
		if err := renderFile(formatter, registry, file); err != nil {
			formatter.FormatError(err)
		}
	})
}

func renderFile(formatter output.Formatter, registry *serialize.Registry, file string) error {
	doc, err := os.ReadFile(file)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	list, err := fields.Load(doc, pathFlag)
	if err != nil {
		return withExitCode(ExitParseError, err)
	}

	rendered, err := fields.Render(registry, list)
	if err != nil {
		return withExitCode(ExitRenderError, err)
	}

	return formatter.FormatFields(file, rendered)
}

// watchFile calls onChange after writes to file settle, until the command's
// context is cancelled or the watcher closes. onChange runs on the watching
// goroutine, so renders never overlap and none start after return.
func watchFile(cmd *cobra.Command, logger *slog.Logger, file string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var (
		timer    *time.Timer
		debounce <-chan time.Time
	)
	done := cmd.Context().Done()

	for {
		select {
		case <-done:
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounceDelay)
			} else {
				timer.Reset(WatchDebounceDelay)
			}
			debounce = timer.C
		case <-debounce:
			debounce = nil
			logger.Debug("field document changed", "file", file)
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
