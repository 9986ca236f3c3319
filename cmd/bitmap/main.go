// bitmap is a text-driven raster editor: it reads one-letter commands
// and paints a grid of coloured letters.
//
// Usage:
//
//	bitmap                   - Edit from stdin (same as bitmap run)
//	bitmap run [file]        - Run commands from stdin or a script file
//	bitmap edit              - Interactive full-screen editor
//	bitmap serve             - Start SSH server for remote editing
//	bitmap history           - Show the command journal
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.bitmap, ./configs)
//	--db <path>         - History database path (default: ~/.bitmap/history.db)
//	--log-level <level> - debug, info, warn or error
//	--no-history        - Do not journal commands
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bitmap/internal/config"
	"github.com/vovakirdan/tui-bitmap/internal/editor"
	"github.com/vovakirdan/tui-bitmap/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLogLevel   string
	flagNoHistory  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bitmap",
	Short: "bitmap - a text-driven raster editor",
	Long: `bitmap edits an image made of coloured letters using one-line commands.

Available commands:
  run      - Read commands from stdin or a script file
  edit     - Full-screen editor
  serve    - Start SSH server for remote editing
  history  - Show the command journal

Examples:
  bitmap
  bitmap run drawing.txt
  echo "I 5 6\nL 1 3 A\nS" | bitmap run
  bitmap edit
  bitmap serve --ssh :2222
  bitmap history --stats`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record commands in the history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// mustLoadConfig loads the configuration, applies global flags and builds
// the process logger. It exits on error.
func mustLoadConfig(overrides config.Overrides) (config.Config, *log.Logger) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	overrides.DBPath = flagDBPath
	overrides.LogLevel = flagLogLevel
	overrides.NoHistory = flagNoHistory
	cfg.ApplyOverrides(overrides)

	level, err := cfg.LogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q: %v\n", cfg.Log.Level, err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bitmap",
		Level:           level,
	})
	return cfg, logger
}

// openHistory opens the history database when journaling is enabled.
// Failures are logged and the editor continues without a journal.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.History.DBPath, "error", err)
		return nil
	}
	return store
}

// newSession builds an editor session for source, journaled to store
// when it is not nil.
func newSession(cfg config.Config, logger *log.Logger, store *storage.Store, source string) *editor.Session {
	opts := []editor.Option{
		editor.WithSource(source),
		editor.WithLogger(logger),
		editor.WithMaxDimension(cfg.Editor.MaxWidth, cfg.Editor.MaxHeight),
	}

	if store != nil {
		rec, err := storage.NewRecorder(store, source)
		if err != nil {
			logger.Warn("could not start history session", "error", err)
		} else {
			opts = append(opts, editor.WithRecorder(rec))
		}
	}

	return editor.NewSession(opts...)
}
