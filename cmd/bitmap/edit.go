package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bitmap/internal/config"
	"github.com/vovakirdan/tui-bitmap/internal/platform/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the full-screen editor",
	Long: `Open the editor in a full-screen terminal UI.

Type commands on the bottom line and press enter. The image is redrawn
after every command using the palette from the configuration file.

Controls:
  enter         - Run the command line
  up/down       - Recall previous lines
  ctrl+l        - Clear the command line
  f1            - Show or hide the command list
  esc/ctrl+c    - Quit

Examples:
  bitmap edit
  bitmap edit --no-history`,
	Args: cobra.NoArgs,
	Run:  runEdit,
}

func runEdit(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: edit needs a terminal; use 'bitmap run' for scripts")
		os.Exit(1)
	}

	cfg, logger := mustLoadConfig(config.Overrides{})

	store := openHistory(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	session := newSession(cfg, logger, store, "tui")

	if err := tui.Run(session, tui.ModelConfig{Palette: cfg.Palette}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
