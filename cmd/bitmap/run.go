package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bitmap/internal/config"
	"github.com/vovakirdan/tui-bitmap/internal/editor"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run editor commands from stdin or a file",
	Long: `Read commands one per line and print the results.

Without a file, commands are read from stdin. When stdin is a terminal a
prompt is shown before every line; piped input and script files run
without prompts, printing only command output and error messages.

Examples:
  bitmap run
  bitmap run drawing.txt
  printf 'I 5 6\nL 1 3 A\nS\n' | bitmap run`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func runRun(_ *cobra.Command, args []string) {
	cfg, logger := mustLoadConfig(config.Overrides{})

	var in io.Reader = os.Stdin
	source := "stdin"
	opts := editor.RunOptions{
		Prompt:      cfg.Editor.Prompt,
		Welcome:     cfg.Editor.Welcome,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		in = f
		source = filepath.Base(args[0])
		opts.Interactive = false
	}
	if !opts.Interactive {
		opts.Welcome = ""
	}

	store := openHistory(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	session := newSession(cfg, logger, store, source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("session started", "source", source, "interactive", opts.Interactive)
	err := editor.Run(ctx, session, in, os.Stdout, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", "source", source, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
