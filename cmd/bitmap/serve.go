package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bitmap/internal/config"
	"github.com/vovakirdan/tui-bitmap/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bitmap SSH server",
	Long: `Start an SSH server that gives every connection its own editor.

Each SSH connection gets a private image; nothing is shared between users.
When history is enabled every connection is journaled as ssh:<user>.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bitmap/ssh_host_ed25519

Examples:
  bitmap serve                           # Listen on :23235 with auto-generated key
  bitmap serve --ssh :2222               # Listen on port 2222
  bitmap serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, logger := mustLoadConfig(config.Overrides{
		SSHAddress: flagSSHAddr,
		HostKey:    flagHostKey,
	})

	store := openHistory(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		MaxWidth:    cfg.Editor.MaxWidth,
		MaxHeight:   cfg.Editor.MaxHeight,
		Palette:     cfg.Palette,
	}, store, logger.WithPrefix("bitmap-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting bitmap SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
