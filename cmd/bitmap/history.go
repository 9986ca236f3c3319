package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bitmap/internal/config"
	"github.com/vovakirdan/tui-bitmap/internal/platform/tui"
	"github.com/vovakirdan/tui-bitmap/internal/storage"
)

var (
	flagHistoryLimit   int
	flagHistorySession int64
	flagHistoryStats   bool
	flagHistoryClear   bool
	flagHistoryTUI     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the command journal",
	Long: `Display recently executed commands from the history database.

The journal records the command text and its outcome; images are never
stored.

Examples:
  bitmap history
  bitmap history --limit 50
  bitmap history --session 3
  bitmap history --stats
  bitmap history --tui
  bitmap history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of commands to show")
	historyCmd.Flags().Int64Var(&flagHistorySession, "session", 0, "Show every command of one session")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show journal statistics")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole journal")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse sessions in a full-screen view")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig(config.Overrides{})

	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		err = store.ClearHistory()
		if err == nil {
			fmt.Println("History cleared.")
		}
	case flagHistoryStats:
		err = printStats(store)
	case flagHistoryTUI:
		w, h := 100, 30
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			w, h = tw, th
		}
		err = tui.RunHistory(store, w, h)
	case flagHistorySession > 0:
		var records []storage.CommandRecord
		records, err = store.SessionCommands(flagHistorySession)
		if err == nil {
			printCommands(records)
		}
	default:
		var records []storage.CommandRecord
		records, err = store.RecentCommands(flagHistoryLimit)
		if err == nil {
			printCommands(records)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printCommands(records []storage.CommandRecord) {
	if len(records) == 0 {
		fmt.Println("No commands recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-20s  %s\n", "Date", "Source", "Command", "Result")
	fmt.Printf("  %-16s  %-12s  %-20s  %s\n", "----", "------", "-------", "------")

	for _, r := range records {
		result := "ok"
		if !r.OK {
			result = r.Error
		}
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-12s  %-20s  %s\n", dateStr, r.Source, r.Line, result)
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("History")
	fmt.Println()
	fmt.Printf("  Sessions:  %d\n", stats.Sessions)
	fmt.Printf("  Commands:  %d\n", stats.Commands)
	fmt.Printf("  Failures:  %d\n", stats.Failures)
	if stats.TopTag != "" {
		fmt.Printf("  Most used: %s (%d)\n", stats.TopTag, stats.TopTagCount)
	}
	if !stats.LastUsed.IsZero() {
		fmt.Printf("  Last used: %s\n", stats.LastUsed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
