package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/uuidprobe/uuidprobe/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses from the ledger",
	Long: `List the most recent analyses recorded in the MySQL ledger, newest
first. Requires history_dsn in the preferences file or the
UUIDPROBE_HISTORY_DSN environment variable.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.HistoryDSN == "" {
		return errors.New("no history ledger configured (set history_dsn or UUIDPROBE_HISTORY_DSN)")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	ledger, err := history.Open(cfg.HistoryDSN)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if err := ledger.EnsureSchema(ctx); err != nil {
		return err
	}
	entries, err := ledger.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No analyses recorded yet.")
		return nil
	}
	for _, e := range entries {
		cmd.Printf("%s  %-36s  %-19s  %s\n",
			e.AnalyzedAt.UTC().Format("2006-01-02 15:04:05"),
			e.Canonical, e.Verdict, e.Variant)
	}
	return nil
}
