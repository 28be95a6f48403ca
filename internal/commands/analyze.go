package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uuidprobe/uuidprobe"
	"github.com/uuidprobe/uuidprobe/history"
	"github.com/uuidprobe/uuidprobe/render"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <uuid>",
	Short: "Decode, classify and report on a UUID",
	Long: `Decode the canonical textual form into its six RFC 4122 fields, derive
the timestamp and clock sequence, classify variant and version, and print
the diagnostic report.

Exit status is 1 only for malformed input. An implausible UUID (for
example one whose version nibble is undefined) still exits 0: the
implausibility is the finding.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the findings record as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	findings, err := uuidprobe.Analyze(args[0], time.Now)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		cmd.Print(render.Text(findings, render.Options{NoColor: cfg.NoColor}))
	}

	recordAnalysis(findings)
	return nil
}

// recordAnalysis appends the findings to the MySQL ledger when one is
// configured. Best effort: ledger trouble is logged, never surfaced as a
// command failure.
func recordAnalysis(f *uuidprobe.Findings) {
	if cfg.HistoryDSN == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ledger, err := history.Open(cfg.HistoryDSN)
	if err != nil {
		logger.Warn("history ledger unavailable", zap.Error(err))
		return
	}
	defer ledger.Close()

	if err := ledger.EnsureSchema(ctx); err != nil {
		logger.Warn("history schema check failed", zap.Error(err))
		return
	}
	if err := ledger.Record(ctx, f, time.Now()); err != nil {
		logger.Warn("history record failed", zap.Error(err))
		return
	}
	logger.Debug("analysis recorded",
		zap.String("canonical", f.Representations.Canonical),
		zap.String("verdict", f.VerdictName))
}
