// Package commands implements the uuidprobe command set.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uuidprobe/uuidprobe/internal/config"
)

var (
	verbose    bool
	noColor    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "uuidprobe [uuid]",
	Short: "Forensic structural analysis of UUID strings",
	Long: `uuidprobe decodes the RFC 4122 bit layout of a textual UUID, classifies
its version and variant, reconstructs the embedded timestamp where one
exists, and reports field by field whether the value plausibly conforms
to the RFC or to known vendor conventions.

A structurally valid but implausible UUID is a normal finding, not an
error; only malformed input fails.

Examples:
  uuidprobe f47ac10b-58cc-4372-a567-0e02b2c3d479
  uuidprobe analyze --json 00000000-0000-0000-c000-000000000046
  uuidprobe formats f47ac10b-58cc-4372-a567-0e02b2c3d479`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable terminal styling")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the preferences file")
	rootCmd.PersistentPreRunE = setup

	rootCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the findings record as JSON")
}

// setup wires logging, the optional .env file and the preferences file
// before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; it only ever supplies overrides.
	_ = godotenv.Load()

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	var err error
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if configPath != "" || !os.IsNotExist(err) {
			return fmt.Errorf("loading preferences: %w", err)
		}
		cfg = &config.Config{}
	}
	cfg.ApplyEnv()
	if noColor {
		cfg.NoColor = true
	}

	logger.Debug("preferences loaded",
		zap.Bool("no_color", cfg.NoColor),
		zap.Bool("history_enabled", cfg.HistoryDSN != ""))
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

// SetVersionInfo records build metadata on the root command.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
