// Package cli implements the adcheck command surface. Commands are thin:
// they wire configuration, storage and the report writer around the
// extraction and evaluation core.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adcheck/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "adcheck",
	Short: "Extract and evaluate Airworthiness Directive applicability rules",
	Long: `adcheck extracts structured applicability rules (models, serial-number
constraints, exclusion clauses) from FAA and EASA Airworthiness Directive
documents and evaluates whether specific aircraft configurations are subject
to them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configPath != "" {
			os.Setenv("ADCHECK_CONFIG_PATH", configPath)
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		initLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
}

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
