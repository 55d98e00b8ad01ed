package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"adcheck/internal/database"
	"adcheck/internal/ingest"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously ingest directive documents",
	Long: `Watches the configured documents directory and extracts rules from new or
changed documents as they appear, committing records to the database in
batches. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	db, err := database.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	svc, err := ingest.New(ingest.Config{
		DocumentsDir:  cfg.DocumentsDir,
		Workers:       cfg.Workers,
		BatchSize:     cfg.BatchSize,
		FlushInterval: time.Duration(cfg.FlushInterval) * time.Second,
		RescanEvery:   time.Duration(cfg.RescanSeconds) * time.Second,
	}, db.DirectiveStore())
	if err != nil {
		return err
	}

	svc.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	svc.Stop()
	return nil
}
