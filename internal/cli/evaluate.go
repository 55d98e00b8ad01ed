package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"adcheck/internal/database"
	"adcheck/internal/fleet"
	"adcheck/internal/models"
	"adcheck/internal/report"
)

var fleetPath string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate aircraft configurations against stored directives",
	Long: `Evaluates a fleet (the built-in sample fleet, or one loaded with --fleet)
against every directive in the database, prints the result table and
persists the run.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&fleetPath, "fleet", "", "Path to a JSON fleet file (default: built-in sample fleet)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	db, err := database.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	directives, err := db.DirectiveStore().List()
	if err != nil {
		return err
	}
	return evaluateDirectives(cmd, db, directives)
}

// evaluateDirectives builds, prints and persists the evaluation table.
// Shared by evaluate and run.
func evaluateDirectives(cmd *cobra.Command, db *database.DB, directives []models.Directive) error {
	if len(directives) == 0 {
		return fmt.Errorf("no directives stored; run 'adcheck extract' first")
	}

	aircraft := fleet.Sample()
	if fleetPath != "" {
		loaded, err := fleet.Load(fleetPath)
		if err != nil {
			return err
		}
		aircraft = loaded
	}

	table := report.BuildTable(aircraft, directives)

	cmd.Println()
	table.Render(cmd.OutOrStdout())

	runID := uuid.NewString()
	if err := db.ResultStore().InsertRun(runID, table.Rows); err != nil {
		return fmt.Errorf("failed to persist evaluation run: %w", err)
	}

	if err := table.WriteJSON(cfg.ResultsJSON); err != nil {
		return err
	}
	cmd.Printf("\nResults saved to: %s (run %s)\n", cfg.ResultsJSON, runID)

	return nil
}
