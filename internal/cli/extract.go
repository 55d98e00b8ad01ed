package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adcheck/internal/database"
	"adcheck/internal/models"
	"adcheck/internal/pipeline"
	"adcheck/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract [documents...]",
	Short: "Extract applicability rules from directive documents",
	Long: `Extracts structured applicability rules from the given documents, or from
every .pdf/.txt document in the configured documents directory when none are
given. Records are stored in the database and exported as JSON.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, err := extractDocuments(cmd, args)
	return err
}

// extractDocuments runs the extraction pipeline, persists the records and
// prints the extracted fields per document. Shared by extract and run.
func extractDocuments(cmd *cobra.Command, args []string) ([]models.Directive, error) {
	paths := args
	if len(paths) == 0 {
		discovered, err := pipeline.DiscoverDocuments(cfg.DocumentsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to list documents in %s: %w", cfg.DocumentsDir, err)
		}
		paths = discovered
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents found in %s", cfg.DocumentsDir)
	}

	directives := pipeline.ExtractAll(context.Background(), paths, cfg.Workers)

	for i, d := range directives {
		cmd.Printf("\nProcessing: %s\n", paths[i])
		cmd.Printf("  ID: %s\n", d.ID)
		cmd.Printf("  Authority: %s\n", d.Authority)
		cmd.Printf("  Models: %s\n", joinOrNone(d.Rules.Models))
		cmd.Printf("  Serial constraint: %s\n", describeConstraint(d.Rules.SerialConstraint))
		cmd.Printf("  Excluded if mods: %s\n", joinOrNone(d.Rules.ExcludedIfModifications))
		cmd.Printf("  Service bulletins: %s\n", joinOrNone(d.RelatedBulletins))
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.DirectiveStore().InsertBatch(directives); err != nil {
		return nil, fmt.Errorf("failed to store directives: %w", err)
	}

	if err := report.WriteRulesJSON(cfg.RulesJSON, directives); err != nil {
		return nil, err
	}
	cmd.Printf("\nStructured rules saved to: %s\n", cfg.RulesJSON)

	return directives, nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func describeConstraint(c models.SerialConstraint) string {
	switch c.Kind {
	case models.ConstraintRange:
		min, max := "-", "-"
		if c.Min != nil {
			min = fmt.Sprintf("%d", *c.Min)
		}
		if c.Max != nil {
			max = fmt.Sprintf("%d", *c.Max)
		}
		return fmt.Sprintf("MSN %s through %s", min, max)
	case models.ConstraintList:
		return fmt.Sprintf("MSN list %v", c.Values)
	default:
		return "all MSN"
	}
}
