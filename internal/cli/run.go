package cli

import (
	"github.com/spf13/cobra"

	"adcheck/internal/database"
)

var runCmd = &cobra.Command{
	Use:   "run [documents...]",
	Short: "Extract, evaluate and verify in one pass",
	Long: `Runs the full pipeline: extracts rules from the given documents (or the
configured documents directory), evaluates the fleet against them and checks
the built-in verification cases. Verification failures are reported but do
not fail the command.`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cmd.Println("STEP 1: EXTRACTING APPLICABILITY RULES")
	directives, err := extractDocuments(cmd, args)
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	cmd.Println("\nSTEP 2: EVALUATING AIRCRAFT CONFIGURATIONS")
	if err := evaluateDirectives(cmd, db, directives); err != nil {
		return err
	}

	cmd.Println("\nSTEP 3: VERIFICATION AGAINST EXPECTED RESULTS")
	verifyDirectives(cmd, directives)

	return nil
}
