// Package report assembles evaluation results into tables, JSON exports and
// verification summaries. Verification mismatches are reported as data,
// never as process errors.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"adcheck/internal/evaluate"
	"adcheck/internal/models"
)

// Table is one evaluation run over a fleet: one row per aircraft, one
// outcome column per directive, both in input order.
type Table struct {
	DirectiveIDs []string
	Rows         []evaluate.FleetResult
}

// BuildTable evaluates every aircraft against every directive.
func BuildTable(fleet []models.AircraftConfig, directives []models.Directive) Table {
	ids := make([]string, len(directives))
	for i, d := range directives {
		ids[i] = d.ID
	}
	return Table{
		DirectiveIDs: ids,
		Rows:         evaluate.EvaluateFleet(fleet, directives),
	}
}

// Render writes the table in aligned columns.
func (t Table) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Aircraft Model\tMSN\tModifications")
	for _, id := range t.DirectiveIDs {
		fmt.Fprintf(tw, "\t%s", id)
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows {
		mods := "None"
		if len(row.Aircraft.Modifications) > 0 {
			mods = strings.Join(row.Aircraft.Modifications, ", ")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s", row.Aircraft.Model, row.Aircraft.SerialNumber, mods)
		for _, o := range row.Outcomes {
			fmt.Fprintf(tw, "\t%s", o.Outcome)
		}
		fmt.Fprintln(tw)
	}
}

// resultRow is the JSON export shape of one table row.
type resultRow struct {
	AircraftModel string                    `json:"aircraft_model"`
	SerialNumber  int                       `json:"serial_number"`
	Modifications []string                  `json:"modifications"`
	Outcomes      map[string]models.Outcome `json:"outcomes"`
}

// WriteJSON exports the table, one row object per aircraft with outcomes
// keyed by directive id.
func (t Table) WriteJSON(path string) error {
	rows := make([]resultRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		outcomes := make(map[string]models.Outcome, len(row.Outcomes))
		for _, o := range row.Outcomes {
			outcomes[o.DirectiveID] = o.Outcome
		}
		mods := row.Aircraft.Modifications
		if mods == nil {
			mods = []string{}
		}
		rows = append(rows, resultRow{
			AircraftModel: row.Aircraft.Model,
			SerialNumber:  row.Aircraft.SerialNumber,
			Modifications: mods,
			Outcomes:      outcomes,
		})
	}
	return writeJSONFile(path, rows)
}

// WriteRulesJSON exports the extracted directive records.
func WriteRulesJSON(path string, directives []models.Directive) error {
	return writeJSONFile(path, directives)
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
