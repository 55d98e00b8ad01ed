package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"adcheck/internal/evaluate"
)

// ResultStore persists evaluation runs, one row per aircraft x directive.
type ResultStore interface {
	InsertRun(runID string, results []evaluate.FleetResult) error
}

type resultStore struct {
	db *sql.DB
}

// InsertRun writes all outcomes of one evaluation run in a single
// transaction. Row order follows the fleet and directive input order.
func (s *resultStore) InsertRun(runID string, results []evaluate.FleetResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO evaluation_results (
		run_id, aircraft_model, serial_number, modifications, directive_id, outcome
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		mods, err := json.Marshal(r.Aircraft.Modifications)
		if err != nil {
			return fmt.Errorf("failed to encode modifications: %w", err)
		}
		for _, o := range r.Outcomes {
			if _, err := stmt.Exec(
				runID,
				r.Aircraft.Model,
				r.Aircraft.SerialNumber,
				string(mods),
				o.DirectiveID,
				o.Outcome.String(),
			); err != nil {
				return fmt.Errorf("failed to insert result for %s: %w", o.DirectiveID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
