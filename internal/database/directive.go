package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"adcheck/internal/models"
)

// DirectiveStore persists extracted directive records. Records are keyed
// by source file, so re-extracting a document replaces its previous record
// instead of duplicating it.
type DirectiveStore interface {
	InsertBatch(directives []models.Directive) error
	List() ([]models.Directive, error)
}

type directiveStore struct {
	db *sql.DB
}

// InsertBatch inserts one or more directive records in a single transaction
func (s *directiveStore) InsertBatch(directives []models.Directive) error {
	if len(directives) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO directives (
		source_file, directive_id, authority, record
	) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, d := range directives {
		record, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to encode directive %s: %w", d.ID, err)
		}
		if _, err := stmt.Exec(d.SourceFile, d.ID, string(d.Authority), string(record)); err != nil {
			return fmt.Errorf("failed to insert directive %s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List returns all stored directive records in insertion order.
func (s *directiveStore) List() ([]models.Directive, error) {
	rows, err := s.db.Query(`SELECT record FROM directives ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query directives: %w", err)
	}
	defer rows.Close()

	var directives []models.Directive
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan directive row: %w", err)
		}
		var d models.Directive
		if err := json.Unmarshal([]byte(record), &d); err != nil {
			return nil, fmt.Errorf("failed to decode directive record: %w", err)
		}
		directives = append(directives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate directive rows: %w", err)
	}

	return directives, nil
}
