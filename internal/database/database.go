package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite connection holding extracted directives and
// evaluation results.
type DB struct {
	db *sql.DB
}

// New creates and initializes a new database connection
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite applies pragmas suited to a batch writer with occasional
// concurrent reads
func optimizeSQLite(db *sql.DB) error {
	// WAL mode allows evaluation reads while an extraction run is writing
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA cache_size=-64000"); err != nil {
		return fmt.Errorf("failed to set cache size: %w", err)
	}

	// NORMAL is safe under WAL and faster than FULL
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA temp_store=MEMORY"); err != nil {
		return fmt.Errorf("failed to set temp_store: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// initSchema creates the database schema if it doesn't exist
func (d *DB) initSchema() error {
	directivesSchema := `CREATE TABLE IF NOT EXISTS directives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_file TEXT NOT NULL UNIQUE,
		directive_id TEXT NOT NULL,
		authority TEXT NOT NULL,
		record TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	resultsSchema := `CREATE TABLE IF NOT EXISTS evaluation_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		aircraft_model TEXT NOT NULL,
		serial_number INTEGER NOT NULL,
		modifications TEXT NOT NULL,
		directive_id TEXT NOT NULL,
		outcome TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_directives_directive_id ON directives(directive_id)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluation_results_run_id ON evaluation_results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluation_results_directive_id ON evaluation_results(directive_id)`,
	}

	if _, err := d.db.Exec(directivesSchema); err != nil {
		return fmt.Errorf("failed to create directives table: %w", err)
	}

	if _, err := d.db.Exec(resultsSchema); err != nil {
		return fmt.Errorf("failed to create evaluation_results table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// DirectiveStore returns the store for extracted directive records.
func (d *DB) DirectiveStore() DirectiveStore {
	return &directiveStore{db: d.db}
}

// ResultStore returns the store for evaluation runs.
func (d *DB) ResultStore() ResultStore {
	return &resultStore{db: d.db}
}
