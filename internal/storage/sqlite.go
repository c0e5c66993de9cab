package storage

import (
	"database/sql"
	"fmt"

	"github.com/matsen/rxnpath/internal/reaction"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database holding a reaction catalog.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
// seq preserves catalog order, which decides first-match labels.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS reactions (
			seq INTEGER PRIMARY KEY,
			reactant TEXT NOT NULL,
			type TEXT NOT NULL,
			product TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_reactions_reactant ON reactions(reactant);
		CREATE INDEX IF NOT EXISTS idx_reactions_product ON reactions(product);
	`
	_, err := db.Exec(schema)
	return err
}

// RebuildReactions clears the reactions table and inserts reactions in order.
func (d *DB) RebuildReactions(reactions []reaction.Reaction) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reactions"); err != nil {
		return 0, fmt.Errorf("clearing reactions table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO reactions (seq, reactant, type, product)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing reactions insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range reactions {
		if _, err := stmt.Exec(i+1, r.Reactant, r.Type, r.Product); err != nil {
			return 0, fmt.Errorf("inserting reaction %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing reactions: %w", err)
	}
	return len(reactions), nil
}

// InsertReaction stores r after the last reaction and returns the new count.
func (d *DB) InsertReaction(r reaction.Reaction) (int, error) {
	if _, err := d.db.Exec(`
		INSERT INTO reactions (reactant, type, product)
		VALUES (?, ?, ?)
	`, r.Reactant, r.Type, r.Product); err != nil {
		return 0, fmt.Errorf("inserting reaction: %w", err)
	}
	return d.CountReactions()
}

// AllReactions returns every reaction in catalog order.
func (d *DB) AllReactions() ([]reaction.Reaction, error) {
	rows, err := d.db.Query(`
		SELECT seq, reactant, type, product
		FROM reactions
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reactions: %w", err)
	}
	defer rows.Close()

	return scanReactions(rows)
}

// CountReactions returns the number of stored reactions.
func (d *DB) CountReactions() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM reactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reactions: %w", err)
	}
	return count, nil
}

// scanReactions reads (seq, reactant, type, product) rows, trimming fields the
// same way as arrow-format lines.
func scanReactions(rows *sql.Rows) ([]reaction.Reaction, error) {
	var reactions []reaction.Reaction
	for rows.Next() {
		var seq int
		var r reaction.Reaction
		if err := rows.Scan(&seq, &r.Reactant, &r.Type, &r.Product); err != nil {
			return nil, fmt.Errorf("scanning reaction: %w", err)
		}
		r.Normalize()
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid reaction at seq %d: %w", seq, err)
		}
		reactions = append(reactions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reactions: %w", err)
	}
	return reactions, nil
}
