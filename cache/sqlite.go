package cache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/polycubes/voxel"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS polycubes (
		n                 INTEGER PRIMARY KEY,
		shape_count       INTEGER NOT NULL,
		data              BLOB NOT NULL,
		created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
`

// SQLite stores each level as one row of the polycubes table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases coherent
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load implements Store. A stored shape_count that disagrees with the decoded
// blob is reported as ErrCorrupt.
func (s *SQLite) Load(n int) ([]*voxel.Grid, error) {
	if err := checkLevel(n); err != nil {
		return nil, err
	}
	var (
		count int
		data  []byte
	)
	err := s.db.QueryRow(`SELECT shape_count, data FROM polycubes WHERE n = ?`, n).Scan(&count, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: query n=%d: %w", n, err)
	}
	shapes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cache: row n=%d: %w", n, err)
	}
	if len(shapes) != count {
		return nil, fmt.Errorf("cache: row n=%d: %w: %d shapes, header says %d", n, ErrCorrupt, len(shapes), count)
	}
	return shapes, nil
}

// Save implements Store.
func (s *SQLite) Save(n int, shapes []*voxel.Grid) error {
	if err := checkLevel(n); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO polycubes (n, shape_count, data) VALUES (?, ?, ?)`,
		n, len(shapes), Encode(shapes),
	)
	if err != nil {
		return fmt.Errorf("cache: store n=%d: %w", n, err)
	}
	return tx.Commit()
}

// Exists implements Store.
func (s *SQLite) Exists(n int) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM polycubes WHERE n = ?`, n).Scan(&one)
	return err == nil
}

// Levels lists the stored sizes in ascending order.
func (s *SQLite) Levels() ([]int, error) {
	rows, err := s.db.Query(`SELECT n FROM polycubes ORDER BY n`)
	if err != nil {
		return nil, fmt.Errorf("cache: list levels: %w", err)
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
