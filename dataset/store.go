package dataset

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema creates the records table on first open
const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	label      TEXT NOT NULL,
	dims       INTEGER NOT NULL,
	vector     TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_records_label ON records(label);
`

// Store is an SQLite backed collection of labeled descriptor vectors,
// used for accumulating training sets across many extraction runs.
// Vectors are stored in the same tab delimited text form the file based
// records use.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the store database at the given path
func OpenStore(path string) (*Store, error) {

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)

	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Put inserts a labeled vector and returns its record id
func (s *Store) Put(label string, vector []float64) (int64, error) {

	res, err := s.db.Exec(
		`INSERT INTO records (label, dims, vector) VALUES (?, ?, ?)`,
		label, len(vector), formatVector(vector))

	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// Get returns the record with the given id
func (s *Store) Get(id int64) (Record, error) {

	var label, text string

	err := s.db.QueryRow(
		`SELECT label, vector FROM records WHERE id = ?`, id).
		Scan(&label, &text)

	if err != nil {
		return Record{}, err
	}

	vector, err := parseVector(text)

	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", id, err)
	}

	return Record{Label: label, Vector: vector}, nil
}

// List returns all records in insertion order
func (s *Store) List() ([]Record, error) {

	rows, err := s.db.Query(
		`SELECT label, vector FROM records ORDER BY id`)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var records []Record

	for rows.Next() {
		var label, text string

		if err := rows.Scan(&label, &text); err != nil {
			return nil, err
		}

		vector, err := parseVector(text)

		if err != nil {
			return nil, err
		}

		records = append(records, Record{Label: label, Vector: vector})
	}

	return records, rows.Err()
}

// Count returns the number of stored records
func (s *Store) Count() (int, error) {

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)

	return n, err
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}
