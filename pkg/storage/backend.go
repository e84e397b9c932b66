// Package storage mirrors a dataset into an in-memory SQLite table so a
// primary-key lookup can be timed next to the in-process structures.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"algobench/pkg/common"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the database private to one connection and off disk.
const MemoryDSN = ":memory:"

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every pooled connection to :memory: would see its own empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	query := `
	CREATE TABLE IF NOT EXISTS people (
		id INTEGER PRIMARY KEY,
		city TEXT NOT NULL,
		experience INTEGER NOT NULL,
		remote INTEGER NOT NULL,
		salary INTEGER NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load inserts records in one transaction, replacing rows with equal ids.
func (s *SQLiteStore) Load(records []common.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO people (id, city, experience, remote, salary) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ID, r.City, r.Experience, r.Remote, r.Salary); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert id=%d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// Get looks a record up by primary key.
func (s *SQLiteStore) Get(id int) (common.Record, bool, error) {
	var r common.Record
	err := s.db.QueryRow(
		"SELECT id, city, experience, remote, salary FROM people WHERE id = ?", id,
	).Scan(&r.ID, &r.City, &r.Experience, &r.Remote, &r.Salary)
	if errors.Is(err, sql.ErrNoRows) {
		return common.Record{}, false, nil
	}
	if err != nil {
		return common.Record{}, false, fmt.Errorf("read id=%d: %w", id, err)
	}
	return r, true, nil
}

// Count returns the number of stored rows.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM people").Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
