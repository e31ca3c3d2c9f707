package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/encrypter15/Armitage-Market-Mirror/models"
)

// SQLiteStore persists listings in a single SQLite file. The file
// accumulates across runs; deleting it resets all history.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the backing file at path and ensures the
// schema exists. Safe to call at the start of every run.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %q: %w", path, err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return s, nil
}

// AUTOINCREMENT keeps ids strictly increasing and never reused, even after
// rows are removed administratively.
func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			site        TEXT    NOT NULL,
			title       TEXT    NOT NULL,
			price       REAL    NOT NULL DEFAULT 0,
			seller      TEXT    NOT NULL DEFAULT '',
			link        TEXT    NOT NULL DEFAULT '',
			match_score INTEGER NOT NULL DEFAULT 0,
			search_term TEXT    NOT NULL,
			timestamp   TEXT    NOT NULL
		)
	`)
	return err
}

// InsertMany appends all given listings, each receiving a fresh id. The
// batch is written in one transaction; a failed insert rolls back and is
// surfaced to the caller.
func (s *SQLiteStore) InsertMany(listings []*models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO listings (site, title, price, seller, link, match_score, search_term, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range listings {
		if _, err := stmt.Exec(
			l.Site, l.Title, l.Price, l.Seller, l.Link,
			l.MatchScore, l.SearchTerm, l.ScrapedAt.Format(time.RFC3339Nano),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("sqlite: insert listing %q: %w", l.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// ReadAll returns every persisted listing in insertion order.
func (s *SQLiteStore) ReadAll() ([]*models.Listing, error) {
	rows, err := s.db.Query(`
		SELECT id, site, title, price, seller, link, match_score, search_term, timestamp
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: read all: %w", err)
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		l := &models.Listing{}
		var ts string
		if err := rows.Scan(
			&l.ID, &l.Site, &l.Title, &l.Price, &l.Seller,
			&l.Link, &l.MatchScore, &l.SearchTerm, &ts,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			l.ScrapedAt = parsed
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
