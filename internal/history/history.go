// Package history persists interactive picker selections and serves the
// frequency counts the picker uses to rank repeat choices.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pick is one recorded selection.
type Pick struct {
	ID       string
	Text     string
	Query    string
	PickedAt time.Time
}

// Store provides persistence for picks.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts one pick with a fresh id.
func (s *Store) Record(text, query string) error {
	_, err := s.db.Exec(
		`INSERT INTO picks (id, text, query) VALUES (?, ?, ?)`,
		uuid.New().String(), text, query,
	)
	if err != nil {
		return fmt.Errorf("recording pick: %w", err)
	}
	return nil
}

// Recent returns the latest n picks, newest first.
func (s *Store) Recent(n int) ([]Pick, error) {
	rows, err := s.db.Query(
		`SELECT id, text, query, picked_at FROM picks ORDER BY picked_at DESC, rowid DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}
	defer rows.Close()

	var out []Pick
	for rows.Next() {
		var p Pick
		var pickedStr string
		if err := rows.Scan(&p.ID, &p.Text, &p.Query, &pickedStr); err != nil {
			return nil, fmt.Errorf("scanning pick: %w", err)
		}
		p.PickedAt, _ = time.Parse("2006-01-02 15:04:05", pickedStr)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Counts returns how many times each distinct text has been picked.
func (s *Store) Counts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT text, COUNT(*) FROM picks GROUP BY text`)
	if err != nil {
		return nil, fmt.Errorf("counting picks: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var text string
		var n int
		if err := rows.Scan(&text, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		out[text] = n
	}
	return out, rows.Err()
}

// SetLastQuery remembers the query of the most recent pick.
func (s *Store) SetLastQuery(query string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES ('last_query', ?, CURRENT_TIMESTAMP)`,
		query,
	)
	if err != nil {
		return fmt.Errorf("saving last query: %w", err)
	}
	return nil
}

// LastQuery returns the remembered query, or "" when none is stored.
func (s *Store) LastQuery() (string, error) {
	var q string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = 'last_query'`).Scan(&q)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading last query: %w", err)
	}
	return q, nil
}

// Clear deletes all recorded picks.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM picks`); err != nil {
		return fmt.Errorf("clearing picks: %w", err)
	}
	return nil
}
