// Package sqlite implements the SQLite-backed stash store used by pocket.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

var _ types.StashStore = (*Store)(nil)

// Store implements types.StashStore on a single SQLite file.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB

	// now is replaced in tests.
	now func() time.Time
}

// NewStore creates a detached Store; call Attach before use.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Attach creates dataDir if needed, opens the database and applies the schema.
func (s *Store) Attach(dataDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrStoreAttached
	}
	if strings.TrimSpace(dataDir) == "" {
		return types.ErrInvalidArgument.Wrap("data directory is empty")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.attached = false
	return err
}

// Push saves message as the newest entry.
func (s *Store) Push(message string) (types.StashEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.StashEntry{}, types.ErrStoreDetached
	}
	if strings.TrimSpace(message) == "" {
		return types.StashEntry{}, types.ErrInvalidArgument.Wrap("stash message is empty")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return types.StashEntry{}, fmt.Errorf("generating UUID v7: %w", err)
	}
	entry := types.StashEntry{
		ID:        id.String(),
		Message:   message,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	_, err = s.db.Exec(
		`INSERT INTO stash_entries (entry_id, seq, message, created_at)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM stash_entries), ?, ?)`,
		entry.ID, entry.Message, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.StashEntry{}, fmt.Errorf("saving stash entry: %w", err)
	}
	return entry, nil
}

// List returns every entry, newest first.
func (s *Store) List() ([]types.StashEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT entry_id, message, created_at FROM stash_entries ORDER BY seq DESC")
	if err != nil {
		return nil, fmt.Errorf("listing stash entries: %w", err)
	}
	defer rows.Close()

	entries := []types.StashEntry{}
	for rows.Next() {
		e, err := hydrateEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry at position without removing it.
func (s *Store) Get(position int) (types.StashEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.StashEntry{}, types.ErrStoreDetached
	}
	return entryAt(s.db, position)
}

// Pop removes and returns the newest entry.
func (s *Store) Pop() (types.StashEntry, error) {
	return s.Drop(0)
}

// Drop removes and returns the entry at position.
func (s *Store) Drop(position int) (types.StashEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.StashEntry{}, types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.StashEntry{}, err
	}
	defer tx.Rollback()

	entry, err := entryAt(tx, position)
	if err != nil {
		return types.StashEntry{}, err
	}
	if _, err := tx.Exec("DELETE FROM stash_entries WHERE entry_id = ?", entry.ID); err != nil {
		return types.StashEntry{}, fmt.Errorf("dropping stash entry %s: %w", entry.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return types.StashEntry{}, err
	}
	return entry, nil
}

// Clear removes every entry.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return 0, types.ErrStoreDetached
	}

	res, err := s.db.Exec("DELETE FROM stash_entries")
	if err != nil {
		return 0, fmt.Errorf("clearing stash: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func entryAt(q querier, position int) (types.StashEntry, error) {
	if position < 0 {
		return types.StashEntry{}, types.ErrIndexOutOfBounds.Wrap("stash@{%d}", position)
	}

	row := q.QueryRow(
		"SELECT entry_id, message, created_at FROM stash_entries ORDER BY seq DESC LIMIT 1 OFFSET ?",
		position,
	)
	e, err := hydrateEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.StashEntry{}, types.ErrIndexOutOfBounds.Wrap("stash@{%d}", position)
	}
	return e, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func hydrateEntry(sc scanner) (types.StashEntry, error) {
	var (
		e         types.StashEntry
		createdAt string
	)
	if err := sc.Scan(&e.ID, &e.Message, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning stash entry: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return e, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return e, nil
}
