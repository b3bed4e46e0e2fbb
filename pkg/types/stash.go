package types

import (
	"errors"
	"time"
)

// StashEntry is one note saved by the pocket stash command. Entries are
// addressed by position: 0 is the newest.
type StashEntry struct {
	// ID is a UUID v7, generated on save.
	ID string

	Message string

	CreatedAt time.Time
}

// StashStore persists stash entries. Position arguments count from the newest
// entry; a position past the end wraps ErrIndexOutOfBounds.
type StashStore interface {
	// Attach opens (creating if needed) the store under dataDir.
	// Returns ErrStoreAttached if called while already attached.
	Attach(dataDir string) error

	// Detach releases the store. Detach is idempotent.
	Detach() error

	Push(message string) (StashEntry, error)
	List() ([]StashEntry, error)
	Get(position int) (StashEntry, error)

	// Pop removes and returns the newest entry.
	Pop() (StashEntry, error)

	// Drop removes and returns the entry at position.
	Drop(position int) (StashEntry, error)

	// Clear removes every entry and returns how many were removed.
	Clear() (int, error)
}

// Stash store errors.
var (
	ErrStoreDetached = errors.New("stash store is detached")
	ErrStoreAttached = errors.New("stash store is already attached")
)
