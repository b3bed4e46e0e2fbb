// Package sqlite exposes the SQLite stash store while keeping its
// implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/trellis/internal/sqlite"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// NewStashStore creates a detached SQLite stash store.
//
// Example:
//
//	store := sqlite.NewStashStore()
//	if err := store.Attach(dataDir); err != nil {
//	    return err
//	}
//	defer store.Detach()
func NewStashStore() types.StashStore {
	return sqlite.NewStore()
}
