package sqlite

// dbFileName is the database file created under the data directory.
const dbFileName = "pocket.db"

// schemaSQL creates the stash table on first attach and is a no-op after.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS stash_entries (
    entry_id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL UNIQUE,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stash_entries_seq ON stash_entries(seq);
`
