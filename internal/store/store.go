package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for recorded evaluation runs.
type Store struct {
	db *sql.DB
}

// Run describes one recorded evaluation run.
type Run struct {
	Token     string
	CreatedAt string
	Steps     int64
}

// Sample is one recorded evaluation: the raw angle pattern and the bit
// patterns of the computed sine and cosine.
type Sample struct {
	Repr    uint64
	SinBits uint64
	CosBits uint64
}

// Open creates or opens a SQLite database at the given path.
//
// The database is configured with WAL mode for concurrent reads, NORMAL
// synchronous mode, a busy timeout for lock contention, and foreign key
// enforcement. Idempotent: safe to call against an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY during recording.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// NewRunToken generates a time-sortable UUIDv7 run token. Sortability by
// creation time helps when listing or pruning old runs.
func NewRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
