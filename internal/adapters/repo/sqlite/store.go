package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

const (
	historyPathKey  = "history.path"
	historyFileName = "history.db"
	configDir       = ".gamectl"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL DEFAULT '',
	last_played_at INTEGER
);

CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	game_id    TEXT NOT NULL,
	version    TEXT NOT NULL,
	channel    INTEGER NOT NULL,
	path       TEXT NOT NULL,
	process_id INTEGER NOT NULL DEFAULT 0,
	started_at INTEGER NOT NULL,
	ended_at   INTEGER,
	end_reason TEXT
);

CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at DESC);
`

// Store keeps game and session history in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the history database configured under history.path, defaulting
// to ~/.gamectl/history.db, and creates the schema.
func Open(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(historyPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDir, historyFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	store, err := New(path)
	if err != nil {
		return nil, err
	}
	if err := store.CreateSchema(); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

// New opens dbPath without creating the schema. ":memory:" gives a private
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) CreateSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	return nil
}

// Games returns the game repository view of the store.
func (s *Store) Games() *GameRepository {
	return &GameRepository{db: s.db}
}

// Sessions returns the session log view of the store.
func (s *Store) Sessions() *SessionLog {
	return &SessionLog{db: s.db}
}

func toMillis(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func fromMillis(value sql.NullInt64) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return time.UnixMilli(value.Int64)
}
