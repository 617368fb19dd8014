// Package session persists local client state: the bearer credential for the
// finance backend and small bits of per-device state such as the last seen
// notification. Nothing here is a cache of server data; cleared state simply
// forces a fresh login.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNoCredentials indicates no token has been saved yet.
var ErrNoCredentials = errors.New("no saved credentials")

const (
	keyCredentials          = "credentials"
	keyLastSeenNotification = "last_seen_notification"
)

// Store is a SQLite-backed key/value store for session state.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the session database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session store path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS session_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write session key %q: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM session_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete session key %q: %w", key, err)
	}
	return nil
}

// Token returns the saved credential, or ErrNoCredentials.
func (s *Store) Token() (*oauth2.Token, error) {
	value, ok, err := s.get(keyCredentials)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCredentials
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(value), &tok); err != nil {
		return nil, fmt.Errorf("failed to decode saved credentials: %w", err)
	}
	return &tok, nil
}

// SaveToken persists the credential, replacing any previous one.
func (s *Store) SaveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	return s.set(keyCredentials, string(data))
}

// ClearToken discards the saved credential.
func (s *Store) ClearToken() error {
	return s.delete(keyCredentials)
}

// LastSeenNotification returns the highest notification id acknowledged on
// this device; 0 when none has been recorded.
func (s *Store) LastSeenNotification() (int64, error) {
	value, ok, err := s.get(keyLastSeenNotification)
	if err != nil || !ok {
		return 0, err
	}

	var id int64
	if _, err := fmt.Sscanf(value, "%d", &id); err != nil {
		return 0, nil
	}
	return id, nil
}

// SetLastSeenNotification records the highest acknowledged notification id.
func (s *Store) SetLastSeenNotification(id int64) error {
	return s.set(keyLastSeenNotification, fmt.Sprintf("%d", id))
}
