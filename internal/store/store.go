// Package store persists the Fröling session in SQLite, so a restart can reuse the last session token
// instead of logging in again.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	dirPermissions  = 0750
	filePermissions = 0600
	setupTimeout    = 5 * time.Second
)

var ErrNotFound = errors.New("no session stored")

const schema = `CREATE TABLE IF NOT EXISTS sessions (
	username   TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL,
	token      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Session is the stored session of a user.
type Session struct {
	Token     string
	UserID    int
	UpdatedAt time.Time
}

// Store holds the session of one user.
type Store struct {
	db       *sql.DB
	username string
}

// Open opens, and if needed creates, the database at path. Sessions are stored for the specified user.
func Open(ctx context.Context, path string, username string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	// sqlite supports a single writer
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	_ = os.Chmod(path, filePermissions)

	return &Store{db: db, username: username}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored session. It returns ErrNotFound if no session was saved for the user.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var session Session
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_id, updated_at FROM sessions WHERE username = ?`, s.username,
	).Scan(&session.Token, &session.UserID, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("store: load session: %w", err)
	}
	if session.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Session{}, fmt.Errorf("store: load session: invalid timestamp: %w", err)
	}
	return session, nil
}

// SaveSession stores the session, replacing any previously stored session of the user.
func (s *Store) SaveSession(ctx context.Context, token string, userID int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (username, user_id, token, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET user_id = excluded.user_id, token = excluded.token, updated_at = excluded.updated_at`,
		s.username, userID, token, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store: save session: %w", err)
	}
	return nil
}

// ClearSession removes the user's stored session.
func (s *Store) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE username = ?`, s.username); err != nil {
		return fmt.Errorf("store: clear session: %w", err)
	}
	return nil
}
