package session

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/edimundos/todo-interface/internal/core/ports"
)

// The token lives under a single fixed key, like the browser client kept it
// under one localStorage entry.
const tokenKey = "token"

const schema = `
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

// Store persists the session token in an embedded SQLite database so it
// survives between CLI invocations.
type Store struct {
	db *sqlx.DB
}

var _ ports.SessionStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) SetToken(token string) error {
	_, err := s.db.Exec(
		"INSERT INTO session (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		tokenKey, token,
	)
	return err
}

func (s *Store) Token() (string, bool, error) {
	var token string
	err := s.db.Get(&token, "SELECT value FROM session WHERE key = ?", tokenKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM session WHERE key = ?", tokenKey)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
