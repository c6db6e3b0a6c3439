// Package session persists the authenticated identity (bearer token plus
// cached profile) between client invocations.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/credkarma/credkarma/internal/models"
)

const fileName = "session.json"

// Session is the token and cached user profile written at login and removed
// at logout. It is replaced wholesale on re-authentication, never mutated.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store reads and writes the session file under a config directory.
type Store struct {
	path string
}

// NewStore returns a store keeping its session file inside dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Set persists the token and user together. The file is written to a
// temporary name and renamed so readers see both fields or neither.
func (s *Store) Set(token string, user models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	buf, err := json.Marshal(Session{Token: token, User: user})
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Get returns the current session, or nil when no session is stored, the
// token is empty, or the file fails to parse. A broken session file means
// "unauthenticated", never an error.
func (s *Store) Get() *Session {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(buf, &sess); err != nil {
		return nil
	}
	if sess.Token == "" {
		return nil
	}
	return &sess
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token returns the stored bearer token, or "" when unauthenticated.
// It satisfies the api.TokenSource interface.
func (s *Store) Token() string {
	if sess := s.Get(); sess != nil {
		return sess.Token
	}
	return ""
}
