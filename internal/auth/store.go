package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Session is the persisted login state: the bearer token plus the
// identity it belongs to, as returned by the login endpoint.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store keeps the session in a single JSON file under the user's
// config directory. Every API call reads the token through it, and the
// client clears it when the backend answers 401, so expiry is handled
// in exactly one place.
type Store struct {
	path string

	mu      sync.Mutex
	session Session
	loaded  bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is where the session file lives when config doesn't
// override it.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aurum/credentials.json"
	}
	return filepath.Join(home, ".aurum", "credentials.json")
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.session.Token
}

// Current returns the stored session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.session
}

func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	// A corrupt file reads as logged-out; login rewrites it.
	_ = json.Unmarshal(raw, &s.session)
}

// Save persists a fresh session, replacing whatever was there.
func (s *Store) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	s.session = session
	s.loaded = true
	return nil
}

// Clear forgets the session. Missing file counts as already cleared.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
