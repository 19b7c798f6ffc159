// Package token persists the session token across geekctl invocations
package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the session token at a fixed path.
// An absent token is represented as the empty string, never as an error.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard token location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "geekctl", "token"), nil
}

// Path returns the file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted token. A missing file means no session.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory if needed.
// The file is private to the user since it carries a live credential.
func (s *Store) Save(tok string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
