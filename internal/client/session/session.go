// Package session persists the small pieces of client-side state that
// survive between runs: the session credential and the theme preference.
// It is the terminal analog of the web client's localStorage keys.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Theme is the display preference applied to all user-facing output.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type state struct {
	Token string `json:"token,omitempty"`
	Theme Theme  `json:"theme,omitempty"`
}

// Store reads and writes the state file. The zero value is not usable;
// construct it with New or NewAt.
//
// Every mutation is written through to disk immediately, so a crashed
// session never loses the credential.
type Store struct {
	mu   sync.Mutex
	path string
	s    state
}

// New opens the store at the default location under the user config
// directory, creating parent directories as needed.
func New() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	return NewAt(filepath.Join(dir, "brainkeep", "state.json"))
}

// NewAt opens the store at an explicit path. A missing file is not an
// error: the store starts empty and the file appears on first write.
func NewAt(path string) (*Store, error) {
	st := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	if err := json.Unmarshal(data, &st.s); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return st, nil
}

// Token returns the stored session credential, or "" when signed out.
func (st *Store) Token() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Token
}

// SetToken stores a new session credential.
func (st *Store) SetToken(token string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Token = token
	return st.flush()
}

// ClearToken removes the session credential (sign out).
func (st *Store) ClearToken() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Token = ""
	return st.flush()
}

// Theme returns the stored preference, defaulting to light.
func (st *Store) Theme() Theme {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.s.Theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme stores the display preference.
func (st *Store) SetTheme(theme Theme) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Theme = theme
	return st.flush()
}

// flush writes the state file; callers must hold st.mu. The credential is
// written with owner-only permissions.
func (st *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
