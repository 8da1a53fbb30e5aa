// Package identity persists the durable player identity and the last joined
// game code across process restarts. It knows nothing about the game rules
// or the network.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const fileName = "identity.json"

type fileState struct {
	PlayerID string `json:"player_id"`
	GameCode string `json:"game_code,omitempty"`
}

// Store is a tiny durable key/value file scoped to the local user profile.
// A missing or corrupt file yields a fresh identity instead of an error so a
// wiped profile behaves like a new device.
type Store struct {
	path string

	mu    sync.Mutex
	state fileState
}

// Open loads the identity file under dir, generating and persisting a fresh
// player id on first use.
func Open(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, fileName)}

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &s.state); jsonErr != nil {
			s.state = fileState{}
		}
	case errors.Is(err, fs.ErrNotExist):
		// first run
	default:
		return nil, fmt.Errorf("read identity file: %w", err)
	}

	if s.state.PlayerID == "" {
		s.state.PlayerID = uuid.NewString()
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// PlayerID returns the persisted durable identity. Never empty after Open.
func (s *Store) PlayerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PlayerID
}

// SavedGameCode reports the last joined game code, if any.
func (s *Store) SavedGameCode() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GameCode, s.state.GameCode != ""
}

// SaveGameCode records code for reconnection. A no-op when unchanged, so
// every snapshot arrival can call it cheaply.
func (s *Store) SaveGameCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == "" || code == s.state.GameCode {
		return nil
	}
	s.state.GameCode = code
	return s.save()
}

// ClearGameCode forgets the saved code, e.g. once a match concludes.
func (s *Store) ClearGameCode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.GameCode == "" {
		return nil
	}
	s.state.GameCode = ""
	return s.save()
}

// save writes atomically: temp file in the same directory, then rename.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace identity file: %w", err)
	}
	return nil
}
