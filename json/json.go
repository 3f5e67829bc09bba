// Package json provides a file-backed key-value store for client
// state, the terminal analog of browser local storage. Values are
// plain strings held in a versioned JSON envelope and written
// atomically.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/voyagecli/voyage"
)

// Interface compliance check.
var _ voyage.KV = (*Store)(nil)

// envelope is the v1 wire format for persisted client state.
type envelope struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store is a file-backed [voyage.KV]. The whole file is rewritten on
// every mutation; state is a handful of short strings, so this is
// cheaper than it sounds.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open loads the store at path, creating an empty one when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("unmarshal envelope: %w", err)
		}
		if env.Version != 1 {
			return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
		}
		if env.Values != nil {
			s.values = env.Values
		}
	case errors.Is(err, os.ErrNotExist):
		// First run; the file is created on the first Set.
	default:
		return nil, fmt.Errorf("read state file: %w", err)
	}

	return s, nil
}

// Get returns the value stored under key, reporting presence via the
// second return value.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key and persists the store.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.saveLocked()
}

// Delete removes key and persists the store.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.saveLocked()
}

// saveLocked writes the envelope to disk atomically, creating parent
// directories as needed.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(envelope{Version: 1, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
