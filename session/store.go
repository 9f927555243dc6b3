package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MaxHistory bounds how many runs the store retains. Saving past the cap
// drops the oldest run.
const MaxHistory = 20

const storageVersion = 1

// envelope is the on-disk format, versioned so future layouts can migrate
// old files instead of discarding them.
type envelope struct {
	Version  int         `json:"version"`
	Sessions []*Snapshot `json:"sessions"`
}

// Store keeps a bounded, most-recent-first history of run snapshots in one
// JSON file, the device-local equivalent of browser storage. Concurrent use
// from one process is safe; concurrent writers from multiple processes are
// last-write-wins.
type Store struct {
	mu       sync.Mutex
	path     string
	sessions []*Snapshot
}

// OpenStore loads the history file at path, creating an empty store when the
// file does not exist yet.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session history: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing session history: %w", err)
	}
	s.sessions = env.Sessions
	return s, nil
}

// Save upserts a snapshot as the most recent run and persists the whole
// history. At most one entry per id is kept; beyond MaxHistory the oldest
// entries are evicted.
func (s *Store) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*Snapshot, 0, len(s.sessions)+1)
	next = append(next, snapshot)
	for _, existing := range s.sessions {
		if existing.ID != snapshot.ID {
			next = append(next, existing)
		}
	}
	if len(next) > MaxHistory {
		next = next[:MaxHistory]
	}
	s.sessions = next

	return s.persist()
}

// Get returns the snapshot with the given id, or nil.
func (s *Store) Get(id string) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snapshot := range s.sessions {
		if snapshot.ID == id {
			return snapshot
		}
	}
	return nil
}

// List returns the history, most recent first.
func (s *Store) List() []*Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Snapshot, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Delete removes the snapshot with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.sessions[:0]
	for _, snapshot := range s.sessions {
		if snapshot.ID != id {
			next = append(next, snapshot)
		}
	}
	s.sessions = next

	return s.persist()
}

// Clear removes all saved runs.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	return s.persist()
}

func (s *Store) persist() error {
	env := envelope{Version: storageVersion, Sessions: s.sessions}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
