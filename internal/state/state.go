// Navigation state persisted between invocations.
//
// The state file is read once per invocation and rewritten after a
// navigation that changed the focused workspace. Concurrent invocations
// serialize through an advisory lock on a sibling lock file; when the lock
// cannot be taken the read-modify-write runs unlocked and the last writer
// wins on the whole file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// FileName is the name of the state file inside the state directory.
const FileName = "state.json"

// ErrPersist is returned when the state file cannot be written.
var ErrPersist = errors.New("persisting navigation state")

// State is the navigation memory kept between invocations.
type State struct {
	// Offset maps group ID to the last workspace ID visited in that group.
	Offset map[uint32]uint32 `json:"offset"`

	// CycleOffset maps group ID to the workspace ID the cycle action
	// returns to within that group.
	CycleOffset map[uint32]uint32 `json:"cycle_offset"`

	// LastGroup is the last valid group that was used.
	LastGroup uint32 `json:"last_group"`
}

// Default returns the state used when nothing has been persisted yet.
func Default() *State {
	return &State{
		Offset:      make(map[uint32]uint32),
		CycleOffset: make(map[uint32]uint32),
		LastGroup:   1,
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		Offset:      maps.Clone(s.Offset),
		CycleOffset: maps.Clone(s.CycleOffset),
		LastGroup:   s.LastGroup,
	}
	c.normalize()
	return c
}

func (s *State) normalize() {
	if s.Offset == nil {
		s.Offset = make(map[uint32]uint32)
	}
	if s.CycleOffset == nil {
		s.CycleOffset = make(map[uint32]uint32)
	}
	if s.LastGroup == 0 {
		s.LastGroup = 1
	}
}

// Store reads and writes the state file at Path.
type Store struct {
	Path string
}

// NewStore returns a store for the state file inside dir.
func NewStore(dir string) *Store {
	return &Store{Path: filepath.Join(dir, FileName)}
}

// Load reads the state file.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	st.normalize()

	return &st, nil
}

// LoadOrDefault reads the state file, returning the default state if the file
// is missing or corrupt. The read error, if any, is returned alongside so the
// caller can log it.
func (s *Store) LoadOrDefault() (*State, error) {
	st, err := s.Load()
	if err != nil {
		return Default(), err
	}
	return st, nil
}

// Save writes the state file atomically.
func (s *Store) Save(st *State) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	data, err := Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	tmpPath := s.Path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Remove deletes the state file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Marshal renders st as the state file contents.
func Marshal(st *State) ([]byte, error) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
