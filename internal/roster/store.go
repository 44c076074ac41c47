// Package roster holds the in-memory nurse list and the preference draft
// used while editing a single nurse. The list is the single source of truth
// for the UI; nothing is persisted across restarts.
package roster

import (
	"errors"
	"strings"
	"sync"

	"nurse-roster/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned when an add is attempted with a blank name.
	ErrEmptyName = errors.New("nurse name cannot be empty")
	// ErrDuplicateName is returned when the trimmed name is already taken.
	ErrDuplicateName = errors.New("nurse is already on the list")
)

// Store is the mutex-guarded, copy-on-write nurse list. Every mutation
// builds a new backing slice, so snapshots handed out earlier stay valid
// for whoever still holds them.
type Store struct {
	mu     sync.RWMutex
	nurses []models.Nurse
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a nurse with the trimmed name, a fresh id and empty
// preferences. It fails without mutating the list when the trimmed name is
// empty or already present.
func (s *Store) Add(name string) (models.Nurse, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Nurse{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.nurses {
		if n.Name == trimmed {
			return models.Nurse{}, ErrDuplicateName
		}
	}

	nurse := models.Nurse{
		ID:          uuid.NewString(),
		Name:        trimmed,
		Preferences: models.NewPreferences(),
	}

	next := make([]models.Nurse, len(s.nurses), len(s.nurses)+1)
	copy(next, s.nurses)
	s.nurses = append(next, nurse)

	return nurse.Clone(), nil
}

// Remove drops the nurse with the given id. Removing an unknown id is a
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Nurse, 0, len(s.nurses))
	for _, n := range s.nurses {
		if n.ID != id {
			next = append(next, n)
		}
	}
	s.nurses = next
}

// Replace swaps in the given nurse at the position its id already occupies,
// keeping list order. An unknown id is a no-op.
func (s *Store) Replace(nurse models.Nurse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.nurses {
		if n.ID == nurse.ID {
			next := make([]models.Nurse, len(s.nurses))
			copy(next, s.nurses)
			next[i] = nurse.Clone()
			s.nurses = next
			return
		}
	}
}

// Get returns the nurse with the given id.
func (s *Store) Get(id string) (models.Nurse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.nurses {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return models.Nurse{}, false
}

// Nurses returns a snapshot of the list in insertion order. Later store
// mutations never touch a returned snapshot.
func (s *Store) Nurses() []models.Nurse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Nurse, len(s.nurses))
	for i, n := range s.nurses {
		snapshot[i] = n.Clone()
	}
	return snapshot
}

// Len returns the number of nurses on the list.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nurses)
}
