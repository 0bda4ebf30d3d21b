// Package saved holds paused test sessions awaiting resume. The store is
// bounded: inserting beyond capacity replaces the stalest entry in place
// rather than queueing, since only capacity and recency matter.
package saved

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/session"
)

// Capacity is the maximum number of paused sessions kept at once.
const Capacity = 3

// ErrNotFound is returned when no saved entry matches the given id.
var ErrNotFound = errors.New("saved test not found")

// Entry wraps a paused session with an identity and a save timestamp.
type Entry struct {
	ID      string          `json:"id"`
	SavedAt time.Time       `json:"savedAt"`
	Session session.Session `json:"session"`
}

// Store is the bounded collection of paused sessions.
type Store struct {
	entries []Entry
}

// NewStore creates a store over previously persisted entries.
func NewStore(entries []Entry) *Store {
	return &Store{entries: entries}
}

// Len returns the number of saved entries.
func (st *Store) Len() int {
	return len(st.entries)
}

// Entries returns the saved entries. Order carries no meaning; identity is
// by entry id.
func (st *Store) Entries() []Entry {
	return st.entries
}

// Insert saves a paused session. Below capacity the entry is appended; at
// capacity it overwrites the slot with the oldest SavedAt.
func (st *Store) Insert(s session.Session, now time.Time) Entry {
	e := Entry{
		ID:      uuid.New().String(),
		SavedAt: now,
		Session: s,
	}
	if len(st.entries) < Capacity {
		st.entries = append(st.entries, e)
		return e
	}
	oldest := 0
	for i := 1; i < len(st.entries); i++ {
		if st.entries[i].SavedAt.Before(st.entries[oldest].SavedAt) {
			oldest = i
		}
	}
	st.entries[oldest] = e
	return e
}

// Resume removes the entry with the given id and returns its session for
// reactivation.
func (st *Store) Resume(id string) (session.Session, error) {
	for i, e := range st.entries {
		if e.ID == id {
			st.entries = append(st.entries[:i], st.entries[i+1:]...)
			return e.Session, nil
		}
	}
	return session.Session{}, ErrNotFound
}

// Remove deletes the entry with the given id.
func (st *Store) Remove(id string) error {
	for i, e := range st.entries {
		if e.ID == id {
			st.entries = append(st.entries[:i], st.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
