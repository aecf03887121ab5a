package store

import (
	"fmt"
	"sync"
)

// User is a stored user record.
//
// ID is assigned by the store on insertion and is immutable afterwards; it is
// zero only on a record that has never been stored. Name and Email carry no
// validation; empty values are stored as-is.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Describe output. The two fixed strings keep the found / not-found boundary
// observable.
const (
	describeFound    = "Usuario encontrado: %s (%s)"
	describeNotFound = "Usuario no encontrado"
)

// Store owns an insertion-ordered sequence of User records and a next-id
// counter.
//
// Ids handed out by Create are strictly increasing across the store's
// lifetime, including after deletions. All reads return copies; the internal
// slice is never exposed.
//
// The zero Store is not usable; construct one with New or NewSeeded.
type Store struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

// New returns an empty Store whose first assigned id will be 1.
func New() *Store {
	return &Store{nextID: 1}
}

// NewSeeded returns a Store pre-populated with the two fixed sample records
// used by the demo scenario. The next assigned id is 3.
func NewSeeded() *Store {
	s := New()
	s.Create("Juan Pérez", "juan@example.com")
	s.Create("María García", "maria@example.com")
	return s
}

// Create stores a new record under the next free id and returns it, assigned
// id included. Name and email are accepted as-is; there is no validation and
// no uniqueness check.
func (s *Store) Create(name, email string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID, Name: name, Email: email}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// FindByID returns the record with the given id.
//
// ok is false when no record matches; a missing id is a valid outcome, not an
// error.
func (s *Store) FindByID(id int64) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindAll returns a snapshot of the current records in insertion order.
//
// The returned slice is a copy; mutating it does not affect the store.
func (s *Store) FindAll() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// DeleteByID removes every record whose id matches.
//
// Deleting an id that is not present is a silent no-op. Freed ids are never
// handed out again.
func (s *Store) DeleteByID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Describe renders the record with the given id as a display string, or the
// fixed not-found message when the id is absent.
func (s *Store) Describe(id int64) string {
	u, ok := s.FindByID(id)
	if !ok {
		return describeNotFound
	}
	return fmt.Sprintf(describeFound, u.Name, u.Email)
}
