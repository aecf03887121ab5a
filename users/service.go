// Package users exposes a thin service facade over the user store.
//
// The facade adds no logic of its own: every method delegates straight to the
// underlying store. It exists to give callers a stable surface that depends on
// an interface (Directory) rather than on the concrete store, and to detect
// nil wiring mistakes early, which is the one validation this layer performs.
package users

import (
	"errors"

	"github.com/sghaida/ustore/store"
)

// ErrNilStore is returned by New when constructed without a store.
var ErrNilStore = errors.New("users: nil store")

// Directory is the store surface the service depends on.
//
// It is declared on the consumer side so the service can be wired with any
// record store; *store.Store satisfies it.
type Directory interface {
	Create(name, email string) store.User
	FindByID(id int64) (store.User, bool)
	FindAll() []store.User
	DeleteByID(id int64)
	Describe(id int64) string
}

// Service is a pass-through facade over a Directory.
type Service struct {
	dir Directory
}

// New constructs a Service around dir.
//
// It returns ErrNilStore when dir is nil; wiring mistakes surface at
// construction time rather than on first use.
func New(dir Directory) (*Service, error) {
	if dir == nil {
		return nil, ErrNilStore
	}
	return &Service{dir: dir}, nil
}

// CreateUser stores a new record and returns it with its assigned id.
func (s *Service) CreateUser(name, email string) store.User {
	return s.dir.Create(name, email)
}

// UserByID returns the record with the given id; ok is false when absent.
func (s *Service) UserByID(id int64) (store.User, bool) {
	return s.dir.FindByID(id)
}

// Users returns a snapshot of all records in insertion order.
func (s *Service) Users() []store.User {
	return s.dir.FindAll()
}

// RemoveUser deletes the record with the given id, if present.
func (s *Service) RemoveUser(id int64) {
	s.dir.DeleteByID(id)
}

// Info renders the record with the given id as a display string.
func (s *Service) Info(id int64) string {
	return s.dir.Describe(id)
}
