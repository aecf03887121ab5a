// Package store implements an in-memory user-record store.
//
// It models a single component: an ordered collection of User records plus a
// next-id counter. The store is the sole owner of record state; callers reach
// it through a small CRUD surface (Create / FindByID / FindAll / DeleteByID)
// and never share its internals.
//
// Design goals:
//   - Deterministic ids: assigned ids are strictly increasing and never reused,
//     even after deletion.
//   - No aliasing: reads return copies, so callers cannot mutate store state
//     through a returned value or slice.
//   - Absent is not an error: a missing id yields (User{}, false) or a silent
//     no-op, never a raised fault.
//   - Safe for concurrent callers: an RWMutex gives exclusive-writer /
//     shared-reader access when the store sits behind a concurrent surface.
//
// Notes on performance:
//   - Lookups are linear scans over an insertion-ordered slice. The store is a
//     stand-in for a database in demos and tests; it is not sized for large
//     record counts and no index is maintained.
package store
