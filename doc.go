// Package ustore provides a small in-memory user-record store together with a
// thin service facade and a runnable console walk-through.
//
// The repository is intentionally tiny:
//
//   - store: the in-memory store itself: create / find / list / delete with
//     monotonically increasing id assignment and snapshot reads
//   - users: a pass-through service facade over the store, with nil-wiring
//     detection at construction time
//   - cmd/demo: a composition root that wires store -> service by hand and
//     walks a deterministic CRUD scenario end to end
//
// The goal is to keep wiring explicit (done once in the composition root),
// avoid any container abstraction, and keep the surface area intentionally small.
//
// See subpackages:
//   - store: the core library package
//   - users: the service facade consumed by callers
//   - cmd/demo: the runnable scenario
package ustore
