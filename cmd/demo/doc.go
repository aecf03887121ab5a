// Command demo is the repository's composition root and runnable scenario.
//
// It wires the dependency chain by hand, in dependency order:
//
//	store.NewSeeded()  ->  users.New(st)
//
// There is no container, no reflection wiring, no code generation: each
// collaborator is constructed once and passed explicitly to whoever needs it.
//
// The binary then walks a deterministic CRUD scenario against the service —
// list, lookups (present and absent), create, delete — printing one status
// line per step. The scenario doubles as a smoke test of the store contract:
// id 3 is assigned to the created record, deleting id 2 leaves ids {1, 3},
// and missing ids report "Usuario no encontrado" without failing.
//
// Flags:
//
//	-empty     start from an empty store instead of the seeded one
//	-no-color  disable colored status markers (also USTORE_NO_COLOR=1)
//
// Exit codes: 0 on success, 2 on flag errors, 1 on wiring failure.
package main
