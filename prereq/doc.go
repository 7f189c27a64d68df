// Package prereq builds the prerequisite Model: for every target skill
// with raw prerequisite entries, an ordered list of alternative groups
// (AND of OR-groups), plus a required/or classification per directed edge.
//
// Semantics:
//
//   - Each raw entry either contributes one OR-group (the union of both
//     sides of an "A (or B)" wrapper) or one singleton group per atomic
//     ID it expands to.
//   - A group of size 1 is a hard requirement; size > 1 means any one
//     alternative satisfies the group.
//   - Edge classification follows group size, and "required" is
//     permanent: once a (source,target) pair is required anywhere, a
//     later OR appearance cannot downgrade it — and a later required
//     appearance upgrades an earlier OR mark.
//   - References to unknown skill IDs are filtered out before group
//     construction; groups that filter down to nothing are skipped.
//     Nothing here ever errors on malformed data.
//
// Output is independent per target; no cross-target validation is
// performed. The Model is immutable once built — rebuild it when the
// underlying dataset changes.
package prereq
