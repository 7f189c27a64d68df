// Package core defines the central Skill, Edge, Status, and Dataset types
// shared by every stage of the prerequisite-graph pipeline, plus small
// edge-set helpers (filtering to a valid node set, deduplication).
//
// Design notes:
//
//   - Skill carries only persistent identity and derived layout fields
//     (ProgressionDepth, ProgressionScore). Transient algorithm state
//     (in-degrees, adjacency, level queues) lives in short-lived arenas
//     inside each algorithm package and is rebuilt from scratch per run,
//     never attached to the Skill record.
//   - Edge is a plain value type with structural equality, so an Edge is
//     its own composite map key; no string-concatenated "u=>v" keys.
//   - Status is a string enum matching the JSON-shaped progress state the
//     host persists; NormalizeStatus maps anything unrecognized to
//     StatusNotStarted rather than erroring.
//
// Dataset mirrors the host's four input maps (skills, edges, appendixA,
// appendixB) and carries JSON tags so callers can unmarshal straight into
// it; this package performs no decoding itself.
package core
