// Package skillgraph turns raw, human-authored curriculum prerequisite
// text into a normalized directed graph, and derives everything a
// visualization host needs to draw it: topological depth, a bounded
// progression score, a simplified edge set, and per-skill readiness.
//
// 🚀 What is skillgraph?
//
//	A pure, in-memory computation library that brings together:
//		• Token parsing: single codes, numeric ranges, OR-alternatives
//		• Prerequisite modeling: AND-of-OR-groups + required/or edge classes
//		• Graph leveling: longest-path depth with graceful cycle handling
//		• Progression scoring: a 0–1 layout heuristic per skill
//		• Transitive reduction: redundant-edge removal, DAG-guarded
//		• Readiness metrics: fraction of prerequisite groups satisfied
//
// ✨ Why choose skillgraph?
//
//   - Never throws on malformed curriculum data – offending items are
//     dropped, never fatal; hooks expose every skip reason
//   - Deterministic – identical inputs produce bit-for-bit identical output
//   - Pure Go – no cgo, no I/O, no hidden deps
//   - Side-effect free – caller-owned progress state is never mutated
//
// Everything is organized under six subpackages:
//
//	core/        — Skill, Edge, Status, Dataset types & edge-set helpers
//	token/       — prerequisite token normalization and expansion
//	prereq/      — the AND-of-OR prerequisite Model builder
//	progression/ — topological leveling & progression scoring
//	reduce/      — transitive reduction over the active subgraph
//	readiness/   — progress metrics from a mastery-state snapshot
//	engine/      — the full pipeline, dataset in → render-ready result out
//
// Quick ASCII example:
//
//	    ADT 1 ──► ADT 2 ──► ADT 3
//	                │
//	                └──────► COG 5
//
//	"ADT 1-2" expands to a chain; "ADT 2 (or COG 4)" forms one OR-group.
//
// Dive into each package's doc.go for algorithms, complexity notes and
// runnable examples.
//
//	go get github.com/fernwood/skillgraph/engine
package skillgraph
