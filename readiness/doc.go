// Package readiness translates a mastery-state snapshot and the
// prerequisite Model into per-skill readiness metrics.
//
// Readiness is the fraction of a skill's prerequisite groups currently
// satisfied, where a group is satisfied as soon as any one of its
// alternatives is mastered. A skill with no groups has nothing blocking
// it and is fully ready by definition. "Ready now" means 100% ready but
// not yet mastered — the set the host highlights as next steps.
//
// Compute is pure relative to its inputs: it never mutates the caller's
// state map, and identical inputs produce bit-for-bit identical Metrics
// (no randomness, no time dependence). Statuses absent from the snapshot
// or carrying unrecognized values normalize to not-started.
package readiness
