// Package engine binds the whole prerequisite pipeline into one call:
// Dataset + progress state in, render-ready Result out.
//
// Stages, in order:
//
//  1. The valid node-ID set is taken from Dataset.Skills; every later
//     stage silently drops references outside it.
//  2. prereq.Build turns AppendixA into the Model (groups + edge types).
//  3. The master link set is the union of the raw Dataset.Edges
//     (filtered to valid IDs) and one edge per group member → target,
//     deduplicated by (source,target).
//  4. progression.Compute levels and scores every skill; results are
//     written onto the returned node array.
//  5. If WithTransitiveReduction is set, reduce.Transitive simplifies
//     the link set (skipped automatically when a cycle is present).
//  6. readiness.Compute derives the metrics for the current snapshot.
//
// Build is cheap enough to re-run in full on every host interaction
// (toggling a status, changing a filter); no caching happens between
// calls. It never mutates the caller's dataset or state, and output is
// deterministic: nodes sorted by ID, derived edges in node order,
// ready-now IDs in node order.
package engine
