// Package reduce removes redundant edges from a prerequisite subgraph
// while preserving reachability (transitive reduction).
//
// An edge u→v is redundant when some longer path u→…→v already exists;
// dropping it changes nothing about which skills unlock which. The
// algorithm:
//
//  1. Deduplicate edges by (source,target), first occurrence wins.
//  2. Topologically sort (Kahn). If the sort emits fewer nodes than the
//     subgraph holds, a cycle is present: the deduplicated edge list is
//     returned unchanged and reduction is skipped entirely — partial
//     reduction of a non-DAG is never attempted.
//  3. On a confirmed DAG, walk nodes in reverse topological order,
//     building each node's full descendant set as the union of its
//     direct successors and their descendant sets.
//  4. u→v is redundant iff another direct successor w of u reaches v.
//     Surviving edges keep their input order.
//
// Cost is bounded by the active (caller-filtered) subgraph, not the
// whole dataset: call this on the currently visible view only.
//
// Time:   O(V·E) worst case for the closure union.
// Memory: O(V²) worst case for descendant sets.
package reduce
