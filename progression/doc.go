// Package progression assigns every skill a topological depth and a
// bounded progression score usable as a layout coordinate.
//
// 🚀 How it works
//
//	Depth is the longest-path distance from a root (zero in-degree)
//	skill, computed Kahn-style: seed all roots at depth 0, then relax
//	each outgoing edge with max(current, source+1) while draining the
//	queue. Skills trapped in cycles never drain; they receive an
//	estimated depth of 1 + the deepest already-resolved direct
//	prerequisite (or 0 with none resolved). A cyclic curriculum is
//	valid input here — it levels, it never errors.
//
//	The score blends three normalized signals:
//
//	  raw = 0.70·depthNorm + 0.45·inNorm − 0.25·outNorm
//
//	Depth dominates; many prerequisites push a skill later; many
//	dependents pull it earlier. Raw scores are then min–max normalized
//	to [0,1] across all skills (all-equal inputs fall back to 0.5).
//
// All working state (in-degrees, adjacency, queue) lives in a scratch
// arena local to one Compute call, rebuilt from the edge set every run —
// nothing transient is attached to the caller's Skill records.
//
// Complexity: O(V + E) time, O(V + E) memory per call.
package progression
