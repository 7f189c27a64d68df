// Package reduce implements DAG-guarded transitive reduction over the
// active node/edge subset.
package reduce

import (
	"github.com/fernwood/skillgraph/core"
)

// Transitive returns the transitive reduction of the subgraph spanned by
// ids and edges, with reachability identical before and after. The node
// universe is the union of ids and all edge endpoints.
//
// The second return reports whether reduction was applied: false means a
// cycle was detected and the deduplicated input edges were returned
// unchanged. Transitive never fails — cyclic input is valid, just not
// reducible.
func Transitive(ids []string, edges []core.Edge) ([]core.Edge, bool) {
	deduped := core.DedupeEdges(edges)
	nodes := universe(ids, deduped)

	order, acyclic := topoOrder(nodes, deduped)
	if !acyclic {
		return deduped, false
	}

	// Descendant closure, reverse topological order: by the time a node
	// is processed, every successor's set is already complete.
	succ := make(map[string][]string, len(nodes))
	for _, e := range deduped {
		succ[e.Source] = append(succ[e.Source], e.Target)
	}
	desc := make(map[string]map[string]struct{}, len(nodes))
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		d := make(map[string]struct{})
		for _, w := range succ[u] {
			d[w] = struct{}{}
			for x := range desc[w] {
				d[x] = struct{}{}
			}
		}
		desc[u] = d
	}

	kept := make([]core.Edge, 0, len(deduped))
	for _, e := range deduped {
		if !redundant(e, succ[e.Source], desc) {
			kept = append(kept, e)
		}
	}

	return kept, true
}

// redundant reports whether another direct successor of e.Source already
// reaches e.Target, making the direct edge removable.
func redundant(e core.Edge, successors []string, desc map[string]map[string]struct{}) bool {
	for _, w := range successors {
		if w == e.Target {
			continue
		}
		if _, ok := desc[w][e.Target]; ok {
			return true
		}
	}

	return false
}

// universe merges the caller's ID list with any edge endpoints missing
// from it, preserving first-seen order for determinism.
func universe(ids []string, edges []core.Edge) []string {
	seen := make(map[string]struct{}, len(ids))
	nodes := make([]string, 0, len(ids))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}
	for _, id := range ids {
		add(id)
	}
	for _, e := range edges {
		add(e.Source)
		add(e.Target)
	}

	return nodes
}

// topoOrder runs Kahn's algorithm. acyclic is false when fewer nodes are
// emitted than exist, i.e. a cycle kept some in-degree above zero.
func topoOrder(nodes []string, edges []core.Edge) (order []string, acyclic bool) {
	remain := make(map[string]int, len(nodes))
	succ := make(map[string][]string, len(nodes))
	for _, e := range edges {
		remain[e.Target]++
		succ[e.Source] = append(succ[e.Source], e.Target)
	}

	order = make([]string, 0, len(nodes))
	for _, id := range nodes {
		if remain[id] == 0 {
			order = append(order, id)
		}
	}
	for qi := 0; qi < len(order); qi++ {
		for _, v := range succ[order[qi]] {
			remain[v]--
			if remain[v] == 0 {
				order = append(order, v)
			}
		}
	}

	return order, len(order) == len(nodes)
}
