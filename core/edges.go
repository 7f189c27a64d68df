package core

// FilterEdges returns the edges whose endpoints both exist in valid,
// preserving input order. Unresolvable references are dropped, never
// reported as errors; the optional onDrop hook (may be nil) observes
// each dropped edge.
//
// Time:   O(E)
// Memory: O(E) for the output slice.
func FilterEdges(edges []Edge, valid map[string]struct{}, onDrop func(Edge)) []Edge {
	kept := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := valid[e.Source]; !ok {
			if onDrop != nil {
				onDrop(e)
			}
			continue
		}
		if _, ok := valid[e.Target]; !ok {
			if onDrop != nil {
				onDrop(e)
			}
			continue
		}
		kept = append(kept, e)
	}

	return kept
}

// DedupeEdges removes duplicate (source,target) pairs, keeping the first
// occurrence and preserving input order.
//
// Time:   O(E)
// Memory: O(E) for the seen set.
func DedupeEdges(edges []Edge) []Edge {
	seen := make(map[Edge]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// ValidIDs builds the valid node-ID set from a skills map.
func ValidIDs(skills map[string]string) map[string]struct{} {
	valid := make(map[string]struct{}, len(skills))
	for id := range skills {
		valid[id] = struct{}{}
	}

	return valid
}
