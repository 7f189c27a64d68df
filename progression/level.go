package progression

import (
	"github.com/fernwood/skillgraph/core"
)

// Compute levels the graph spanned by ids and edges, then scores every
// skill. Edges touching IDs outside ids are ignored. The depth map, the
// score map, and MaxDepth are defined for every input ID — including
// cycle members and disconnected fragments — and Compute never fails.
//
// Output is deterministic: queue seeding, edge relaxation, and the
// cycle fallback all follow the caller's input order.
func Compute(ids []string, edges []core.Edge, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := newArena(ids, edges)
	a.level()
	res := &Result{
		Depth: a.depth,
		Score: make(map[string]float64, len(ids)),
	}
	for _, d := range a.depth {
		if d > res.MaxDepth {
			res.MaxDepth = d
		}
	}
	score(res, a, ids, &o)

	return res
}

// arena is the per-call scratch state: degrees, adjacency, and the Kahn
// queue. It is rebuilt from the edge set on every Compute call and
// discarded afterwards.
type arena struct {
	ids      []string
	out      map[string][]string // forward adjacency, edge order
	preds    map[string][]string // reverse adjacency, edge order
	inDeg    map[string]int      // full in-degree (scoring)
	outDeg   map[string]int      // full out-degree (scoring)
	remain   map[string]int      // in-degree countdown (Kahn)
	depth    map[string]int
	resolved map[string]bool // dequeued, or fallback-estimated
}

func newArena(ids []string, edges []core.Edge) *arena {
	n := len(ids)
	a := &arena{
		ids:      ids,
		out:      make(map[string][]string, n),
		preds:    make(map[string][]string, n),
		inDeg:    make(map[string]int, n),
		outDeg:   make(map[string]int, n),
		remain:   make(map[string]int, n),
		depth:    make(map[string]int, n),
		resolved: make(map[string]bool, n),
	}

	member := make(map[string]struct{}, n)
	for _, id := range ids {
		member[id] = struct{}{}
	}
	for _, e := range edges {
		if _, ok := member[e.Source]; !ok {
			continue
		}
		if _, ok := member[e.Target]; !ok {
			continue
		}
		a.out[e.Source] = append(a.out[e.Source], e.Target)
		a.preds[e.Target] = append(a.preds[e.Target], e.Source)
		a.inDeg[e.Target]++
		a.outDeg[e.Source]++
		a.remain[e.Target]++
	}

	return a
}

// level runs Kahn-style longest-path leveling, then estimates depths for
// skills the queue never reached (cycle members).
func (a *arena) level() {
	// Seed every root at depth 0, in input order.
	queue := make([]string, 0, len(a.ids))
	for _, id := range a.ids {
		a.depth[id] = 0
		if a.remain[id] == 0 {
			queue = append(queue, id)
			a.resolved[id] = true
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range a.out[u] {
			if a.depth[u]+1 > a.depth[v] {
				a.depth[v] = a.depth[u] + 1
			}
			a.remain[v]--
			if a.remain[v] == 0 {
				queue = append(queue, v)
				a.resolved[v] = true
			}
		}
	}

	// Cycle fallback: estimate from resolved direct prerequisites.
	for _, id := range a.ids {
		if a.resolved[id] {
			continue
		}
		est := 0
		for _, p := range a.preds[id] {
			if a.resolved[p] && a.depth[p]+1 > est {
				est = a.depth[p] + 1
			}
		}
		a.depth[id] = est
		a.resolved[id] = true
	}
}

// score blends normalized depth, in-degree, and out-degree, then min–max
// normalizes the raw blend to [0,1]. All-equal raw scores collapse to a
// constant 0.5 for every skill.
func score(res *Result, a *arena, ids []string, o *Options) {
	if len(ids) == 0 {
		return
	}

	maxIn, maxOut := 0, 0
	for _, id := range ids {
		if a.inDeg[id] > maxIn {
			maxIn = a.inDeg[id]
		}
		if a.outDeg[id] > maxOut {
			maxOut = a.outDeg[id]
		}
	}
	// Denominators floored at 1 to avoid division by zero.
	dDepth := float64(max1(res.MaxDepth))
	dIn := float64(max1(maxIn))
	dOut := float64(max1(maxOut))

	raw := make(map[string]float64, len(ids))
	lo, hi := 0.0, 0.0
	for i, id := range ids {
		r := o.DepthWeight*(float64(res.Depth[id])/dDepth) +
			o.InWeight*(float64(a.inDeg[id])/dIn) -
			o.OutWeight*(float64(a.outDeg[id])/dOut)
		raw[id] = r
		if i == 0 || r < lo {
			lo = r
		}
		if i == 0 || r > hi {
			hi = r
		}
	}

	span := hi - lo
	for _, id := range ids {
		if span == 0 {
			res.Score[id] = 0.5
			continue
		}
		res.Score[id] = (raw[id] - lo) / span
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}

	return n
}
