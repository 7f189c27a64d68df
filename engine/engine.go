package engine

import (
	"sort"

	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/prereq"
	"github.com/fernwood/skillgraph/progression"
	"github.com/fernwood/skillgraph/readiness"
	"github.com/fernwood/skillgraph/reduce"
)

// Build runs the full pipeline over ds and the progress-state snapshot.
// Neither input is mutated; state may be nil (everything not-started).
// The only failure mode is a nil dataset — malformed entries inside a
// dataset are dropped individually, observable via WithOnSkip.
func Build(ds *core.Dataset, state map[string]core.Status, opts ...Option) (*Result, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	valid := core.ValidIDs(ds.Skills)
	ids := sortedIDs(valid)

	model := prereq.Build(ds.AppendixA, valid, prereq.WithOnSkip(o.OnSkip))
	links := masterLinks(ds, model, ids, valid, &o)

	lev := progression.Compute(ids, links, o.scoring...)
	nodes := make([]*core.Skill, len(ids))
	for i, id := range ids {
		nodes[i] = &core.Skill{
			ID:               id,
			Description:      ds.Skills[id],
			PrereqCount:      len(ds.AppendixA[id]),
			ProgressionScore: lev.Score[id],
			ProgressionDepth: lev.Depth[id],
		}
	}

	edges, reduced := links, false
	if o.ReduceTransitive {
		edges, reduced = reduce.Transitive(ids, links)
	}

	return &Result{
		Nodes:    nodes,
		Model:    model,
		Edges:    edges,
		Reduced:  reduced,
		Leveling: lev,
		Metrics:  readiness.Compute(ids, model, state),
	}, nil
}

// masterLinks unions the raw short-form edges (filtered to known
// skills) with one derived edge per group member → target, deduplicated
// by (source,target). Derived edges follow sorted node order so the
// output is stable across runs.
func masterLinks(ds *core.Dataset, model *prereq.Model, ids []string, valid map[string]struct{}, o *Options) []core.Edge {
	links := core.FilterEdges(ds.Edges, valid, func(e core.Edge) {
		o.OnSkip(e.Target, e.Source, ReasonEdgeEndpoint)
	})

	for _, target := range ids {
		for _, group := range model.Groups(target) {
			for _, src := range group {
				links = append(links, core.Edge{Source: src, Target: target})
			}
		}
	}

	return core.DedupeEdges(links)
}

// sortedIDs flattens the valid-ID set into deterministic order.
func sortedIDs(valid map[string]struct{}) []string {
	ids := make([]string, 0, len(valid))
	for id := range valid {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
