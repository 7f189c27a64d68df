package prereq

import (
	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/token"
)

// Build constructs the prerequisite Model from raw entries
// (target skill ID → raw prerequisite token strings) and the valid
// node-ID set. References to IDs outside valid are silently discarded;
// Build never fails on malformed input.
//
// Time:   O(total tokens · expansion size)
// Memory: O(total group members).
func Build(entries map[string][]string, valid map[string]struct{}, opts ...Option) *Model {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		GroupsByTarget: make(map[string][][]string, len(entries)),
		EdgeTypeByKey:  make(map[core.Edge]EdgeType),
	}
	for target, raws := range entries {
		if _, ok := valid[target]; !ok {
			o.OnSkip(target, target, ReasonUnknownTarget)
			continue
		}
		b := &targetBuild{model: m, opts: &o, valid: valid, target: target}
		for _, raw := range raws {
			b.addEntry(raw)
		}
		if len(b.groups) > 0 {
			m.GroupsByTarget[target] = b.groups
		}
	}

	return m
}

// targetBuild accumulates groups for a single target skill.
type targetBuild struct {
	model  *Model
	opts   *Options
	valid  map[string]struct{}
	target string
	groups [][]string
}

// addEntry processes one raw prerequisite token: either one OR-group
// from the union of both wrapper sides, or one singleton group per
// expanded atomic ID.
func (b *targetBuild) addEntry(raw string) {
	if left, right, ok := token.SplitOr(raw); ok {
		group := b.union(left, right)
		if len(group) == 0 {
			b.opts.OnSkip(b.target, token.Normalize(raw), ReasonEmptyGroup)
			return
		}
		b.push(group)

		return
	}

	for _, id := range b.expand(raw) {
		b.push([]string{id})
	}
}

// union expands both OR sides independently, filters to valid IDs,
// concatenates, and de-duplicates preserving first occurrence.
func (b *targetBuild) union(left, right string) []string {
	seen := make(map[string]struct{})
	var group []string
	for _, id := range append(b.expand(left), b.expand(right)...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		group = append(group, id)
	}

	return group
}

// expand runs token expansion with skip forwarding, then filters out
// references to unknown skills.
func (b *targetBuild) expand(raw string) []string {
	ids := token.Expand(raw, token.WithOnSkip(func(tok, reason string) {
		b.opts.OnSkip(b.target, tok, reason)
	}))

	kept := ids[:0]
	for _, id := range ids {
		if _, ok := b.valid[id]; !ok {
			b.opts.OnSkip(b.target, id, ReasonUnknownSkill)
			continue
		}
		kept = append(kept, id)
	}

	return kept
}

// push appends the group and classifies its members: singleton ⇒
// required (permanent, upgrades an earlier or-mark), larger ⇒ or unless
// the exact pair is already required.
func (b *targetBuild) push(group []string) {
	b.groups = append(b.groups, group)

	required := len(group) == 1
	for _, src := range group {
		key := core.Edge{Source: src, Target: b.target}
		if required {
			b.model.EdgeTypeByKey[key] = EdgeRequired
			continue
		}
		if _, exists := b.model.EdgeTypeByKey[key]; !exists {
			b.model.EdgeTypeByKey[key] = EdgeOr
		}
	}
}
