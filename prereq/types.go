// Package prereq defines the Model type, edge classifications, and
// build options for prerequisite-model construction.
package prereq

import (
	"github.com/fernwood/skillgraph/core"
)

// EdgeType classifies a prerequisite edge for styling purposes.
type EdgeType string

const (
	// EdgeRequired marks a hard requirement (singleton group member).
	EdgeRequired EdgeType = "required"

	// EdgeOr marks one alternative of a multi-member group.
	EdgeOr EdgeType = "or"
)

// Skip reasons reported to the OnSkip hook, in addition to the token
// package's own reasons forwarded from expansion.
const (
	// ReasonUnknownTarget marks an entry whose target skill ID is not in
	// the valid node set.
	ReasonUnknownTarget = "unknown target skill"

	// ReasonUnknownSkill marks a source reference filtered out because
	// the ID is not in the valid node set.
	ReasonUnknownSkill = "unknown skill reference"

	// ReasonEmptyGroup marks an OR entry whose alternatives all filtered
	// out, leaving nothing to require.
	ReasonEmptyGroup = "group filtered to empty"
)

// Model is the derived prerequisite structure, immutable per build.
type Model struct {
	// GroupsByTarget maps target skill ID → ordered list of groups.
	// Each group is a non-empty list of alternative source IDs; any one
	// alternative satisfies the group, and all groups together form the
	// target's full requirement.
	GroupsByTarget map[string][][]string

	// EdgeTypeByKey classifies each (source,target) prerequisite pair.
	EdgeTypeByKey map[core.Edge]EdgeType
}

// Groups returns the ordered group list for target, or nil when target
// has no known prerequisites.
func (m *Model) Groups(target string) [][]string {
	return m.GroupsByTarget[target]
}

// EdgeTypeOf looks up the classification of the source→target pair.
func (m *Model) EdgeTypeOf(source, target string) (EdgeType, bool) {
	et, ok := m.EdgeTypeByKey[core.Edge{Source: source, Target: target}]

	return et, ok
}

// Option configures model construction via functional arguments.
type Option func(*Options)

// Options holds callbacks customizing the build.
type Options struct {
	// OnSkip observes every dropped item: the target being processed,
	// the offending token (or skill ID for reference filtering), and the
	// reason. Building never errors; this is the diagnostics channel.
	OnSkip func(target, token, reason string)
}

// DefaultOptions returns Options with a no-op OnSkip hook.
func DefaultOptions() Options {
	return Options{
		OnSkip: func(string, string, string) {},
	}
}

// WithOnSkip registers a callback observing every dropped token or
// reference during the build.
func WithOnSkip(fn func(target, token, reason string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}
