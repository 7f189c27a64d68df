// Package engine defines pipeline options, sentinel errors, and the
// aggregated Result type.
package engine

import (
	"errors"

	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/prereq"
	"github.com/fernwood/skillgraph/progression"
	"github.com/fernwood/skillgraph/readiness"
)

// ErrNilDataset is returned when Build receives a nil dataset. This is
// the engine's only error: malformed data inside a dataset degrades
// item-by-item and never fails the pipeline.
var ErrNilDataset = errors.New("engine: dataset is nil")

// ReasonEdgeEndpoint marks a raw edge dropped because one endpoint is
// not a known skill.
const ReasonEdgeEndpoint = "unresolvable edge endpoint"

// Option configures the pipeline via functional arguments.
type Option func(*Options)

// Options holds pipeline switches and hooks.
type Options struct {
	// ReduceTransitive enables transitive reduction of the master link
	// set. Reduction still auto-skips on cyclic subgraphs.
	ReduceTransitive bool

	// OnSkip observes every dropped token, reference, and edge across
	// the pipeline (the diagnostics channel; never affects results).
	OnSkip func(target, token, reason string)

	// scoring carries progression weight overrides.
	scoring []progression.Option
}

// DefaultOptions returns Options with reduction off, a no-op OnSkip
// hook, and canonical scoring weights.
func DefaultOptions() Options {
	return Options{
		OnSkip: func(string, string, string) {},
	}
}

// WithTransitiveReduction enables edge simplification on the output.
func WithTransitiveReduction() Option {
	return func(o *Options) { o.ReduceTransitive = true }
}

// WithOnSkip registers the diagnostics callback.
func WithOnSkip(fn func(target, token, reason string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithScoreWeights overrides the progression-score blend (see the
// progression package for the defaults).
func WithScoreWeights(depth, in, out float64) Option {
	return func(o *Options) {
		o.scoring = append(o.scoring, progression.WithWeights(depth, in, out))
	}
}

// Result is everything the renderer consumes from one pipeline run.
type Result struct {
	// Nodes are the enriched skills, sorted by ID, with
	// ProgressionDepth and ProgressionScore populated.
	Nodes []*core.Skill

	// Model is the prerequisite structure for edge styling.
	Model *prereq.Model

	// Edges is the master link set — possibly transitively reduced.
	Edges []core.Edge

	// Reduced reports whether reduction actually ran (false when it was
	// not requested, or when a cycle forced a skip).
	Reduced bool

	// Leveling exposes the raw depth/score maps behind Nodes.
	Leveling *progression.Result

	// Metrics is the readiness snapshot for styling and the ready-now
	// panel.
	Metrics *readiness.Metrics
}
