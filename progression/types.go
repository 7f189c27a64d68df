// Package progression defines scoring weights, options, and the leveling
// Result type.
package progression

// Default scoring weights. Depth dominates the blend; in-degree pushes a
// skill later along the growth axis, out-degree pulls it earlier.
const (
	// DefaultDepthWeight scales the normalized topological depth.
	DefaultDepthWeight = 0.70

	// DefaultInWeight scales the normalized in-degree (prerequisites).
	DefaultInWeight = 0.45

	// DefaultOutWeight scales the normalized out-degree (dependents),
	// subtracted from the blend.
	DefaultOutWeight = 0.25
)

// Option configures leveling and scoring via functional arguments.
type Option func(*Options)

// Options holds the scoring weights. The defaults reproduce the
// canonical layout heuristic; hosts may tune them per visualization.
type Options struct {
	// DepthWeight multiplies depth/maxDepth.
	DepthWeight float64

	// InWeight multiplies inDegree/maxInDegree.
	InWeight float64

	// OutWeight multiplies outDegree/maxOutDegree and is subtracted.
	OutWeight float64
}

// DefaultOptions returns the canonical weights (0.70, 0.45, 0.25).
func DefaultOptions() Options {
	return Options{
		DepthWeight: DefaultDepthWeight,
		InWeight:    DefaultInWeight,
		OutWeight:   DefaultOutWeight,
	}
}

// WithWeights overrides all three scoring weights at once.
func WithWeights(depth, in, out float64) Option {
	return func(o *Options) {
		o.DepthWeight = depth
		o.InWeight = in
		o.OutWeight = out
	}
}

// Result holds the outcome of one leveling pass:
//   - Depth: skill ID → longest-path distance from a root (≥ 0, defined
//     for every input ID, cycle members included).
//   - Score: skill ID → progression score in [0,1].
//   - MaxDepth: the largest depth assigned (0 for an empty input).
type Result struct {
	Depth    map[string]int
	Score    map[string]float64
	MaxDepth int
}
