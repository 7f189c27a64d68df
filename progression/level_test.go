package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/progression"
)

func edge(s, t string) core.Edge { return core.Edge{Source: s, Target: t} }

// TestCompute_ChainDepths verifies longest-path depth along a simple
// chain and the per-edge depth invariant.
func TestCompute_ChainDepths(t *testing.T) {
	ids := []string{"A", "B", "C"}
	edges := []core.Edge{edge("A", "B"), edge("B", "C")}

	res := progression.Compute(ids, edges)

	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, 2, res.MaxDepth)
	for _, e := range edges {
		assert.GreaterOrEqual(t, res.Depth[e.Target], res.Depth[e.Source]+1,
			"edge %s→%s violates the depth invariant", e.Source, e.Target)
	}
}

// TestCompute_LongestPathWins checks that a diamond with a shortcut edge
// still levels by the longest path: A→D directly, but depth(D) is 2 via
// B or C.
func TestCompute_LongestPathWins(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	edges := []core.Edge{
		edge("A", "B"), edge("A", "C"),
		edge("B", "D"), edge("C", "D"),
		edge("A", "D"), // shortcut must not shorten D's depth
	}

	res := progression.Compute(ids, edges)
	assert.Equal(t, 2, res.Depth["D"])
}

// TestCompute_TwoNodeCycle is the canonical cycle scenario: A→B plus
// B→A must terminate and assign both skills a small non-negative depth,
// never looping or panicking.
func TestCompute_TwoNodeCycle(t *testing.T) {
	ids := []string{"A", "B"}
	edges := []core.Edge{edge("A", "B"), edge("B", "A")}

	res := progression.Compute(ids, edges)

	require.Len(t, res.Depth, 2)
	for _, id := range ids {
		assert.GreaterOrEqual(t, res.Depth[id], 0)
		assert.LessOrEqual(t, res.Depth[id], 1)
	}
}

// TestCompute_CycleFallbackUsesResolvedPrereqs verifies the estimate for
// cycle members: R→A with A⇄B gives A depth 1 (from resolved R) and B
// depth 2 (chained off A's estimate).
func TestCompute_CycleFallbackUsesResolvedPrereqs(t *testing.T) {
	ids := []string{"R", "A", "B"}
	edges := []core.Edge{edge("R", "A"), edge("A", "B"), edge("B", "A")}

	res := progression.Compute(ids, edges)

	assert.Equal(t, 0, res.Depth["R"])
	assert.Equal(t, 1, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["B"])
}

// TestCompute_DisconnectedNode gets depth 0 and a defined score.
func TestCompute_DisconnectedNode(t *testing.T) {
	ids := []string{"A", "B", "LONER"}
	res := progression.Compute(ids, []core.Edge{edge("A", "B")})

	assert.Equal(t, 0, res.Depth["LONER"])
	score, ok := res.Score["LONER"]
	require.True(t, ok, "every input ID must be scored")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

// TestCompute_ScoreBounds checks 0 ≤ score ≤ 1 over a denser graph, and
// that min–max normalization actually reaches both ends of the range.
func TestCompute_ScoreBounds(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E", "F"}
	edges := []core.Edge{
		edge("A", "B"), edge("A", "C"), edge("A", "D"),
		edge("B", "D"), edge("C", "D"), edge("D", "E"),
		edge("E", "F"), edge("B", "F"),
	}

	res := progression.Compute(ids, edges)

	lo, hi := 1.0, 0.0
	for _, id := range ids {
		s := res.Score[id]
		assert.GreaterOrEqual(t, s, 0.0, "score of %s below range", id)
		assert.LessOrEqual(t, s, 1.0, "score of %s above range", id)
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	assert.Equal(t, 0.0, lo, "min–max normalization pins the minimum at 0")
	assert.Equal(t, 1.0, hi, "min–max normalization pins the maximum at 1")
}

// TestCompute_AllEqualScoresFallBack assigns 0.5 everywhere when every
// raw score is identical (no edges at all).
func TestCompute_AllEqualScoresFallBack(t *testing.T) {
	ids := []string{"A", "B", "C"}
	res := progression.Compute(ids, nil)

	for _, id := range ids {
		assert.Equal(t, 0.5, res.Score[id])
	}
}

// TestCompute_IgnoresForeignEdges drops edges whose endpoints are not in
// the active ID set.
func TestCompute_IgnoresForeignEdges(t *testing.T) {
	ids := []string{"A", "B"}
	edges := []core.Edge{edge("A", "B"), edge("A", "GHOST"), edge("GHOST", "B")}

	res := progression.Compute(ids, edges)

	assert.Equal(t, 1, res.Depth["B"], "only the in-set edge may level B")
	assert.Len(t, res.Depth, 2)
}

// TestCompute_CustomWeights verifies that a depth-only blend orders a
// chain strictly by depth.
func TestCompute_CustomWeights(t *testing.T) {
	ids := []string{"A", "B", "C"}
	edges := []core.Edge{edge("A", "B"), edge("B", "C")}

	res := progression.Compute(ids, edges, progression.WithWeights(1, 0, 0))

	assert.Equal(t, 0.0, res.Score["A"])
	assert.Equal(t, 0.5, res.Score["B"])
	assert.Equal(t, 1.0, res.Score["C"])
}

// TestCompute_Deterministic runs twice on identical input and demands
// identical output.
func TestCompute_Deterministic(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	edges := []core.Edge{edge("A", "B"), edge("B", "C"), edge("C", "A"), edge("A", "D")}

	first := progression.Compute(ids, edges)
	second := progression.Compute(ids, edges)

	assert.Equal(t, first, second)
}
