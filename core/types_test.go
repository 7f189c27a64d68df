package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fernwood/skillgraph/core"
)

// TestNormalizeStatus_Recognized verifies that all three recognized
// statuses pass through unchanged.
func TestNormalizeStatus_Recognized(t *testing.T) {
	assert.Equal(t, core.StatusNotStarted, core.NormalizeStatus(core.StatusNotStarted))
	assert.Equal(t, core.StatusInProgress, core.NormalizeStatus(core.StatusInProgress))
	assert.Equal(t, core.StatusMastered, core.NormalizeStatus(core.StatusMastered))
}

// TestNormalizeStatus_Unrecognized verifies that empty, absent-shaped,
// and garbage statuses all normalize to StatusNotStarted.
func TestNormalizeStatus_Unrecognized(t *testing.T) {
	for _, s := range []core.Status{"", "done", "MASTERED", "in progress", "unknown"} {
		assert.Equal(t, core.StatusNotStarted, core.NormalizeStatus(s), "status %q must normalize to not-started", s)
	}
}

// TestEdge_MapKey verifies that Edge works as a composite map key with
// structural equality.
func TestEdge_MapKey(t *testing.T) {
	set := map[core.Edge]struct{}{
		{Source: "A", Target: "B"}: {},
	}
	_, ok := set[core.Edge{Source: "A", Target: "B"}]
	assert.True(t, ok, "identical edge value must hit the same key")
	_, ok = set[core.Edge{Source: "B", Target: "A"}]
	assert.False(t, ok, "reversed edge must be a distinct key")
}
