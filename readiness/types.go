// Package readiness defines the Metrics and Counts result types.
package readiness

import (
	"github.com/fernwood/skillgraph/core"
)

// Counts aggregates the snapshot: one tally per status, plus the number
// of ready-now skills.
type Counts struct {
	NotStarted int
	InProgress int
	Mastered   int
	ReadyNow   int
}

// Metrics holds per-skill readiness, recomputed in full on every call:
//   - StateByID: normalized status per skill.
//   - ReadinessByID: satisfied/total groups in [0,1]; 1 for skills with
//     no prerequisite groups.
//   - SatisfiedByID / TotalByID: the group counts behind the ratio.
//   - ReadyNowIDs: skills not yet mastered whose readiness is 1, in the
//     caller's node order.
//   - Counts: the aggregate tally.
type Metrics struct {
	StateByID     map[string]core.Status
	ReadinessByID map[string]float64
	SatisfiedByID map[string]int
	TotalByID     map[string]int
	ReadyNowIDs   []string
	Counts        Counts
}
