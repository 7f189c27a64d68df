package readiness

import (
	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/prereq"
)

// Compute derives readiness Metrics for every skill in ids from the
// prerequisite model and the caller's progress-state snapshot. The state
// map is read-only here and may be nil (everything not-started); a nil
// model means no skill has prerequisites. Compute never fails.
//
// Time:   O(total group members)
// Memory: O(V) for the result maps.
func Compute(ids []string, model *prereq.Model, state map[string]core.Status) *Metrics {
	n := len(ids)
	m := &Metrics{
		StateByID:     make(map[string]core.Status, n),
		ReadinessByID: make(map[string]float64, n),
		SatisfiedByID: make(map[string]int, n),
		TotalByID:     make(map[string]int, n),
	}

	for _, id := range ids {
		st := core.NormalizeStatus(state[id])
		m.StateByID[id] = st

		var groups [][]string
		if model != nil {
			groups = model.Groups(id)
		}
		total := len(groups)
		satisfied := 0
		for _, group := range groups {
			if groupSatisfied(group, state) {
				satisfied++
			}
		}

		ready := 1.0
		if total > 0 {
			ready = float64(satisfied) / float64(total)
		}
		m.ReadinessByID[id] = ready
		m.SatisfiedByID[id] = satisfied
		m.TotalByID[id] = total

		switch st {
		case core.StatusMastered:
			m.Counts.Mastered++
		case core.StatusInProgress:
			m.Counts.InProgress++
		default:
			m.Counts.NotStarted++
		}
		if st != core.StatusMastered && ready >= 1 {
			m.ReadyNowIDs = append(m.ReadyNowIDs, id)
			m.Counts.ReadyNow++
		}
	}

	return m
}

// groupSatisfied reports whether any alternative in the group is
// mastered in the snapshot.
func groupSatisfied(group []string, state map[string]core.Status) bool {
	for _, alt := range group {
		if core.NormalizeStatus(state[alt]) == core.StatusMastered {
			return true
		}
	}

	return false
}
