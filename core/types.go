// Package core declares the domain types of the prerequisite-graph engine:
// Skill, Edge, Status, and the host-supplied Dataset.
package core

// Status is the mastery state of a single skill, as persisted by the host.
type Status string

// Recognized Status values. Anything else normalizes to StatusNotStarted.
const (
	// StatusNotStarted marks a skill the learner has not begun.
	StatusNotStarted Status = "not-started"

	// StatusInProgress marks a skill currently being practiced.
	StatusInProgress Status = "in-progress"

	// StatusMastered marks a fully mastered skill.
	StatusMastered Status = "mastered"
)

// NormalizeStatus maps an absent or unrecognized status to
// StatusNotStarted. Recognized values pass through unchanged.
func NormalizeStatus(s Status) Status {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusMastered:
		return s
	default:
		return StatusNotStarted
	}
}

// Skill is one curriculum unit, identified by a "PREFIX N" code such as
// "ADT 12". ProgressionDepth and ProgressionScore are derived layout
// hints, recomputed on every pipeline run.
type Skill struct {
	// ID is the unique skill code, e.g. "ADT 12".
	ID string `json:"id"`

	// Description is the human-readable skill text.
	Description string `json:"description"`

	// PrereqCount is the number of raw prerequisite entries listed for
	// this skill, before any parsing or filtering.
	PrereqCount int `json:"prereqCount"`

	// ProgressionScore is a normalized [0,1] heuristic approximating how
	// advanced the skill is; used as a layout coordinate.
	ProgressionScore float64 `json:"progressionScore"`

	// ProgressionDepth is the longest-path distance from a root skill.
	ProgressionDepth int `json:"progressionDepth"`
}

// Edge is a directed prerequisite link: Source must be learned before
// Target. Edge is a comparable value type; use it directly as a map key
// wherever set semantics over (source,target) pairs are needed.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Dataset mirrors the four independent input maps handed over by the
// host's data-loading layer (see the engine package for how they flow
// through the pipeline).
type Dataset struct {
	// Skills maps skill ID → description and defines the complete valid
	// node-ID set; references outside it are silently dropped downstream.
	Skills map[string]string `json:"skills"`

	// Edges are already-resolved short-form prerequisite links, used
	// directly as master links (independent of AppendixA token parsing).
	Edges []Edge `json:"edges"`

	// AppendixA maps target skill ID → raw prerequisite token strings;
	// the input to the token parser and prerequisite model builder.
	AppendixA map[string][]string `json:"appendixA"`

	// AppendixB is supplementary descriptive text, unused by the graph
	// algorithms (sidebar-only).
	AppendixB map[string]string `json:"appendixB"`
}
