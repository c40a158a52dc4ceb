// Package evaluate scores learner submissions against roadmap checkpoints.
// Scoring is delegated to the analysis collaborator; when that call fails or
// returns malformed data the evaluator substitutes deterministic per-route
// defaults and tags the result as a fallback. The evaluator itself never
// fails past this boundary.
package evaluate

import "github.com/abhisek/mentor/internal/outcome"

// CheckpointType selects the analysis route for a submission.
type CheckpointType string

const (
	CheckpointQuiz         CheckpointType = "quiz"
	CheckpointProject      CheckpointType = "project"
	CheckpointPresentation CheckpointType = "presentation"
	CheckpointOther        CheckpointType = "other"
)

// ParseCheckpointType maps a raw string to a CheckpointType. Anything
// outside the known set routes to the general evaluation path.
func ParseCheckpointType(s string) CheckpointType {
	switch CheckpointType(s) {
	case CheckpointQuiz, CheckpointProject, CheckpointPresentation:
		return CheckpointType(s)
	}
	return CheckpointOther
}

// MaxScore is the fixed score ceiling for every evaluation.
const MaxScore = 100

// Recommendation is the tiered guidance derived from a score.
type Recommendation struct {
	Tier       string // "advanced", "intermediate", "remedial"
	NextSteps  string
	FocusAreas []string
	Resources  []string
}

// Result is the outcome of evaluating one submission. Consumed by the
// roadmap adapter and then discarded; never mutated.
type Result struct {
	Status         outcome.Status
	Topic          string
	Checkpoint     CheckpointType
	Score          int
	MaxScore       int
	Feedback       string
	Method         string
	Recommendation Recommendation

	// Progress is the score clamped to [0, 100].
	Progress int

	// Err holds the captured collaborator error text on fallback results.
	Err string
}
