package roadmap

import (
	"github.com/abhisek/mentor/internal/evaluate"
)

// adaptationReason is attached to every adaptation record.
const adaptationReason = "Based on evaluation results and user feedback"

// strugglingThreshold is the score below which the timeline is extended.
const strugglingThreshold = 70

// Adapt derives a new roadmap from the latest evaluation and the learner's
// free-text feedback. All phases carry over unchanged; an AdaptationRecord
// documents the changes and the updated timeline (extended to "5 weeks"
// when the score is below 70, "4 weeks" otherwise).
//
// The input roadmap is never mutated: the result is a deep copy, so the
// caller cannot observe changes through the original reference.
func Adapt(r Roadmap, eval evaluate.Result, userFeedback string) Roadmap {
	_ = userFeedback // recorded by the session transcript, not (yet) analyzed

	adapted := r.clone()

	timeline := "4 weeks"
	if eval.Score < strugglingThreshold {
		timeline = "5 weeks"
	}

	adapted.Adaptation = &AdaptationRecord{
		Reason: adaptationReason,
		Changes: []string{
			"Extended timeline for difficult concepts",
			"Added additional practice exercises",
			"Included more visual content for better understanding",
		},
		UpdatedTimeline: timeline,
	}

	return adapted
}
