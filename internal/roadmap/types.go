// Package roadmap builds and adapts phased learning roadmaps. Roadmaps are
// values: adaptation derives a new roadmap and never mutates the original.
package roadmap

// CheckpointTag identifies an assessment point within a phase. Tags are
// unique across the whole roadmap.
type CheckpointTag string

const (
	CheckpointBasicQuiz         CheckpointTag = "basic_quiz"
	CheckpointSetupVerification CheckpointTag = "setup_verification"
	CheckpointIntermediateQuiz  CheckpointTag = "intermediate_quiz"
	CheckpointProjectSubmission CheckpointTag = "project_submission"
	CheckpointAdvancedQuiz      CheckpointTag = "advanced_quiz"
	CheckpointPortfolioReview   CheckpointTag = "portfolio_review"
)

// Phase is an ordered segment of a roadmap with objectives and checkpoints.
type Phase struct {
	Name        string
	Duration    string
	Objectives  []string
	Checkpoints []CheckpointTag
}

// AdaptationRecord documents how and why a roadmap was adapted. It belongs
// to exactly one derived roadmap and is never reused.
type AdaptationRecord struct {
	Reason          string
	Changes         []string
	UpdatedTimeline string
}

// Roadmap is a phased learning plan for a topic.
type Roadmap struct {
	Topic    string
	Timeline string
	Phases   []Phase

	// Adaptation is set on roadmaps derived by Adapt, nil on the base
	// template.
	Adaptation *AdaptationRecord
}

// TotalCheckpoints counts checkpoint tags across all phases.
func (r *Roadmap) TotalCheckpoints() int {
	n := 0
	for _, p := range r.Phases {
		n += len(p.Checkpoints)
	}
	return n
}

// AllCheckpoints returns every checkpoint tag in phase order.
func (r *Roadmap) AllCheckpoints() []CheckpointTag {
	var tags []CheckpointTag
	for _, p := range r.Phases {
		tags = append(tags, p.Checkpoints...)
	}
	return tags
}

// clone returns a deep copy so derived roadmaps share no slices with the
// original.
func (r *Roadmap) clone() Roadmap {
	out := Roadmap{
		Topic:    r.Topic,
		Timeline: r.Timeline,
		Phases:   make([]Phase, len(r.Phases)),
	}
	for i, p := range r.Phases {
		out.Phases[i] = Phase{
			Name:        p.Name,
			Duration:    p.Duration,
			Objectives:  append([]string(nil), p.Objectives...),
			Checkpoints: append([]CheckpointTag(nil), p.Checkpoints...),
		}
	}
	return out
}
