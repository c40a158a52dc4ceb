package roadmap

import (
	"fmt"

	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
)

// Build creates the base roadmap for a topic: exactly three phases
// (Foundation → Core Learning → Advanced Application) with two objectives
// and two checkpoints each, six checkpoints total.
//
// The template is deterministic given topic and timeline. The profile and
// research digest are accepted as extension points for level-adaptive
// templating but do not affect the base structure.
func Build(topic string, prof profile.LearnerProfile, digest research.Digest, timeline string) Roadmap {
	_ = prof   // reserved for adaptive phase templating
	_ = digest // reserved for research-informed objectives

	return Roadmap{
		Topic:    topic,
		Timeline: timeline,
		Phases: []Phase{
			{
				Name:     "Foundation",
				Duration: "1 week",
				Objectives: []string{
					fmt.Sprintf("Understand basic %s concepts", topic),
					fmt.Sprintf("Set up %s environment", topic),
				},
				Checkpoints: []CheckpointTag{
					CheckpointBasicQuiz,
					CheckpointSetupVerification,
				},
			},
			{
				Name:     "Core Learning",
				Duration: "2 weeks",
				Objectives: []string{
					fmt.Sprintf("Master core %s skills", topic),
					"Build practical projects",
				},
				Checkpoints: []CheckpointTag{
					CheckpointIntermediateQuiz,
					CheckpointProjectSubmission,
				},
			},
			{
				Name:     "Advanced Application",
				Duration: "1 week",
				Objectives: []string{
					fmt.Sprintf("Apply %s to real problems", topic),
					"Create portfolio project",
				},
				Checkpoints: []CheckpointTag{
					CheckpointAdvancedQuiz,
					CheckpointPortfolioReview,
				},
			},
		},
	}
}
