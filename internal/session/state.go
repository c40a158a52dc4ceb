// Package session drives the mentoring loop: interview, assessment,
// research, roadmap construction, then a content/evaluation/adaptation cycle
// per checkpoint. Collaborator failures degrade individual steps; the loop
// itself keeps going.
package session

import (
	"time"

	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/outcome"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
)

// State names one step of the mentoring loop.
type State string

const (
	StateInterview     State = "interview"
	StateAssess        State = "assess"
	StateResearch      State = "research"
	StateRoadmap       State = "roadmap"
	StateSelectContent State = "select_content"
	StateEvaluate      State = "evaluate"
	StateAdapt         State = "adapt"
	StateDone          State = "done"
)

// StepResult records one executed step for the session transcript.
type StepResult struct {
	State      State
	Status     outcome.Status
	Checkpoint roadmap.CheckpointTag // set for per-checkpoint steps
	Err        string
	At         time.Time
}

// Session is the accumulated state of one mentoring run.
type Session struct {
	LearnerID string
	Topic     string
	StartedAt time.Time

	// Answers holds the raw interview answers in question order.
	Answers []string

	Profile profile.LearnerProfile
	Digest  research.Digest
	Roadmap roadmap.Roadmap

	// Checkpoint is the cursor into Roadmap.AllCheckpoints().
	Checkpoint int

	// Completed marks checkpoints that have been evaluated.
	Completed map[roadmap.CheckpointTag]bool

	// Evaluations collects every checkpoint evaluation in order.
	Evaluations []evaluate.Result

	// Steps is the full step transcript, including degraded and failed
	// steps.
	Steps []StepResult
}

// NewSession creates an empty session for a learner and topic.
func NewSession(learnerID, topic string) *Session {
	return &Session{
		LearnerID: learnerID,
		Topic:     topic,
		StartedAt: time.Now(),
		Completed: make(map[roadmap.CheckpointTag]bool),
	}
}

// OverallScore returns the most recent evaluation's progress score, or 0
// before any evaluation.
func (s *Session) OverallScore() int {
	if len(s.Evaluations) == 0 {
		return 0
	}
	return s.Evaluations[len(s.Evaluations)-1].Progress
}

// CurrentPhase returns the name of the phase containing the checkpoint
// cursor. After the last checkpoint it returns the final phase name.
func (s *Session) CurrentPhase() string {
	if len(s.Roadmap.Phases) == 0 {
		return ""
	}
	n := 0
	for _, p := range s.Roadmap.Phases {
		n += len(p.Checkpoints)
		if s.Checkpoint < n {
			return p.Name
		}
	}
	return s.Roadmap.Phases[len(s.Roadmap.Phases)-1].Name
}

// record appends a step result to the transcript.
func (s *Session) record(state State, status outcome.Status, tag roadmap.CheckpointTag, err error) {
	r := StepResult{
		State:      state,
		Status:     status,
		Checkpoint: tag,
		At:         time.Now(),
	}
	if err != nil {
		r.Err = err.Error()
	}
	s.Steps = append(s.Steps, r)
}
