package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mentor/internal/outcome"
	"github.com/abhisek/mentor/internal/store"
)

// ProgressData is the persisted progress document. It is the session's own
// wire format; the store treats it as opaque JSON.
type ProgressData struct {
	Topic                string   `json:"topic"`
	CurrentPhase         string   `json:"current_phase"`
	CompletedCheckpoints []string `json:"completed_checkpoints"`
	OverallScore         int      `json:"overall_score"`
	LearningPath         PathData `json:"learning_path"`
}

// PathData mirrors the roadmap for persistence.
type PathData struct {
	Timeline   string          `json:"timeline"`
	Phases     []PhaseData     `json:"phases"`
	Adaptation *AdaptationData `json:"adaptation,omitempty"`
}

// PhaseData mirrors one roadmap phase.
type PhaseData struct {
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	Objectives  []string `json:"objectives"`
	Checkpoints []string `json:"checkpoints"`
}

// AdaptationData mirrors a roadmap adaptation record.
type AdaptationData struct {
	Reason          string   `json:"reason"`
	Changes         []string `json:"changes"`
	UpdatedTimeline string   `json:"updated_timeline"`
}

// Snapshot builds the progress document for the session's current state.
func Snapshot(s *Session) ProgressData {
	d := ProgressData{
		Topic:        s.Topic,
		CurrentPhase: s.CurrentPhase(),
		OverallScore: s.OverallScore(),
		LearningPath: PathData{
			Timeline: s.Roadmap.Timeline,
		},
	}

	// Completed checkpoints in roadmap order, not map order.
	for _, tag := range s.Roadmap.AllCheckpoints() {
		if s.Completed[tag] {
			d.CompletedCheckpoints = append(d.CompletedCheckpoints, string(tag))
		}
	}

	for _, p := range s.Roadmap.Phases {
		pd := PhaseData{
			Name:       p.Name,
			Duration:   p.Duration,
			Objectives: append([]string(nil), p.Objectives...),
		}
		for _, tag := range p.Checkpoints {
			pd.Checkpoints = append(pd.Checkpoints, string(tag))
		}
		d.LearningPath.Phases = append(d.LearningPath.Phases, pd)
	}

	if a := s.Roadmap.Adaptation; a != nil {
		d.LearningPath.Adaptation = &AdaptationData{
			Reason:          a.Reason,
			Changes:         append([]string(nil), a.Changes...),
			UpdatedTimeline: a.UpdatedTimeline,
		}
	}

	return d
}

// saveProgress writes the current snapshot through the progress repo.
// Exactly one attempt; failures surface as PersistenceError.
func (l *Loop) saveProgress(ctx context.Context, s *Session) error {
	if l.progress == nil {
		return nil
	}

	data, err := json.Marshal(Snapshot(s))
	if err != nil {
		return &outcome.PersistenceError{Op: "encode progress", Err: err}
	}
	if err := l.progress.Save(ctx, s.LearnerID, data); err != nil {
		return &outcome.PersistenceError{Op: "save progress", Err: err}
	}
	return nil
}

// LoadProgress reads a learner's saved progress document, or nil if none
// exists.
func LoadProgress(ctx context.Context, repo store.ProgressRepo, learnerID string) (*ProgressData, error) {
	rec, err := repo.Load(ctx, learnerID)
	if err != nil {
		return nil, &outcome.PersistenceError{Op: "load progress", Err: err}
	}
	if rec == nil {
		return nil, nil
	}

	var d ProgressData
	if err := json.Unmarshal(rec.Data, &d); err != nil {
		return nil, &outcome.PersistenceError{Op: "decode progress", Err: fmt.Errorf("learner %s: %w", learnerID, err)}
	}
	return &d, nil
}
