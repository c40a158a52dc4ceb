package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/outcome"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
	"github.com/abhisek/mentor/internal/store"
)

// IO is the learner-facing surface of the loop. The cmd layer provides a
// terminal implementation; tests script it.
type IO interface {
	// Ask poses one interview question and returns the learner's answer.
	Ask(ctx context.Context, question string) (string, error)

	// ChooseContentType asks which content type to generate for the
	// upcoming checkpoint (text/image/audio/video).
	ChooseContentType(ctx context.Context, tag roadmap.CheckpointTag) (string, error)

	// CollectSubmission gathers the learner's work for a checkpoint.
	CollectSubmission(ctx context.Context, tag roadmap.CheckpointTag) (string, error)

	// CollectFeedback gathers free-text feedback after an evaluation.
	CollectFeedback(ctx context.Context, eval evaluate.Result) (string, error)

	ShowProfile(p profile.LearnerProfile)
	ShowDigest(d research.Digest)
	ShowRoadmap(r roadmap.Roadmap)
	ShowContent(c content.Content)
	ShowEvaluation(e evaluate.Result)
}

// Loop wires the collaborating services into the mentoring state machine.
// Any of the service fields may be nil-backed fallbacks; only the IO surface
// is required.
type Loop struct {
	research  *research.Service
	evaluator *evaluate.Evaluator
	content   *content.Service
	progress  store.ProgressRepo
	io        IO
	log       *zap.Logger
}

// NewLoop creates a mentoring loop. progress may be nil to run without
// persistence; log may be nil for silence.
func NewLoop(researchSvc *research.Service, evaluator *evaluate.Evaluator, contentSvc *content.Service, progress store.ProgressRepo, io IO, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		research:  researchSvc,
		evaluator: evaluator,
		content:   contentSvc,
		progress:  progress,
		io:        io,
		log:       log,
	}
}

// Run executes a full mentoring session for a learner and topic. It returns
// the completed session; the error is non-nil only when the learner-facing
// IO channel fails, which makes further progress impossible. Collaborator
// and persistence failures are recorded in the transcript instead.
func (l *Loop) Run(ctx context.Context, learnerID, topic string) (*Session, error) {
	s := NewSession(learnerID, topic)

	if err := l.runInterview(ctx, s); err != nil {
		return s, err
	}
	l.runAssess(s)
	l.runResearch(ctx, s)
	l.runRoadmap(ctx, s)

	for _, tag := range s.Roadmap.AllCheckpoints() {
		if err := l.runCheckpoint(ctx, s, tag); err != nil {
			return s, err
		}
		s.Checkpoint++
	}

	s.record(StateDone, outcome.Success, "", nil)
	l.log.Info("session complete",
		zap.String("learner", s.LearnerID),
		zap.String("topic", s.Topic),
		zap.Int("overall_score", s.OverallScore()),
	)
	return s, nil
}

func (l *Loop) runInterview(ctx context.Context, s *Session) error {
	l.log.Info("interview start", zap.String("topic", s.Topic))

	for _, q := range profile.InterviewQuestions(s.Topic) {
		answer, err := l.io.Ask(ctx, q)
		if err != nil {
			s.record(StateInterview, outcome.Error, "", err)
			return fmt.Errorf("interview: %w", err)
		}
		s.Answers = append(s.Answers, answer)
	}

	s.record(StateInterview, outcome.Success, "", nil)
	return nil
}

// Interview answer positions consumed by assessment.
const (
	answerExperience = 0
	answerGoal       = 2
	answerStyle      = 3
)

func (l *Loop) runAssess(s *Session) {
	s.Profile = profile.Assess(
		s.Topic,
		s.Answers[answerExperience],
		s.Answers[answerGoal],
		s.Answers[answerStyle],
	)
	s.record(StateAssess, outcome.Success, "", nil)
	l.io.ShowProfile(s.Profile)

	l.log.Info("profile assessed",
		zap.String("level", string(s.Profile.AssessedLevel)),
		zap.String("pace", string(s.Profile.Pace)),
	)
}

func (l *Loop) runResearch(ctx context.Context, s *Session) {
	s.Digest = l.research.Research(ctx, s.Topic, depthFor(s.Profile.AssessedLevel))
	s.record(StateResearch, s.Digest.Status, "", nil)
	l.io.ShowDigest(s.Digest)

	if s.Digest.Status.Degraded() {
		l.log.Warn("research degraded", zap.String("err", s.Digest.Err))
	}
}

func (l *Loop) runRoadmap(ctx context.Context, s *Session) {
	s.Roadmap = roadmap.Build(s.Topic, s.Profile, s.Digest, s.Profile.EstimatedTimeline)

	status := outcome.Success
	var saveErr error
	if saveErr = l.saveProgress(ctx, s); saveErr != nil {
		// The roadmap itself is intact; only the save point failed.
		status = outcome.Error
		l.log.Warn("progress save failed", zap.Error(saveErr))
	}

	s.record(StateRoadmap, status, "", saveErr)
	l.io.ShowRoadmap(s.Roadmap)
}

func (l *Loop) runCheckpoint(ctx context.Context, s *Session, tag roadmap.CheckpointTag) error {
	l.log.Info("checkpoint start", zap.String("checkpoint", string(tag)))

	// SELECT_CONTENT
	contentType, err := l.io.ChooseContentType(ctx, tag)
	if err != nil {
		s.record(StateSelectContent, outcome.Error, tag, err)
		return fmt.Errorf("select content: %w", err)
	}
	c, err := l.content.Generate(ctx, contentType, s.Topic, string(s.Profile.AssessedLevel), string(s.Profile.PreferredStyle))
	if err != nil {
		// Only validation errors escape Generate. The step fails; the
		// checkpoint still runs its evaluation.
		s.record(StateSelectContent, outcome.Error, tag, err)
		l.log.Warn("content rejected", zap.String("checkpoint", string(tag)), zap.Error(err))
	} else {
		s.record(StateSelectContent, c.Status, tag, nil)
		l.io.ShowContent(c)
		if c.Status.Degraded() {
			l.log.Warn("content degraded", zap.String("err", c.Meta.Err))
		}
	}

	// EVALUATE
	submission, err := l.io.CollectSubmission(ctx, tag)
	if err != nil {
		s.record(StateEvaluate, outcome.Error, tag, err)
		return fmt.Errorf("collect submission: %w", err)
	}
	eval := l.evaluator.Evaluate(ctx, s.Topic, string(checkpointType(tag)), submission)
	s.Evaluations = append(s.Evaluations, eval)
	s.Completed[tag] = true
	s.record(StateEvaluate, eval.Status, tag, nil)
	l.io.ShowEvaluation(eval)

	// ADAPT
	feedback, err := l.io.CollectFeedback(ctx, eval)
	if err != nil {
		s.record(StateAdapt, outcome.Error, tag, err)
		return fmt.Errorf("collect feedback: %w", err)
	}
	s.Roadmap = roadmap.Adapt(s.Roadmap, eval, feedback)

	status := outcome.Success
	var saveErr error
	if saveErr = l.saveProgress(ctx, s); saveErr != nil {
		status = outcome.Error
		l.log.Warn("progress save failed", zap.Error(saveErr))
	}
	s.record(StateAdapt, status, tag, saveErr)
	l.io.ShowRoadmap(s.Roadmap)

	return nil
}

// depthFor maps an assessed level to a research depth label.
func depthFor(level profile.Level) string {
	switch level {
	case profile.LevelIntermediate:
		return "intermediate"
	case profile.LevelAdvanced:
		return "advanced"
	}
	return "basic"
}

// checkpointType maps a roadmap checkpoint tag to its evaluation route.
func checkpointType(tag roadmap.CheckpointTag) evaluate.CheckpointType {
	switch tag {
	case roadmap.CheckpointBasicQuiz, roadmap.CheckpointIntermediateQuiz, roadmap.CheckpointAdvancedQuiz:
		return evaluate.CheckpointQuiz
	case roadmap.CheckpointProjectSubmission:
		return evaluate.CheckpointProject
	case roadmap.CheckpointPortfolioReview:
		return evaluate.CheckpointPresentation
	}
	return evaluate.CheckpointOther
}
