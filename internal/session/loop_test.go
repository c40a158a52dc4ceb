package session

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/outcome"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
	"github.com/abhisek/mentor/internal/store"
)

// scriptedIO answers every prompt deterministically and counts renderings.
type scriptedIO struct {
	answers     []string
	contentType string
	submission  string
	feedback    string
	askErr      error

	profilesShown int
	digestsShown  int
	roadmapsShown int
	contentsShown int
	evalsShown    int
}

func (s *scriptedIO) Ask(_ context.Context, _ string) (string, error) {
	if s.askErr != nil {
		return "", s.askErr
	}
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedIO) ChooseContentType(_ context.Context, _ roadmap.CheckpointTag) (string, error) {
	return s.contentType, nil
}

func (s *scriptedIO) CollectSubmission(_ context.Context, _ roadmap.CheckpointTag) (string, error) {
	return s.submission, nil
}

func (s *scriptedIO) CollectFeedback(_ context.Context, _ evaluate.Result) (string, error) {
	return s.feedback, nil
}

func (s *scriptedIO) ShowProfile(profile.LearnerProfile) { s.profilesShown++ }
func (s *scriptedIO) ShowDigest(research.Digest)         { s.digestsShown++ }
func (s *scriptedIO) ShowRoadmap(roadmap.Roadmap)        { s.roadmapsShown++ }
func (s *scriptedIO) ShowContent(content.Content)        { s.contentsShown++ }
func (s *scriptedIO) ShowEvaluation(evaluate.Result)     { s.evalsShown++ }

// interviewAnswers returns 8 answers matching the interview question order.
func interviewAnswers(experience, goal, style string) []string {
	return []string{
		experience,
		"the standard library",
		goal,
		style,
		"weeks",
		"no",
		"steady",
		"none",
	}
}

// fallbackLoop builds a loop with no collaborators: every external step
// degrades to its fallback contract.
func fallbackLoop(io IO, progress store.ProgressRepo) *Loop {
	return NewLoop(
		research.NewService(nil),
		evaluate.New(nil, evaluate.DefaultConfig()),
		content.NewService(nil),
		progress,
		io,
		nil,
	)
}

func TestLoop_FullSessionWithFallbacks(t *testing.T) {
	io := &scriptedIO{
		answers:     interviewAnswers("beginner", "career advancement", "hands-on"),
		contentType: "text",
		submission:  "my answer",
	}
	loop := fallbackLoop(io, nil)

	s, err := loop.Run(context.Background(), "learner-1", "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Profile.AssessedLevel != profile.LevelBeginner {
		t.Fatalf("expected beginner, got %q", s.Profile.AssessedLevel)
	}
	if s.Profile.Pace != profile.PaceModerate {
		t.Fatalf("expected moderate pace for hands-on, got %q", s.Profile.Pace)
	}

	if len(s.Completed) != 6 {
		t.Fatalf("expected 6 completed checkpoints, got %d", len(s.Completed))
	}
	if len(s.Evaluations) != 6 {
		t.Fatalf("expected 6 evaluations, got %d", len(s.Evaluations))
	}
	if s.Checkpoint != 6 {
		t.Fatalf("expected cursor at 6, got %d", s.Checkpoint)
	}

	last := s.Steps[len(s.Steps)-1]
	if last.State != StateDone || last.Status != outcome.Success {
		t.Fatalf("expected successful done step, got %+v", last)
	}

	// No collaborators: research and evaluations run in fallback mode.
	for _, step := range s.Steps {
		if step.State == StateResearch && step.Status != outcome.Fallback {
			t.Fatalf("expected fallback research, got %q", step.Status)
		}
		if step.State == StateEvaluate && step.Status != outcome.Fallback {
			t.Fatalf("expected fallback evaluation, got %q", step.Status)
		}
		// Text content is rendered locally and stays a success.
		if step.State == StateSelectContent && step.Status != outcome.Success {
			t.Fatalf("expected successful text content, got %q", step.Status)
		}
	}

	// All fallback scores are >= 70, so the final adaptation keeps 4 weeks.
	if s.Roadmap.Adaptation == nil {
		t.Fatal("expected adapted roadmap")
	}
	if s.Roadmap.Adaptation.UpdatedTimeline != "4 weeks" {
		t.Fatalf("expected 4 weeks, got %q", s.Roadmap.Adaptation.UpdatedTimeline)
	}

	if io.profilesShown != 1 || io.digestsShown != 1 {
		t.Fatalf("expected profile and digest shown once, got %d/%d", io.profilesShown, io.digestsShown)
	}
	if io.contentsShown != 6 || io.evalsShown != 6 {
		t.Fatalf("expected 6 contents and evaluations shown, got %d/%d", io.contentsShown, io.evalsShown)
	}
	// Base roadmap plus one re-render per adaptation.
	if io.roadmapsShown != 7 {
		t.Fatalf("expected 7 roadmap renderings, got %d", io.roadmapsShown)
	}
}

func TestLoop_FallbackScoresFollowCheckpointRoutes(t *testing.T) {
	io := &scriptedIO{
		answers:     interviewAnswers("beginner", "", "visual"),
		contentType: "text",
		submission:  "answer",
	}
	loop := fallbackLoop(io, nil)

	s, err := loop.Run(context.Background(), "learner-1", "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Checkpoint order: basic_quiz, setup_verification, intermediate_quiz,
	// project_submission, advanced_quiz, portfolio_review.
	wantScores := []int{75, 70, 75, 80, 75, 85}
	for i, eval := range s.Evaluations {
		if eval.Score != wantScores[i] {
			t.Fatalf("evaluation %d: expected fallback score %d, got %d", i, wantScores[i], eval.Score)
		}
	}
	if s.OverallScore() != 85 {
		t.Fatalf("expected overall score 85, got %d", s.OverallScore())
	}
}

func TestLoop_InvalidContentTypeFailsStepButContinues(t *testing.T) {
	io := &scriptedIO{
		answers:     interviewAnswers("beginner", "", "visual"),
		contentType: "hologram",
		submission:  "answer",
	}
	loop := fallbackLoop(io, nil)

	s, err := loop.Run(context.Background(), "learner-1", "go")
	if err != nil {
		t.Fatalf("a rejected content type must not abort the session: %v", err)
	}

	errored := 0
	for _, step := range s.Steps {
		if step.State == StateSelectContent {
			if step.Status != outcome.Error {
				t.Fatalf("expected error status for invalid content type, got %q", step.Status)
			}
			if step.Err == "" {
				t.Fatal("expected error text on failed step")
			}
			errored++
		}
	}
	if errored != 6 {
		t.Fatalf("expected 6 failed content steps, got %d", errored)
	}
	if io.contentsShown != 0 {
		t.Fatalf("no content should render, got %d", io.contentsShown)
	}

	// The evaluation cycle still completed.
	if len(s.Completed) != 6 {
		t.Fatalf("expected 6 completed checkpoints, got %d", len(s.Completed))
	}
}

func TestLoop_IOFailureAborts(t *testing.T) {
	io := &scriptedIO{askErr: errors.New("terminal closed")}
	loop := fallbackLoop(io, nil)

	s, err := loop.Run(context.Background(), "learner-1", "go")
	if err == nil {
		t.Fatal("expected error when the learner channel fails")
	}
	if len(s.Steps) != 1 || s.Steps[0].State != StateInterview || s.Steps[0].Status != outcome.Error {
		t.Fatalf("expected single failed interview step, got %+v", s.Steps)
	}
}

func TestLoop_PersistsProgress(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	io := &scriptedIO{
		answers:     interviewAnswers("intermediate", "", "visual"),
		contentType: "text",
		submission:  "answer",
	}
	loop := fallbackLoop(io, st.ProgressRepo())

	ctx := context.Background()
	if _, err := loop.Run(ctx, "learner-42", "go"); err != nil {
		t.Fatalf("run: %v", err)
	}

	d, err := LoadProgress(ctx, st.ProgressRepo(), "learner-42")
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if d == nil {
		t.Fatal("expected saved progress")
	}
	if d.Topic != "go" {
		t.Fatalf("expected topic go, got %q", d.Topic)
	}
	if len(d.CompletedCheckpoints) != 6 {
		t.Fatalf("expected 6 completed checkpoints, got %d", len(d.CompletedCheckpoints))
	}
	if len(d.LearningPath.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(d.LearningPath.Phases))
	}
	if d.LearningPath.Adaptation == nil {
		t.Fatal("expected adaptation in saved path")
	}
	if d.OverallScore != 85 {
		t.Fatalf("expected overall score 85, got %d", d.OverallScore)
	}
}

func TestCheckpointTypeMapping(t *testing.T) {
	cases := map[roadmap.CheckpointTag]evaluate.CheckpointType{
		roadmap.CheckpointBasicQuiz:         evaluate.CheckpointQuiz,
		roadmap.CheckpointIntermediateQuiz:  evaluate.CheckpointQuiz,
		roadmap.CheckpointAdvancedQuiz:      evaluate.CheckpointQuiz,
		roadmap.CheckpointProjectSubmission: evaluate.CheckpointProject,
		roadmap.CheckpointPortfolioReview:   evaluate.CheckpointPresentation,
		roadmap.CheckpointSetupVerification: evaluate.CheckpointOther,
	}
	for tag, want := range cases {
		if got := checkpointType(tag); got != want {
			t.Fatalf("checkpointType(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestDepthFor(t *testing.T) {
	if depthFor(profile.LevelBeginner) != "basic" {
		t.Fatal("beginner should research at basic depth")
	}
	if depthFor(profile.LevelIntermediate) != "intermediate" {
		t.Fatal("intermediate should research at intermediate depth")
	}
	if depthFor(profile.LevelAdvanced) != "advanced" {
		t.Fatal("advanced should research at advanced depth")
	}
}
