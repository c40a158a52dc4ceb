package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mentor/internal/llm"
	"github.com/abhisek/mentor/internal/outcome"
)

// Evaluator scores submissions through the analysis collaborator.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Evaluator. A nil provider is allowed: every evaluation
// then takes the fallback path, which keeps sessions usable when no
// collaborator is configured.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// analysisOutput is the raw collaborator reply.
type analysisOutput struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Evaluate scores a submission for the given checkpoint type. The
// checkpoint type selects the analysis route; unknown types route to the
// general path. A failing or malformed collaborator reply is replaced by
// the route's deterministic defaults and the result is tagged as fallback;
// Evaluate never returns an error.
func (e *Evaluator) Evaluate(ctx context.Context, topic string, checkpointType string, submission string) Result {
	ct := ParseCheckpointType(checkpointType)

	score, feedback, err := e.analyze(ctx, ct, topic, submission)

	res := Result{
		Status:     outcome.Success,
		Topic:      topic,
		Checkpoint: ct,
		Score:      score,
		MaxScore:   MaxScore,
		Feedback:   feedback,
		Method:     analysisMethod(ct),
	}

	if err != nil {
		res.Status = outcome.Fallback
		res.Score = fallbackScore(ct)
		res.Feedback = fallbackFeedback(ct, topic)
		res.Err = err.Error()
	}

	// Tiering happens after any fallback substitution so the learner
	// always gets actionable next steps.
	res.Recommendation = recommendFor(res.Score, topic)
	res.Progress = clampScore(res.Score)

	return res
}

// analyze runs the collaborator call for one route. Exactly one attempt.
func (e *Evaluator) analyze(ctx context.Context, ct CheckpointType, topic, submission string) (int, string, error) {
	if e.provider == nil {
		return 0, "", &outcome.CollaboratorError{
			Collaborator: "analysis",
			Op:           "analyze",
			Err:          fmt.Errorf("no analysis provider configured"),
		}
	}

	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: analysisPrompt(ct, topic, submission)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return 0, "", &outcome.CollaboratorError{Collaborator: "analysis", Op: "analyze", Err: err}
	}

	var out analysisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return 0, "", &outcome.CollaboratorError{
			Collaborator: "analysis",
			Op:           "analyze",
			Err:          fmt.Errorf("parse analysis response: %w", err),
		}
	}

	if out.Score < 0 || out.Score > MaxScore {
		return 0, "", &outcome.CollaboratorError{
			Collaborator: "analysis",
			Op:           "analyze",
			Err:          fmt.Errorf("score %d out of range", out.Score),
		}
	}

	return out.Score, out.Feedback, nil
}

// recommendFor tiers the score into next-step guidance with fixed resource
// lists per tier.
func recommendFor(score int, topic string) Recommendation {
	switch {
	case score >= 90:
		return Recommendation{
			Tier:       "advanced",
			NextSteps:  fmt.Sprintf("Excellent! Ready for advanced %s concepts", topic),
			FocusAreas: []string{"advanced applications", "optimization techniques"},
			Resources: []string{
				fmt.Sprintf("Advanced %s tutorials", topic),
				fmt.Sprintf("%s case studies", topic),
				fmt.Sprintf("Expert %s techniques", topic),
			},
		}
	case score >= 70:
		return Recommendation{
			Tier:       "intermediate",
			NextSteps:  fmt.Sprintf("Good progress! Continue with intermediate %s topics", topic),
			FocusAreas: []string{"practical applications", "problem-solving"},
			Resources: []string{
				fmt.Sprintf("Intermediate %s tutorials", topic),
				fmt.Sprintf("%s practice exercises", topic),
			},
		}
	}
	return Recommendation{
		Tier:       "remedial",
		NextSteps:  fmt.Sprintf("Let's review the basics of %s before moving forward", topic),
		FocusAreas: []string{"fundamental concepts", "basic applications"},
		Resources: []string{
			fmt.Sprintf("Beginner %s tutorials", topic),
			fmt.Sprintf("%s fundamentals review", topic),
		},
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxScore {
		return MaxScore
	}
	return n
}
