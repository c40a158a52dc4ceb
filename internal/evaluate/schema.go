package evaluate

import "github.com/abhisek/mentor/internal/llm"

// AnalysisSchema defines the JSON schema for submission analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "submission-analysis",
	Description: "A score and feedback for a learner submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Assessment score from 0 (no understanding) to 100 (mastery)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback on the submission, 2-4 sentences",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}
