package evaluate

import "fmt"

const analysisSystemPrompt = `You are an educational assessor scoring a learner's submission.

Rules:
- Score from 0 to 100 based only on the submission content.
- Be fair but rigorous: reserve scores above 90 for genuinely strong work.
- The feedback should be 2-4 sentences, specific to the submission, and
  constructive in tone.
- Respond with the requested JSON only.`

// analysisPrompt builds the per-route analysis prompt.
func analysisPrompt(ct CheckpointType, topic, submission string) string {
	switch ct {
	case CheckpointQuiz:
		return fmt.Sprintf("Analyze this response about %s: '%s'. Rate the understanding from 0-100 and provide feedback.", topic, submission)
	case CheckpointProject:
		return fmt.Sprintf("Evaluate this project submission about %s: '%s'. Assess creativity, technical accuracy, and completeness (0-100).", topic, submission)
	case CheckpointPresentation:
		return fmt.Sprintf("Evaluate this presentation about %s: '%s'. Assess clarity, depth, and engagement (0-100).", topic, submission)
	}
	return fmt.Sprintf("Evaluate this response about %s: '%s'. Assess understanding and accuracy (0-100).", topic, submission)
}

// fallbackScore is the deterministic substitute score per route.
func fallbackScore(ct CheckpointType) int {
	switch ct {
	case CheckpointQuiz:
		return 75
	case CheckpointProject:
		return 80
	case CheckpointPresentation:
		return 85
	}
	return 70
}

// fallbackFeedback is the templated substitute feedback per route.
func fallbackFeedback(ct CheckpointType, topic string) string {
	switch ct {
	case CheckpointQuiz:
		return fmt.Sprintf("Response demonstrates basic understanding of %s", topic)
	case CheckpointProject:
		return fmt.Sprintf("Project demonstrates understanding of %s concepts", topic)
	case CheckpointPresentation:
		return fmt.Sprintf("Presentation shows understanding of %s", topic)
	}
	return fmt.Sprintf("Response demonstrates basic knowledge of %s", topic)
}

// analysisMethod labels the route for the result transcript.
func analysisMethod(ct CheckpointType) string {
	switch ct {
	case CheckpointQuiz:
		return "ai_text_analysis"
	case CheckpointProject:
		return "ai_project_analysis"
	case CheckpointPresentation:
		return "ai_presentation_analysis"
	}
	return "ai_general_analysis"
}
