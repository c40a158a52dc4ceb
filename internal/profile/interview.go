package profile

import "fmt"

// InterviewQuestions returns the adaptive interview for a topic. The
// questions are deterministic; the hosting front-end asks them and maps the
// answers onto Assess parameters.
func InterviewQuestions(topic string) []string {
	return []string{
		fmt.Sprintf("What's your current experience with %s? (beginner/intermediate/advanced)", topic),
		fmt.Sprintf("What specific aspects of %s are you most interested in learning?", topic),
		fmt.Sprintf("What's your primary goal with learning %s? (career advancement/personal interest/project-based)", topic),
		"How do you prefer to learn? (visual/auditory/hands-on/theoretical)",
		fmt.Sprintf("What's your timeline for learning %s? (days/weeks/months)", topic),
		"Do you have any relevant background in related fields?",
		"What's your preferred learning pace? (slow/steady/fast)",
		fmt.Sprintf("Are there any specific challenges or pain points you've faced with %s?", topic),
	}
}
