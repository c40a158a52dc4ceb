package app

import (
	"fmt"
	"strings"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
	"github.com/abhisek/mentor/internal/session"
	"github.com/abhisek/mentor/internal/ui/theme"
)

// renderProfile formats the assessed learner profile.
func renderProfile(p profile.LearnerProfile) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Learner Profile") + "\n")
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Assessed level:"), theme.Body.Render(string(p.AssessedLevel)))
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Learning style:"), theme.Body.Render(string(p.PreferredStyle)))
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Pace:"), theme.Body.Render(string(p.Pace)))
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Estimated timeline:"), theme.Body.Render(p.EstimatedTimeline))
	fmt.Fprintf(&b, "%s %.0f%%\n", theme.Label.Render("Confidence:"), p.Confidence*100)
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// renderDigest formats a research digest.
func renderDigest(d research.Digest) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Research Digest") + "\n")
	for _, f := range d.KeyFindings {
		fmt.Fprintf(&b, "  • %s\n", theme.Body.Render(f))
	}
	if len(d.Resources) > 0 {
		b.WriteString(theme.Label.Render("Resources:") + "\n")
		for _, r := range d.Resources {
			line := r.Title
			if r.URL != "" {
				line += " (" + r.URL + ")"
			}
			fmt.Fprintf(&b, "  • %s\n", theme.Body.Render(line))
		}
	}
	if d.Status.Degraded() {
		b.WriteString(theme.Degraded.Render("Search was unavailable; showing general guidance.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRoadmap formats a learning roadmap with its phases and any
// adaptation.
func renderRoadmap(r roadmap.Roadmap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", theme.Heading.Render("Roadmap:"), theme.Body.Render(r.Topic))
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Timeline:"), theme.Body.Render(r.Timeline))
	for i, p := range r.Phases {
		fmt.Fprintf(&b, "%s\n", theme.Prompt.Render(fmt.Sprintf("Phase %d: %s (%s)", i+1, p.Name, p.Duration)))
		for _, o := range p.Objectives {
			fmt.Fprintf(&b, "  - %s\n", theme.Body.Render(o))
		}
		for _, c := range p.Checkpoints {
			fmt.Fprintf(&b, "  %s %s\n", theme.Label.Render("checkpoint:"), theme.Body.Render(string(c)))
		}
	}
	if a := r.Adaptation; a != nil {
		b.WriteString(theme.Degraded.Render("Adapted: "+a.Reason) + "\n")
		for _, c := range a.Changes {
			fmt.Fprintf(&b, "  - %s\n", theme.Body.Render(c))
		}
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Updated timeline:"), theme.Body.Render(a.UpdatedTimeline))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderContent formats generated learning content.
func renderContent(c content.Content) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", theme.Heading.Render("Content:"), theme.Body.Render(string(c.Type)))
	if c.Body.Text != "" {
		b.WriteString(theme.Body.Render(c.Body.Text) + "\n")
	}
	if c.Body.ImageURL != "" {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Image:"), theme.Body.Render(c.Body.ImageURL))
	}
	if c.Body.AudioURL != "" {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Audio:"), theme.Body.Render(c.Body.AudioURL))
	}
	if c.Body.VideoURL != "" {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Video:"), theme.Body.Render(c.Body.VideoURL))
	}
	if c.Status.Degraded() {
		b.WriteString(theme.Degraded.Render("Media generation was unavailable; showing text instead.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderEvaluation formats an evaluation result with its recommendation.
func renderEvaluation(e evaluate.Result) string {
	var b strings.Builder
	scoreStyle := theme.Ok
	if e.Score < 70 {
		scoreStyle = theme.Failed
	}
	fmt.Fprintf(&b, "%s %s\n", theme.Heading.Render("Evaluation:"), scoreStyle.Render(fmt.Sprintf("%d/%d", e.Score, e.MaxScore)))
	b.WriteString(theme.Body.Render(e.Feedback) + "\n")
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Next steps:"), theme.Body.Render(e.Recommendation.NextSteps))
	if len(e.Recommendation.FocusAreas) > 0 {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Focus areas:"), theme.Body.Render(strings.Join(e.Recommendation.FocusAreas, ", ")))
	}
	for _, r := range e.Recommendation.Resources {
		fmt.Fprintf(&b, "  • %s\n", theme.Body.Render(r))
	}
	if e.Status.Degraded() {
		b.WriteString(theme.Degraded.Render("Automated analysis was unavailable; score is a default estimate.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderSummary formats the end-of-session summary.
func renderSummary(s *session.Session) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session Summary") + "\n")
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Topic:"), theme.Body.Render(s.Topic))
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Phase reached:"), theme.Body.Render(s.CurrentPhase()))
	fmt.Fprintf(&b, "%s %d/%d\n", theme.Label.Render("Checkpoints completed:"), len(s.Completed), s.Roadmap.TotalCheckpoints())
	fmt.Fprintf(&b, "%s %d\n", theme.Label.Render("Overall score:"), s.OverallScore())

	degraded := 0
	for _, step := range s.Steps {
		if step.Status.Degraded() {
			degraded++
		}
	}
	if degraded > 0 {
		b.WriteString(theme.Degraded.Render(fmt.Sprintf("%d step(s) ran in degraded mode.", degraded)) + "\n")
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}
