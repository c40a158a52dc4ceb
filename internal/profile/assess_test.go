package profile

import (
	"strings"
	"testing"
)

func TestAssess_LevelAlwaysValid(t *testing.T) {
	experiences := []string{"beginner", "intermediate", "advanced", "wizard", ""}
	goals := []string{"", "want advanced expert skills", "just the basic introduction", "build a web app"}

	for _, exp := range experiences {
		for _, g := range goals {
			p := Assess("go", exp, g, "visual")
			switch p.AssessedLevel {
			case LevelBeginner, LevelIntermediate, LevelAdvanced:
			default:
				t.Fatalf("Assess(%q, %q) produced invalid level %q", exp, g, p.AssessedLevel)
			}
		}
	}
}

func TestAssess_BasicGoalsKeepBeginnerSlow(t *testing.T) {
	p := Assess("ml", "beginner", "just the basic introduction", "visual")
	if p.AssessedLevel != LevelBeginner {
		t.Fatalf("expected beginner, got %q", p.AssessedLevel)
	}
	if p.Pace != PaceSlow {
		t.Fatalf("expected slow pace, got %q", p.Pace)
	}
	if p.Factors.GoalComplexity != -1 {
		t.Fatalf("expected goal complexity -1, got %d", p.Factors.GoalComplexity)
	}
	if p.EstimatedTimeline != "6-8 weeks" {
		t.Fatalf("expected 6-8 weeks, got %q", p.EstimatedTimeline)
	}
}

func TestAssess_AdvancedGoalsRaiseLevelStyleWinsPace(t *testing.T) {
	p := Assess("ml", "beginner", "want advanced expert skills", "theoretical")
	if p.Factors.GoalComplexity != 1 {
		t.Fatalf("expected goal complexity +1, got %d", p.Factors.GoalComplexity)
	}
	if p.AssessedLevel != LevelIntermediate {
		t.Fatalf("expected intermediate, got %q", p.AssessedLevel)
	}
	// Theoretical style overrides the intermediate→moderate default.
	if p.Pace != PaceFast {
		t.Fatalf("expected fast pace from style override, got %q", p.Pace)
	}
}

func TestAssess_HandsOnForcesModerate(t *testing.T) {
	p := Assess("go", "advanced", "want expert mastery", "hands-on")
	if p.AssessedLevel != LevelAdvanced {
		t.Fatalf("expected advanced, got %q", p.AssessedLevel)
	}
	if p.Pace != PaceModerate {
		t.Fatalf("expected moderate pace for hands-on, got %q", p.Pace)
	}
}

func TestAssess_ClampAtAdvanced(t *testing.T) {
	p := Assess("go", "advanced", "advanced expert everything", "visual")
	if p.AssessedLevel != LevelAdvanced {
		t.Fatalf("expected level clamped at advanced, got %q", p.AssessedLevel)
	}
}

func TestAssess_UnknownInputsDegradeToDefaults(t *testing.T) {
	p := Assess("go", "grandmaster", "stuff", "osmosis")
	if p.StatedExperience != LevelBeginner {
		t.Fatalf("expected unknown experience to default to beginner, got %q", p.StatedExperience)
	}
	if p.PreferredStyle != StyleVisual {
		t.Fatalf("expected unknown style to default to visual, got %q", p.PreferredStyle)
	}
}

func TestAssess_Immutable(t *testing.T) {
	p1 := Assess("go", "beginner", "", "visual")
	p2 := Assess("go", "beginner", "", "visual")
	if p1 != p2 {
		t.Fatal("expected identical inputs to produce identical profiles")
	}
}

func TestInterviewQuestions(t *testing.T) {
	qs := InterviewQuestions("rust")
	if len(qs) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(qs))
	}
	if !strings.Contains(qs[0], "rust") {
		t.Fatalf("expected topic in first question, got %q", qs[0])
	}
}

func TestPaceTimelineEstimate(t *testing.T) {
	cases := map[Pace]string{
		PaceSlow:     "6-8 weeks",
		PaceModerate: "4-6 weeks",
		PaceFast:     "2-3 weeks",
	}
	for pace, want := range cases {
		if got := pace.TimelineEstimate(); got != want {
			t.Fatalf("TimelineEstimate(%q) = %q, want %q", pace, got, want)
		}
	}
	if got := Pace("sprint").TimelineEstimate(); got != "4-6 weeks" {
		t.Fatalf("unknown pace should estimate 4-6 weeks, got %q", got)
	}
}
