package profile

import "strings"

// assessConfidence is the fixed confidence score attached to every
// rule-based assessment.
const assessConfidence = 0.85

// Assess derives a LearnerProfile from interview answers.
//
// The stated experience maps to an ordinal base level 1-3 (unknown values
// default to beginner). The goals text shifts the level by at most one step:
// "advanced"/"expert" raise it, "basic"/"introduction" lower it. The result
// is clamped to the 1-3 range. The pace follows the assessed level
// (beginner→slow, intermediate→moderate, advanced→fast) and is then
// overridden by style: hands-on learners get moderate, theoretical learners
// get fast. Style always wins.
//
// Pure function: no I/O and no error paths. Malformed inputs degrade to
// defaults rather than failing.
func Assess(topic, statedExperience, goals, preferredStyle string) LearnerProfile {
	stated := ParseLevel(statedExperience)
	style := ParseStyle(preferredStyle)

	base := levelOrdinals[stated]
	complexity := goalComplexity(goals)

	score := clampOrdinal(base + complexity)
	assessed := ordinalLevels[score-1]

	pace := paceForLevel(assessed)
	switch style {
	case StyleHandsOn:
		pace = PaceModerate // hands-on learners need more time
	case StyleTheoretical:
		pace = PaceFast
	}

	return LearnerProfile{
		Topic:             topic,
		StatedExperience:  stated,
		Goals:             goals,
		PreferredStyle:    style,
		AssessedLevel:     assessed,
		Pace:              pace,
		Confidence:        assessConfidence,
		EstimatedTimeline: pace.TimelineEstimate(),
		Factors: Factors{
			BaseLevel:      stated,
			GoalComplexity: complexity,
			FinalLevel:     assessed,
		},
	}
}

// goalComplexity scans the goals text for complexity signals.
func goalComplexity(goals string) int {
	lower := strings.ToLower(goals)
	switch {
	case strings.Contains(lower, "advanced") || strings.Contains(lower, "expert"):
		return 1
	case strings.Contains(lower, "basic") || strings.Contains(lower, "introduction"):
		return -1
	}
	return 0
}

func clampOrdinal(n int) int {
	if n < 1 {
		return 1
	}
	if n > 3 {
		return 3
	}
	return n
}

func paceForLevel(l Level) Pace {
	switch l {
	case LevelIntermediate:
		return PaceModerate
	case LevelAdvanced:
		return PaceFast
	}
	return PaceSlow
}
