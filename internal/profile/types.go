// Package profile turns a learner's interview answers into a structured
// profile with an assessed proficiency level and pacing recommendation.
package profile

// Level is an assessed or self-reported proficiency level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelOrdinals maps levels to their 1-3 ordinal for scoring.
var levelOrdinals = map[Level]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
}

// ordinalLevels is the inverse lookup, indexed by ordinal-1.
var ordinalLevels = [3]Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel maps a raw string to a Level. Unknown values degrade to
// beginner rather than failing.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return Level(s)
	}
	return LevelBeginner
}

// Style is the learner's preferred learning style.
type Style string

const (
	StyleVisual      Style = "visual"
	StyleAuditory    Style = "auditory"
	StyleHandsOn     Style = "hands-on"
	StyleTheoretical Style = "theoretical"
)

// ParseStyle maps a raw string to a Style, defaulting to visual.
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleVisual, StyleAuditory, StyleHandsOn, StyleTheoretical:
		return Style(s)
	}
	return StyleVisual
}

// Pace is the recommended learning speed.
type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// paceTimelines maps a pace to its estimated learning timeline.
var paceTimelines = map[Pace]string{
	PaceSlow:     "6-8 weeks",
	PaceModerate: "4-6 weeks",
	PaceFast:     "2-3 weeks",
}

// TimelineEstimate returns the estimated timeline for this pace.
func (p Pace) TimelineEstimate() string {
	if t, ok := paceTimelines[p]; ok {
		return t
	}
	return paceTimelines[PaceModerate]
}

// Factors records how the assessed level was derived, for transparency in
// the session transcript.
type Factors struct {
	BaseLevel      Level
	GoalComplexity int // -1, 0 or +1 from the goals text
	FinalLevel     Level
}

// LearnerProfile is the assessed learner profile. It is immutable once
// produced: re-assessment creates a new profile, never mutates in place.
type LearnerProfile struct {
	Topic             string
	StatedExperience  Level
	Goals             string
	PreferredStyle    Style
	AssessedLevel     Level
	Pace              Pace
	Confidence        float64
	EstimatedTimeline string
	Factors           Factors
}
