// Package content produces learning material for a roadmap phase: text is
// rendered locally from level and style templates, while image, audio and
// video go through the generation collaborator. An unsupported content type
// is a validation error; a failing collaborator degrades to fallback text.
package content

import "github.com/abhisek/mentor/internal/outcome"

// Type is the requested content modality.
type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeAudio Type = "audio"
	TypeVideo Type = "video"
)

// ParseType maps a raw string to a Type. Returns false for unsupported
// values; the caller surfaces those as validation errors, never silently
// degrades them.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeText, TypeImage, TypeAudio, TypeVideo:
		return Type(s), true
	}
	return "", false
}

// Body holds the generated material. Exactly one non-text field is set for
// media content; Text is always populated as a caption or transcript.
type Body struct {
	Text     string
	ImageURL string
	VideoURL string
	AudioURL string
}

// Meta describes the generated content.
type Meta struct {
	Length          string
	DifficultyScore float64
	Method          string

	// Err holds the captured collaborator error text on fallback content.
	Err string
}

// Content is the result of one generation request.
type Content struct {
	Status outcome.Status
	Type   Type
	Topic  string
	Level  string
	Style  string
	Body   Body
	Meta   Meta
}

// difficultyScore maps a level to its difficulty weight. Unknown levels
// land in the middle.
func difficultyScore(level string) float64 {
	switch level {
	case "beginner":
		return 0.3
	case "intermediate":
		return 0.7
	case "advanced":
		return 0.9
	}
	return 0.5
}
