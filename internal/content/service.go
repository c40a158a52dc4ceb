package content

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/internal/outcome"
)

// contentLength is the nominal consumption time reported for generated
// material.
const contentLength = "5 minutes"

// Service generates learning content for the orchestration loop.
type Service struct {
	generator Generator
}

// NewService creates a content service. A nil generator is allowed; all
// media requests then produce fallback content.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Generate produces content of the requested type for a topic, level and
// learning style.
//
// An unsupported content type returns a ValidationError, the one failure
// class that terminates a step. A failing generation collaborator instead
// degrades to deterministic fallback text tagged with the error.
func (s *Service) Generate(ctx context.Context, contentType, topic, level, style string) (Content, error) {
	ct, ok := ParseType(contentType)
	if !ok {
		return Content{}, &outcome.ValidationError{
			Field: "content_type",
			Value: contentType,
			Msg:   "supported types are text, image, audio, video",
		}
	}

	c := Content{
		Status: outcome.Success,
		Type:   ct,
		Topic:  topic,
		Level:  level,
		Style:  style,
		Meta: Meta{
			Length:          contentLength,
			DifficultyScore: difficultyScore(level),
			Method:          "ai_generated",
		},
	}

	switch ct {
	case TypeText:
		// Text is rendered locally; it cannot fail.
		c.Body.Text = renderText(topic, level, style)
		return c, nil

	case TypeImage:
		artifact, err := s.generate(ctx, imagePrompt(topic, level, style), ModalityImage)
		if err != nil {
			return s.fallback(c, err), nil
		}
		c.Body.Text = fmt.Sprintf("Visual explanation of %s concepts", topic)
		c.Body.ImageURL = artifact.URL
		return c, nil

	case TypeAudio:
		script := fmt.Sprintf("Welcome to this %s level lesson on %s. This content is designed for %s learners.", level, topic, style)
		artifact, err := s.generate(ctx, script, ModalityAudio)
		if err != nil {
			return s.fallback(c, err), nil
		}
		c.Body.Text = script
		c.Body.AudioURL = artifact.URL
		return c, nil

	default: // TypeVideo
		prompt := fmt.Sprintf("Create a short educational video about %s for %s learners", topic, level)
		artifact, err := s.generate(ctx, prompt, ModalityVideo)
		if err != nil {
			return s.fallback(c, err), nil
		}
		c.Body.Text = fmt.Sprintf("Video lesson on %s", topic)
		c.Body.VideoURL = artifact.URL
		return c, nil
	}
}

// generate runs the collaborator call for one modality. Exactly one attempt.
func (s *Service) generate(ctx context.Context, prompt string, modality Modality) (*Artifact, error) {
	if s.generator == nil {
		return nil, &outcome.CollaboratorError{
			Collaborator: "generation",
			Op:           string(modality),
			Err:          fmt.Errorf("no generation collaborator configured"),
		}
	}
	artifact, err := s.generator.Generate(ctx, prompt, modality)
	if err != nil {
		return nil, &outcome.CollaboratorError{Collaborator: "generation", Op: string(modality), Err: err}
	}
	return artifact, nil
}

// fallback substitutes basic text content when a media collaborator fails.
func (s *Service) fallback(c Content, err error) Content {
	c.Status = outcome.Fallback
	c.Body = Body{
		Text: fmt.Sprintf("Comprehensive %s level content about %s", c.Level, c.Topic),
	}
	c.Meta.Method = "fallback"
	c.Meta.Err = err.Error()
	return c
}
