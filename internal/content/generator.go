package content

import (
	"context"
	"fmt"
	"sync"
)

// Modality selects the media backend for a generation request.
type Modality string

const (
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
	ModalityVideo Modality = "video"
)

// Artifact references a generated media asset: either a URL or a local
// artifact path, whichever the backend produces.
type Artifact struct {
	Name string
	URL  string
}

// Generator is the generation collaborator contract.
type Generator interface {
	// Generate produces a media asset for the prompt. One attempt; failures
	// are reported, not retried.
	Generate(ctx context.Context, prompt string, modality Modality) (*Artifact, error)
}

// MockGenerator is a deterministic Generator for testing.
type MockGenerator struct {
	mu        sync.Mutex
	artifacts []*Artifact
	errs      []error
	Prompts   []string
}

// NewMockGenerator creates an empty MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// AddArtifact queues a canned artifact.
func (m *MockGenerator) AddArtifact(a *Artifact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts = append(m.artifacts, a)
	m.errs = append(m.errs, nil)
}

// AddError queues a canned failure.
func (m *MockGenerator) AddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts = append(m.artifacts, nil)
	m.errs = append(m.errs, err)
}

// Generate returns the next canned response or an error when the queue is
// empty.
func (m *MockGenerator) Generate(_ context.Context, prompt string, _ Modality) (*Artifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.artifacts) == 0 {
		return nil, fmt.Errorf("no canned artifacts left")
	}

	a, err := m.artifacts[0], m.errs[0]
	m.artifacts = m.artifacts[1:]
	m.errs = m.errs[1:]
	if err != nil {
		return nil, err
	}
	return a, nil
}
