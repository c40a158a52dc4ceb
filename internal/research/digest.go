package research

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/internal/outcome"
)

// maxSearchResults caps how many hits feed a digest.
const maxSearchResults = 5

// snippetLimit truncates snippets inside key findings.
const snippetLimit = 200

// Digest summarizes topic research for roadmap construction.
type Digest struct {
	Status      outcome.Status
	Topic       string
	DepthLevel  string
	KeyFindings []string
	Resources   []SearchResult
	Confidence  float64
	SearchQuery string

	// Err holds the captured collaborator error text on fallback digests.
	Err string
}

// Service runs topic research through the search collaborator.
type Service struct {
	searcher Searcher
}

// NewService creates a research service. A nil searcher is allowed; every
// digest is then a fallback.
func NewService(searcher Searcher) *Service {
	return &Service{searcher: searcher}
}

// Research builds a digest for a topic at the given depth level
// ("basic"/"intermediate"/"advanced"). A failing search collaborator yields
// a deterministic fallback digest; Research never returns an error.
func (s *Service) Research(ctx context.Context, topic, depthLevel string) Digest {
	query := fmt.Sprintf("%s %s learning tutorial guide", topic, depthLevel)

	results, err := s.search(ctx, query)
	if err != nil {
		return fallbackDigest(topic, depthLevel, query, err)
	}

	d := Digest{
		Status:      outcome.Success,
		Topic:       topic,
		DepthLevel:  depthLevel,
		Confidence:  0.9,
		SearchQuery: query,
	}

	for _, r := range results {
		if r.Title == "" || r.Snippet == "" {
			continue
		}
		d.KeyFindings = append(d.KeyFindings, fmt.Sprintf("%s: %s...", r.Title, truncate(r.Snippet, snippetLimit)))
		d.Resources = append(d.Resources, r)
	}

	return d
}

func (s *Service) search(ctx context.Context, query string) ([]SearchResult, error) {
	if s.searcher == nil {
		return nil, &outcome.CollaboratorError{
			Collaborator: "search",
			Op:           "search",
			Err:          fmt.Errorf("no search collaborator configured"),
		}
	}
	results, err := s.searcher.Search(ctx, query, maxSearchResults)
	if err != nil {
		return nil, &outcome.CollaboratorError{Collaborator: "search", Op: "search", Err: err}
	}
	return results, nil
}

// fallbackDigest is the deterministic substitute when search fails.
func fallbackDigest(topic, depthLevel, query string, err error) Digest {
	return Digest{
		Status:     outcome.Fallback,
		Topic:      topic,
		DepthLevel: depthLevel,
		KeyFindings: []string{
			fmt.Sprintf("Core concepts in %s", topic),
			fmt.Sprintf("Latest developments in %s", topic),
			fmt.Sprintf("Best practices for %s", topic),
		},
		Resources: []SearchResult{
			{Title: fmt.Sprintf("Official documentation for %s", topic)},
			{Title: fmt.Sprintf("Community resources for %s", topic)},
			{Title: fmt.Sprintf("Expert tutorials on %s", topic)},
		},
		Confidence:  0.7,
		SearchQuery: query,
		Err:         err.Error(),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
