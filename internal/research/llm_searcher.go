package research

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mentor/internal/llm"
)

const searchSystemPrompt = `You are a learning-resource curator. Given a search query, list the
most useful real, well-known resources (official documentation, established
tutorial sites, widely used references). For each resource give its title,
canonical URL, and a one-sentence snippet describing what it covers. Only
include resources you are confident exist. Respond with the requested JSON
only.`

// searchSchema constrains the collaborator reply to a result list.
var searchSchema = &llm.Schema{
	Name:        "search-results",
	Description: "A ranked list of learning resources for a search query",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"url":     map[string]any{"type": "string"},
						"snippet": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "url", "snippet"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"results"},
		"additionalProperties": false,
	},
}

// LLMSearcher implements Searcher through the generative collaborator's
// structured output. It stands in for a dedicated search API: the interface
// stays the same when one is wired in.
type LLMSearcher struct {
	provider  llm.Provider
	maxTokens int
}

// NewLLMSearcher creates an LLM-backed Searcher.
func NewLLMSearcher(provider llm.Provider) *LLMSearcher {
	return &LLMSearcher{provider: provider, maxTokens: 1024}
}

func (s *LLMSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	ctx = llm.WithPurpose(ctx, "research")

	req := llm.Request{
		System: searchSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Query: %s\nMax results: %d", query, maxResults)},
		},
		Schema:    searchSchema,
		MaxTokens: s.maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var out struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	if maxResults > 0 && len(out.Results) > maxResults {
		out.Results = out.Results[:maxResults]
	}
	return out.Results, nil
}
