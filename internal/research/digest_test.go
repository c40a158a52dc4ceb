package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mentor/internal/outcome"
)

func TestResearch_Success(t *testing.T) {
	mock := NewMockSearcher()
	mock.AddResults([]SearchResult{
		{Title: "Go Tour", URL: "https://go.dev/tour", Snippet: "An interactive introduction to Go"},
		{Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Snippet: "Tips for writing clear, idiomatic Go"},
	})
	svc := NewService(mock)

	d := svc.Research(context.Background(), "go", "basic")

	if d.Status != outcome.Success {
		t.Fatalf("expected success, got %q (err: %s)", d.Status, d.Err)
	}
	if d.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", d.Confidence)
	}
	if len(d.KeyFindings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(d.KeyFindings))
	}
	if !strings.HasPrefix(d.KeyFindings[0], "Go Tour: ") {
		t.Fatalf("unexpected finding format: %q", d.KeyFindings[0])
	}
	if d.SearchQuery != "go basic learning tutorial guide" {
		t.Fatalf("unexpected query: %q", d.SearchQuery)
	}
	if len(mock.Queries) != 1 {
		t.Fatalf("expected one search call, got %d", len(mock.Queries))
	}
}

func TestResearch_SkipsEmptyResults(t *testing.T) {
	mock := NewMockSearcher()
	mock.AddResults([]SearchResult{
		{Title: "Good", URL: "https://example.com", Snippet: "useful"},
		{Title: "", URL: "https://example.com/untitled", Snippet: "no title"},
		{Title: "No snippet", URL: "https://example.com/empty"},
	})
	svc := NewService(mock)

	d := svc.Research(context.Background(), "go", "basic")
	if len(d.KeyFindings) != 1 {
		t.Fatalf("expected 1 usable finding, got %d", len(d.KeyFindings))
	}
}

func TestResearch_TruncatesLongSnippets(t *testing.T) {
	mock := NewMockSearcher()
	mock.AddResults([]SearchResult{
		{Title: "Long", URL: "https://example.com", Snippet: strings.Repeat("x", 500)},
	})
	svc := NewService(mock)

	d := svc.Research(context.Background(), "go", "basic")
	// "Long: " + 200 chars + "..."
	if want := len("Long: ") + 200 + 3; len(d.KeyFindings[0]) != want {
		t.Fatalf("expected finding length %d, got %d", want, len(d.KeyFindings[0]))
	}
}

func TestResearch_FallbackOnSearchError(t *testing.T) {
	mock := NewMockSearcher()
	mock.AddError(errors.New("search backend down"))
	svc := NewService(mock)

	d := svc.Research(context.Background(), "rust", "advanced")

	if d.Status != outcome.Fallback {
		t.Fatalf("expected fallback, got %q", d.Status)
	}
	if d.Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %v", d.Confidence)
	}
	if len(d.KeyFindings) != 3 || len(d.Resources) != 3 {
		t.Fatalf("expected 3 canned findings and resources, got %d/%d", len(d.KeyFindings), len(d.Resources))
	}
	if !strings.Contains(d.KeyFindings[0], "rust") {
		t.Fatalf("expected topic in fallback finding, got %q", d.KeyFindings[0])
	}
	if d.Err == "" {
		t.Fatal("expected captured error text")
	}
}

func TestResearch_NilSearcherFallsBack(t *testing.T) {
	svc := NewService(nil)

	d := svc.Research(context.Background(), "go", "basic")
	if d.Status != outcome.Fallback {
		t.Fatalf("expected fallback with nil searcher, got %q", d.Status)
	}
}
