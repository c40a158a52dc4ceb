package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mentor/internal/store"
)

// recordingRepo captures appended events in memory.
type recordingRepo struct {
	events []store.CollabEventData
}

func (r *recordingRepo) AppendCollabEvent(_ context.Context, data store.CollabEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) QueryCollabEvents(context.Context, store.QueryOpts) ([]store.CollabEventRecord, error) {
	return nil, nil
}

func (r *recordingRepo) GetCollabEvent(context.Context, int) (*store.CollabEventRecord, error) {
	return nil, nil
}

func (r *recordingRepo) UsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "evaluation")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "score this"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "evaluation" {
		t.Fatalf("expected evaluation purpose, got %q", e.Purpose)
	}
	if !e.Success {
		t.Fatal("expected success flag")
	}
	if e.InputTokens != 7 || e.OutputTokens != 3 {
		t.Fatalf("unexpected token counts: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "score this") {
		t.Fatalf("expected request body captured, got %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Fatalf("expected response body captured, got %q", e.ResponseBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider() // empty queue fails
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected failure to be logged, got %d events", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Fatal("expected failure flag")
	}
	if e.ErrorMessage == "" {
		t.Fatal("expected captured error message")
	}
	if e.Purpose != "unknown" {
		t.Fatalf("expected unknown purpose without label, got %q", e.Purpose)
	}
}
