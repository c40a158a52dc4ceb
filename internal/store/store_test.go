package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProgressRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	doc := json.RawMessage(`{"topic":"go","overall_score":75}`)
	if err := repo.Save(ctx, "learner-1", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := repo.Load(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if string(rec.Data) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, rec.Data)
	}
	if rec.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be set")
	}
}

func TestProgressRepo_UpsertLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "learner-1", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, "learner-1", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rec, err := repo.Load(ctx, "learner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(rec.Data) != `{"v":2}` {
		t.Fatalf("expected last write to win, got %s", rec.Data)
	}
}

func TestProgressRepo_LoadMissing(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.ProgressRepo().Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil for missing learner, got %+v", rec)
	}
}

func TestProgressRepo_EmptyLearnerID(t *testing.T) {
	s := openTestStore(t)

	if err := s.ProgressRepo().Save(context.Background(), "", json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for empty learner id")
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []CollabEventData{
		{Provider: "mock", Model: "mock", Purpose: "research", InputTokens: 10, OutputTokens: 20, LatencyMs: 5, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "evaluation", InputTokens: 30, OutputTokens: 40, LatencyMs: 7, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "evaluation", InputTokens: 1, OutputTokens: 2, LatencyMs: 9, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendCollabEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryCollabEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "evaluation" || all[0].ErrorMessage != "boom" {
		t.Fatalf("expected newest event first, got %+v", all[0])
	}

	evals, err := repo.QueryCollabEvents(ctx, QueryOpts{Purpose: "evaluation"})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(evals) != 2 {
		t.Fatalf("expected 2 evaluation events, got %d", len(evals))
	}

	limited, err := repo.QueryCollabEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited query: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestEventRepo_GetCollabEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendCollabEvent(ctx, CollabEventData{
		Provider: "mock", Model: "mock", Purpose: "research", Success: true,
		RequestBody: "req", ResponseBody: "resp",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetCollabEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetCollabEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing id, got %+v", missing)
	}
}

func TestEventRepo_UsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendCollabEvent(ctx, CollabEventData{
			Provider: "mock", Model: "mock", Purpose: "evaluation",
			InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(stats))
	}
	st := stats[0]
	if st.Purpose != "evaluation" || st.Calls != 2 || st.InputTokens != 20 || st.OutputTokens != 10 {
		t.Fatalf("unexpected aggregate: %+v", st)
	}
	if st.AvgLatencyMs != 100 {
		t.Fatalf("expected avg latency 100, got %d", st.AvgLatencyMs)
	}
}
