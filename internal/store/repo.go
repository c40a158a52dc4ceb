package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default limit)
	Purpose string // filter by purpose label ("" = all)
}

// ProgressRecord is a learner's saved progress snapshot.
// Data is an opaque JSON document owned by the session layer.
type ProgressRecord struct {
	LearnerID string          `db:"learner_id"`
	Data      json.RawMessage `db:"data"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// ProgressRepo persists learner progress keyed by learner identifier.
// Concurrent writes for the same learner are last-write-wins; there is no
// transactional guarantee across learners.
type ProgressRepo interface {
	// Save upserts the progress document for a learner.
	Save(ctx context.Context, learnerID string, data json.RawMessage) error

	// Load returns the learner's progress, or nil if none saved yet.
	Load(ctx context.Context, learnerID string) (*ProgressRecord, error)
}

// CollabEventData captures a single collaborator request for the event log.
type CollabEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// CollabEventRecord is a stored collaborator event.
type CollabEventRecord struct {
	ID           int       `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
}

// UsageStat aggregates collaborator usage per purpose label.
type UsageStat struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// EventRepo provides append and query access to collaborator events.
type EventRepo interface {
	// AppendCollabEvent records a collaborator API call.
	AppendCollabEvent(ctx context.Context, data CollabEventData) error

	// QueryCollabEvents returns recent events, newest first.
	QueryCollabEvents(ctx context.Context, opts QueryOpts) ([]CollabEventRecord, error)

	// GetCollabEvent returns a single event by ID, or nil if not found.
	GetCollabEvent(ctx context.Context, id int) (*CollabEventRecord, error)

	// UsageByPurpose aggregates token usage and latency per purpose.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)
}
