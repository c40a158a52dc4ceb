package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// defaultQueryLimit bounds event listings when no limit is given.
const defaultQueryLimit = 50

// eventRepo implements EventRepo over sqlx.
type eventRepo struct {
	db *sqlx.DB
}

func (r *eventRepo) AppendCollabEvent(ctx context.Context, data CollabEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collab_events
			(timestamp, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(),
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append collaborator event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCollabEvents(ctx context.Context, opts QueryOpts) ([]CollabEventRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	query := `SELECT id, timestamp, provider, model, purpose, input_tokens,
		output_tokens, latency_ms, success, error_message, request_body, response_body
		FROM collab_events`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	var events []CollabEventRecord
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("query collaborator events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetCollabEvent(ctx context.Context, id int) (*CollabEventRecord, error) {
	var rec CollabEventRecord
	err := r.db.GetContext(ctx, &rec, `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message, request_body, response_body
		FROM collab_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get collaborator event %d: %w", id, err)
	}
	return &rec, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	var stats []UsageStat
	err := r.db.SelectContext(ctx, &stats, `
		SELECT purpose,
			COUNT(*) AS calls,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		FROM collab_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage: %w", err)
	}
	return stats, nil
}
