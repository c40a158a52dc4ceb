package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// progressRepo implements ProgressRepo over sqlx.
type progressRepo struct {
	db *sqlx.DB
}

func (r *progressRepo) Save(ctx context.Context, learnerID string, data json.RawMessage) error {
	if learnerID == "" {
		return fmt.Errorf("learner id is required")
	}

	// Upsert: concurrent writes for the same learner are last-write-wins.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (learner_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (learner_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		learnerID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress for %s: %w", learnerID, err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context, learnerID string) (*ProgressRecord, error) {
	// The pure-Go sqlite driver returns TEXT columns as string, which
	// database/sql can't scan into json.RawMessage; scan into a string
	// intermediate and convert.
	var row struct {
		LearnerID string    `db:"learner_id"`
		Data      string    `db:"data"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT learner_id, data, updated_at FROM progress WHERE learner_id = ?`,
		learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", learnerID, err)
	}
	return &ProgressRecord{
		LearnerID: row.LearnerID,
		Data:      json.RawMessage(row.Data),
		UpdatedAt: row.UpdatedAt,
	}, nil
}
