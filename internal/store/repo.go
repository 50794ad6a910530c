package store

import (
	"context"
	"time"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	UserKey string    // exact user key ("" = any)
	Topic   string    // exact topic ("" = any)
	Limit   int       // max results (0 = unlimited)
	From    time.Time // finished_at >= From
	To      time.Time // finished_at <= To
}

// AttemptRecord is one journaled attempt.
type AttemptRecord struct {
	ID         string
	UserKey    string
	Surname    string
	Name       string
	Patronymic string
	Topic      string
	Correct    int
	Total      int
	Randomized bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the attempt took.
func (r AttemptRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// AttemptRepo provides append and query access to the attempt journal.
type AttemptRepo interface {
	// Append records a completed attempt. An empty ID is filled in.
	Append(ctx context.Context, rec *AttemptRecord) error

	// Query returns attempts newest first.
	Query(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)
}
