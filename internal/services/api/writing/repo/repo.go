// Package repo reads retrospect writing aggregates from the upstream admin API
package repo

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
)

// Repo is the narrow upstream surface writing analytics needs
type Repo interface {
	StayTimes(ctx context.Context, rng daterange.Range) ([]upstream.StayTimeRow, error)
	RetrospectCompletionRate(ctx context.Context, rng daterange.Range) (upstream.CompletionRate, error)
}

// NewUpstream binds the shared upstream client as a writing repo
func NewUpstream(c *upstream.Client) Repo {
	if c == nil {
		panic("writing.Repo requires a non nil upstream client")
	}
	return c
}
