// Package repo reads member aggregates from the upstream admin API
package repo

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
)

// Repo is the narrow upstream surface registration needs
type Repo interface {
	SignupCounts(ctx context.Context, rng daterange.Range) ([]upstream.SignupRow, error)
}

// NewUpstream binds the shared upstream client as a registration repo
func NewUpstream(c *upstream.Client) Repo {
	if c == nil {
		panic("registration.Repo requires a non nil upstream client")
	}
	return c
}
