// Package repo reads space aggregates from the upstream admin API
package repo

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
)

// Repo is the narrow upstream surface space analytics needs
type Repo interface {
	SpaceMemberCounts(ctx context.Context, rng daterange.Range) ([]upstream.SpaceMemberRow, error)
}

// NewUpstream binds the shared upstream client as a space repo
func NewUpstream(c *upstream.Client) Repo {
	if c == nil {
		panic("space.Repo requires a non nil upstream client")
	}
	return c
}
