// Package repo reads the meaningful retention cohort from the upstream admin API
package repo

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
)

// Repo is the narrow upstream surface retention needs
type Repo interface {
	MeaningfulCohort(
		ctx context.Context,
		rng daterange.Range,
		minCount, minLength int,
	) (upstream.MeaningfulResult, error)
}

// NewUpstream binds the shared upstream client as a retention repo
func NewUpstream(c *upstream.Client) Repo {
	if c == nil {
		panic("retention.Repo requires a non nil upstream client")
	}
	return c
}
