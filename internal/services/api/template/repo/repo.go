// Package repo reads template aggregates from the upstream admin API
package repo

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
)

// Repo is the narrow upstream surface template analytics needs
type Repo interface {
	TemplateUsage(ctx context.Context, rng daterange.Range) ([]upstream.TemplateCountRow, error)
	TemplateChoiceCounts(
		ctx context.Context,
		rng daterange.Range,
		choice upstream.ChoiceType,
		page, size int,
	) ([]upstream.TemplateCountRow, error)
}

// NewUpstream binds the shared upstream client as a template repo
func NewUpstream(c *upstream.Client) Repo {
	if c == nil {
		panic("template.Repo requires a non nil upstream client")
	}
	return c
}
