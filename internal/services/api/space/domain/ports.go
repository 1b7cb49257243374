package domain

import (
	"context"

	"retroboard/internal/core/daterange"
)

// ServicePort is consumed by handlers and the board wiring
type ServicePort interface {
	Ratio(ctx context.Context, rng daterange.Range) (CompositionRatio, error)
	Members(ctx context.Context, rng daterange.Range) (MemberTable, error)
}
