package domain

import (
	"context"

	"retroboard/internal/core/daterange"
)

// ServicePort is consumed by handlers and the board wiring
type ServicePort interface {
	StayTime(ctx context.Context, rng daterange.Range) (StayTimeDistribution, error)
	CompletionRate(ctx context.Context, rng daterange.Range) (CompletionStat, error)
}
