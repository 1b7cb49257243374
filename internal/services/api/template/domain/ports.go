package domain

import (
	"context"

	"retroboard/internal/core/daterange"
)

// ServicePort is consumed by handlers and the board wiring
type ServicePort interface {
	Breakdown(ctx context.Context, rng daterange.Range) (Breakdown, error)
	ChoiceRatio(ctx context.Context, rng daterange.Range) (ChoiceRatio, error)
}
