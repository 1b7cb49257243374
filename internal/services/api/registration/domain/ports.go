package domain

import (
	"context"

	"retroboard/internal/core/daterange"
)

// ServicePort is consumed by handlers and the board wiring
type ServicePort interface {
	SignupSeries(ctx context.Context, rng daterange.Range) ([]SignupPoint, error)
}
