// Package service contains registration workflows
package service

import (
	"context"

	"retroboard/internal/core/daterange"
	"retroboard/internal/services/api/registration/domain"
	"retroboard/internal/services/api/registration/repo"
)

// Service defines the registration service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the registration service
type Svc struct {
	Repo repo.Repo
}

// New constructs a registration service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("registration.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// SignupSeries returns the daily signup counts for the range
// An empty series is a valid result, the chart renders its empty state
func (s *Svc) SignupSeries(ctx context.Context, rng daterange.Range) ([]domain.SignupPoint, error) {
	rows, err := s.Repo.SignupCounts(ctx, rng)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SignupPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SignupPoint{Date: r.SignupDate, Count: r.SignupCount})
	}
	return out, nil
}
