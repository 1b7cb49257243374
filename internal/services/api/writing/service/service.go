// Package service contains writing analytics workflows
package service

import (
	"context"

	"retroboard/internal/core/daterange"
	"retroboard/internal/core/viewmodel"
	"retroboard/internal/services/api/writing/domain"
	"retroboard/internal/services/api/writing/repo"
)

// Service defines the writing analytics contract
type Service interface {
	domain.ServicePort
}

// Svc implements the writing analytics service
type Svc struct {
	Repo repo.Repo
}

// New constructs a writing service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("writing.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// StayTime returns the normalized stay-time histogram for the range
func (s *Svc) StayTime(ctx context.Context, rng daterange.Range) (domain.StayTimeDistribution, error) {
	rows, err := s.Repo.StayTimes(ctx, rng)
	if err != nil {
		return domain.StayTimeDistribution{}, err
	}
	raw := make([]viewmodel.Row, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, viewmodel.Row{Label: r.Label, Value: r.Count})
	}
	return domain.StayTimeDistribution{Buckets: viewmodel.Distribution(raw)}, nil
}

// CompletionRate returns the completion fraction as a one-decimal percentage
func (s *Svc) CompletionRate(ctx context.Context, rng daterange.Range) (domain.CompletionStat, error) {
	res, err := s.Repo.RetrospectCompletionRate(ctx, rng)
	if err != nil {
		return domain.CompletionStat{}, err
	}
	return domain.CompletionStat{Rate: viewmodel.PercentOfFraction(res.CompletionRate)}, nil
}
