// Package service contains space composition workflows
package service

import (
	"context"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
	"retroboard/internal/core/viewmodel"
	"retroboard/internal/services/api/space/domain"
	"retroboard/internal/services/api/space/repo"
)

// Service defines the space composition contract
type Service interface {
	domain.ServicePort
}

// Svc implements the space composition service
type Svc struct {
	Repo repo.Repo
}

// New constructs a space service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("space.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Ratio sums all members' team and individual space counts and splits them
func (s *Svc) Ratio(ctx context.Context, rng daterange.Range) (domain.CompositionRatio, error) {
	rows, err := s.Repo.SpaceMemberCounts(ctx, rng)
	if err != nil {
		return domain.CompositionRatio{}, err
	}

	var team, individual int64
	for _, r := range rows {
		team += r.TeamCount
		individual += individualOf(r)
	}
	pair := viewmodel.NewRatioPair("TEAM", team, "INDIVIDUAL", individual)
	return domain.CompositionRatio{RatioPair: pair}, nil
}

// Members returns the per-member composition listing
// Missing upstream fields decode as zero and stay zero in the table
func (s *Svc) Members(ctx context.Context, rng daterange.Range) (domain.MemberTable, error) {
	rows, err := s.Repo.SpaceMemberCounts(ctx, rng)
	if err != nil {
		return domain.MemberTable{}, err
	}

	out := make([]domain.MemberRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.MemberRow{
			MemberID:   r.MemberID,
			Total:      r.TotalCount,
			Team:       r.TeamCount,
			Individual: individualOf(r),
		})
	}
	return domain.MemberTable{Rows: out}, nil
}

// individualOf derives the individual space count, clamped at zero so an
// inconsistent upstream row (team > total) never produces a negative count
func individualOf(r upstream.SpaceMemberRow) int64 {
	if r.TeamCount >= r.TotalCount {
		return 0
	}
	return r.TotalCount - r.TeamCount
}
