// Package service contains the meaningful retention workflow
package service

import (
	"context"
	"sync"

	"retroboard/internal/core/daterange"
	"retroboard/internal/core/viewmodel"
	"retroboard/internal/platform/logger"
	"retroboard/internal/services/api/retention/domain"
	"retroboard/internal/services/api/retention/repo"
)

// Ranger supplies the currently selected dashboard range
type Ranger interface {
	Range() daterange.Range
}

// Service defines the retention service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the retention service.
//
// Like the board widgets it guards against overlapping applies: each Apply
// bumps a generation counter and only the newest one commits to Last
type Svc struct {
	Repo   repo.Repo
	Ranger Ranger
	log    logger.Logger

	mu   sync.Mutex
	gen  uint64
	last domain.RatioResult
}

// New constructs a retention service
func New(r repo.Repo, ranger Ranger) *Svc {
	if r == nil {
		panic("retention.Service requires a non nil Repo")
	}
	if ranger == nil {
		panic("retention.Service requires a non nil Ranger")
	}
	return &Svc{Repo: r, Ranger: ranger, log: *logger.Named("retention")}
}

// Apply computes the meaningful retention ratio for the current range
//
// No range selected is an expected guard, not an error: the caller gets all
// nulls, no upstream call is made, and the last committed result stays in
// place. Upstream failures commit nulls. An empty cohort formats as ratio
// "0.0"
func (s *Svc) Apply(ctx context.Context, c domain.Criteria) domain.RatioResult {
	rng := s.Ranger.Range()
	if !rng.Complete() {
		// still supersedes in-flight applies, but commits nothing
		s.bump()
		return domain.RatioResult{}
	}

	gen := s.bump()
	minCount, minLength := c.Resolve()

	res, err := s.Repo.MeaningfulCohort(ctx, rng, minCount, minLength)
	if err != nil {
		s.log.Error().Err(err).
			Int("min_count", minCount).
			Int("min_length", minLength).
			Msg("meaningful cohort fetch failed")
		return s.commit(gen, domain.RatioResult{})
	}

	ratio := viewmodel.RatioString(res.MeaningfulMemberCount, res.TotalMemberCount)
	matched, total := res.MeaningfulMemberCount, res.TotalMemberCount
	out := domain.RatioResult{
		Ratio:        &ratio,
		MatchedCount: &matched,
		TotalCount:   &total,
	}
	return s.commit(gen, out)
}

// Last returns the most recently committed result
func (s *Svc) Last() domain.RatioResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Svc) bump() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// commit stores out as the latest result unless a newer Apply superseded it
// The caller always gets its own result back either way
func (s *Svc) commit(gen uint64, out domain.RatioResult) domain.RatioResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.log.Debug().Uint64("gen", gen).Uint64("current", s.gen).Msg("stale apply discarded")
		return out
	}
	s.last = out
	return out
}
