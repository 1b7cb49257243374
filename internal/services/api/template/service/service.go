// Package service contains template analytics workflows
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
	"retroboard/internal/core/viewmodel"
	"retroboard/internal/services/api/template/domain"
	"retroboard/internal/services/api/template/repo"
)

// how many top templates each pick flow contributes
const defaultTopN = 5

// Service defines the template analytics contract
type Service interface {
	domain.ServicePort
}

// Svc implements the template analytics service
type Svc struct {
	Repo repo.Repo
	topN int
}

// New constructs a template service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("template.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, topN: defaultTopN}
}

// fetchAll loads usage and both choice flows in parallel
// join semantics: any sub-fetch failing fails the whole load, a partial
// merge would silently misreport the breakdown
func (s *Svc) fetchAll(ctx context.Context, rng daterange.Range) (usage, rec, list []upstream.TemplateCountRow, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		usage, e = s.Repo.TemplateUsage(gctx, rng)
		return e
	})
	g.Go(func() error {
		var e error
		rec, e = s.Repo.TemplateChoiceCounts(gctx, rng, upstream.ChoiceRecommend, 0, s.topN)
		return e
	})
	g.Go(func() error {
		var e error
		list, e = s.Repo.TemplateChoiceCounts(gctx, rng, upstream.ChoiceList, 0, s.topN)
		return e
	})
	if err = g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return usage, rec, list, nil
}

// Breakdown merges combined usage with the per-flow pick counts
// The output always has one row per combined-usage template; templates absent
// from a pick flow contribute zero there
func (s *Svc) Breakdown(ctx context.Context, rng daterange.Range) (domain.Breakdown, error) {
	usage, rec, list, err := s.fetchAll(ctx, rng)
	if err != nil {
		return domain.Breakdown{}, err
	}

	merged := viewmodel.MergeBreakdown(toRows(usage), toRows(rec), toRows(list))
	rows := make([]domain.BreakdownRow, len(merged))
	for i, m := range merged {
		rows[i] = domain.BreakdownRow{
			Name:      m.Label,
			Total:     m.Values[0],
			Recommend: m.Values[1],
			List:      m.Values[2],
		}
	}
	return domain.Breakdown{Rows: rows}, nil
}

// ChoiceRatio sums both pick flows and splits them as percentages
func (s *Svc) ChoiceRatio(ctx context.Context, rng daterange.Range) (domain.ChoiceRatio, error) {
	g, gctx := errgroup.WithContext(ctx)
	var rec, list []upstream.TemplateCountRow
	g.Go(func() error {
		var e error
		rec, e = s.Repo.TemplateChoiceCounts(gctx, rng, upstream.ChoiceRecommend, 0, s.topN)
		return e
	})
	g.Go(func() error {
		var e error
		list, e = s.Repo.TemplateChoiceCounts(gctx, rng, upstream.ChoiceList, 0, s.topN)
		return e
	})
	if err := g.Wait(); err != nil {
		return domain.ChoiceRatio{}, err
	}

	pair := viewmodel.NewRatioPair(
		string(upstream.ChoiceRecommend), sum(rec),
		string(upstream.ChoiceList), sum(list),
	)
	return domain.ChoiceRatio{RatioPair: pair}, nil
}

func toRows(in []upstream.TemplateCountRow) []viewmodel.Row {
	out := make([]viewmodel.Row, len(in))
	for i, r := range in {
		out[i] = viewmodel.Row{Label: r.TemplateName, Value: r.Count}
	}
	return out
}

func sum(in []upstream.TemplateCountRow) int64 {
	var n int64
	for _, r := range in {
		n += r.Count
	}
	return n
}
