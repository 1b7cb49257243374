package service

import (
	"context"
	"testing"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
	perr "retroboard/internal/platform/errors"
)

type fakeRepo struct {
	stay    []upstream.StayTimeRow
	stayErr error
	rate    upstream.CompletionRate
	rateErr error
	lastRng daterange.Range
}

func (f *fakeRepo) StayTimes(_ context.Context, rng daterange.Range) ([]upstream.StayTimeRow, error) {
	f.lastRng = rng
	return f.stay, f.stayErr
}

func (f *fakeRepo) RetrospectCompletionRate(_ context.Context, rng daterange.Range) (upstream.CompletionRate, error) {
	f.lastRng = rng
	return f.rate, f.rateErr
}

func TestStayTimeNormalizes(t *testing.T) {
	f := &fakeRepo{stay: []upstream.StayTimeRow{
		{Label: "0-5m", Count: 0},
		{Label: "5-10m", Count: 40},
		{Label: "10-15m", Count: 60},
	}}
	s := New(f)

	got, err := s.StayTime(context.Background(), daterange.Range{})
	if err != nil {
		t.Fatalf("StayTime: %v", err)
	}
	if len(got.Buckets) != 2 {
		t.Fatalf("buckets = %+v, want the zero row dropped", got.Buckets)
	}
	if got.Buckets[0].Percentage != 40.0 || got.Buckets[1].Percentage != 60.0 {
		t.Fatalf("percentages = %+v", got.Buckets)
	}
}

func TestStayTimePropagatesError(t *testing.T) {
	f := &fakeRepo{stayErr: perr.Upstreamf("status 500")}
	s := New(f)

	if _, err := s.StayTime(context.Background(), daterange.Range{}); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("err = %v, want upstream code", err)
	}
}

func TestCompletionRateConvertsFraction(t *testing.T) {
	f := &fakeRepo{rate: upstream.CompletionRate{CompletionRate: 0.8125}}
	s := New(f)

	got, err := s.CompletionRate(context.Background(), daterange.Range{})
	if err != nil {
		t.Fatalf("CompletionRate: %v", err)
	}
	if got.Rate != 81.3 {
		t.Fatalf("rate = %v, want 81.3", got.Rate)
	}
}
