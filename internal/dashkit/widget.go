// Package dashkit holds the widget lifecycle machinery for the admin dashboard.
//
// Every metric on the board is one Widget: it owns its own fetch, its own
// loading and error state, and never leaks a failure past itself. A failed
// widget renders empty, the rest of the board is unaffected.
package dashkit

import (
	"context"
	"sync"
	"time"

	"retroboard/internal/core/daterange"
	perr "retroboard/internal/platform/errors"
	"retroboard/internal/platform/logger"
)

// State is the render state of a widget
type State uint8

// Widget lifecycle states
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateErrored
)

// String returns the wire name of the state
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Fetcher loads and normalizes the view model for a range
type Fetcher[T any] func(ctx context.Context, rng daterange.Range) (T, error)

// View is the wire-ready snapshot of a widget
type View struct {
	Name      string     `json:"name"`
	State     string     `json:"state"`
	Data      any        `json:"data,omitempty"`
	Error     *perr.Wire `json:"error,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Refresher is the board-facing surface of a widget
type Refresher interface {
	Name() string
	Refresh(ctx context.Context, rng daterange.Range)
	View() View

	// begin and resolve split a refresh so the board can claim generations
	// for all widgets atomically before any fetch starts
	begin() uint64
	resolve(ctx context.Context, rng daterange.Range, gen uint64)
}

// Widget owns one metric's fetch lifecycle.
//
// Each refresh claims a generation before fetching and commits the result
// only if no newer generation was claimed in the meantime. A response for a
// superseded range is dropped, so the committed view model always reflects
// the most recently claimed generation
type Widget[T any] struct {
	name  string
	fetch Fetcher[T]
	log   logger.Logger
	now   func() time.Time

	mu        sync.Mutex
	gen       uint64
	state     State
	data      T
	err       error
	updatedAt time.Time
}

// NewWidget creates an idle widget with the given name and fetcher
func NewWidget[T any](name string, fetch Fetcher[T]) *Widget[T] {
	return &Widget[T]{
		name:  name,
		fetch: fetch,
		log:   *logger.Named("widget"),
		now:   time.Now,
	}
}

// Name returns the widget's registry name
func (w *Widget[T]) Name() string { return w.name }

// Refresh fetches the view model for rng and commits it unless superseded
func (w *Widget[T]) Refresh(ctx context.Context, rng daterange.Range) {
	w.resolve(ctx, rng, w.begin())
}

// begin claims the next generation and moves the widget to Loading.
// Any resolve holding an earlier generation is discarded from here on
func (w *Widget[T]) begin() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.state = StateLoading
	return w.gen
}

// resolve fetches for a claimed generation and commits the outcome unless
// a newer generation was claimed while the fetch was in flight
func (w *Widget[T]) resolve(ctx context.Context, rng daterange.Range, gen uint64) {
	data, err := w.fetch(ctx, rng)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen {
		w.log.Debug().Str("widget", w.name).Uint64("gen", gen).Uint64("current", w.gen).
			Msg("stale response discarded")
		return
	}

	w.updatedAt = w.now()
	if err != nil {
		// errored widgets render empty, never keep data from a previous range
		var zero T
		w.state = StateErrored
		w.data = zero
		w.err = err
		w.log.Error().Err(err).Str("widget", w.name).Msg("widget fetch failed")
		return
	}
	w.state = StateReady
	w.data = data
	w.err = nil
}

// View returns the current snapshot. Data is only present when Ready
func (w *Widget[T]) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{Name: w.name, State: w.state.String()}
	if !w.updatedAt.IsZero() {
		t := w.updatedAt
		v.UpdatedAt = &t
	}
	switch w.state {
	case StateReady:
		v.Data = w.data
	case StateErrored:
		wire := perr.WireFrom(w.err)
		v.Error = &wire
	}
	return v
}
