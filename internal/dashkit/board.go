package dashkit

import (
	"context"
	"sync"

	"retroboard/internal/core/daterange"
	"retroboard/internal/platform/logger"
)

// Board holds the shared date range and the widget registry.
//
// The range has a single writer (the range endpoint); widgets never change it.
// Refreshes fan out in parallel with no ordering between widgets
type Board struct {
	log logger.Logger

	mu      sync.RWMutex
	rng     daterange.Range
	widgets []Refresher
	byName  map[string]Refresher
}

// NewBoard creates an empty board with no range set
func NewBoard() *Board {
	return &Board{
		log:    *logger.Named("board"),
		byName: make(map[string]Refresher),
	}
}

// Register adds a widget to the board. Duplicate names panic at wire-up time
func (b *Board) Register(w Refresher) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.byName[w.Name()]; dup {
		panic("dashkit: duplicate widget name " + w.Name())
	}
	b.widgets = append(b.widgets, w)
	b.byName[w.Name()] = w
}

// Range returns the currently selected range
func (b *Board) Range() daterange.Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rng
}

// SetRange stores rng, claims a fresh generation on every widget while still
// holding the board lock, then fans the fetches out in parallel and returns
// once they have settled. Storing the range and claiming generations in one
// critical section ties commit precedence to selection order: an earlier
// selection's fetch can never overwrite a later selection's data, no matter
// how the fetches interleave. Callers who want fire-and-forget run it in a
// goroutine
func (b *Board) SetRange(ctx context.Context, rng daterange.Range) {
	b.mu.Lock()
	b.rng = rng
	widgets := make([]Refresher, len(b.widgets))
	copy(widgets, b.widgets)
	gens := make([]uint64, len(widgets))
	for i, w := range widgets {
		gens[i] = w.begin()
	}
	b.mu.Unlock()

	start, end := rng.Days()
	b.log.Info().Str("start", start).Str("end", end).Int("widgets", len(widgets)).
		Msg("range changed, refreshing board")

	var wg sync.WaitGroup
	for i, w := range widgets {
		wg.Add(1)
		go func(w Refresher, gen uint64) {
			defer wg.Done()
			w.resolve(ctx, rng, gen)
		}(w, gens[i])
	}
	wg.Wait()
}

// Views returns snapshots of every widget in registration order
func (b *Board) Views() []View {
	b.mu.RLock()
	widgets := make([]Refresher, len(b.widgets))
	copy(widgets, b.widgets)
	b.mu.RUnlock()

	out := make([]View, len(widgets))
	for i, w := range widgets {
		out[i] = w.View()
	}
	return out
}

// ViewByName returns one widget's snapshot, false when the name is unknown
func (b *Board) ViewByName(name string) (View, bool) {
	b.mu.RLock()
	w, ok := b.byName[name]
	b.mu.RUnlock()
	if !ok {
		return View{}, false
	}
	return w.View(), true
}
