package dashkit

import (
	"context"
	"sync"
	"testing"

	"retroboard/internal/core/daterange"
	perr "retroboard/internal/platform/errors"
	"retroboard/internal/platform/testkit"
)

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	r, err := daterange.ParseDays(start, end)
	if err != nil {
		t.Fatalf("ParseDays: %v", err)
	}
	return r
}

func TestWidgetLifecycle(t *testing.T) {
	w := NewWidget("signups", func(ctx context.Context, rng daterange.Range) (int, error) {
		return 42, nil
	})

	if got := w.View(); got.State != "idle" || got.Data != nil {
		t.Fatalf("fresh widget view = %+v, want idle with no data", got)
	}

	w.Refresh(context.Background(), mustRange(t, "2025-01-01", "2025-01-31"))

	got := w.View()
	if got.State != "ready" {
		t.Fatalf("state = %q, want ready", got.State)
	}
	if got.Data != 42 {
		t.Fatalf("data = %v, want 42", got.Data)
	}
	if got.Error != nil {
		t.Fatalf("unexpected error in view: %+v", got.Error)
	}
	if got.UpdatedAt == nil {
		t.Fatal("updated_at missing after commit")
	}
}

func TestWidgetErrorClearsData(t *testing.T) {
	calls := 0
	w := NewWidget("flaky", func(ctx context.Context, rng daterange.Range) ([]string, error) {
		calls++
		if calls == 1 {
			return []string{"a", "b"}, nil
		}
		return nil, perr.Upstreamf("upstream status 500")
	})

	rng := mustRange(t, "2025-01-01", "2025-01-31")
	w.Refresh(context.Background(), rng)
	w.Refresh(context.Background(), rng)

	got := w.View()
	if got.State != "errored" {
		t.Fatalf("state = %q, want errored", got.State)
	}
	if got.Data != nil {
		t.Fatalf("errored widget must not keep stale data, got %v", got.Data)
	}
	if got.Error == nil || got.Error.Code != perr.ErrorCodeUpstream {
		t.Fatalf("view error = %+v, want upstream code", got.Error)
	}
}

func TestWidgetDiscardsStaleResponse(t *testing.T) {
	release := make(map[string]chan struct{})
	var mu sync.Mutex

	w := NewWidget("race", func(ctx context.Context, rng daterange.Range) (string, error) {
		start, _ := rng.Days()
		mu.Lock()
		ch := release[start]
		mu.Unlock()
		<-ch
		return "data-for-" + start, nil
	})

	r1 := mustRange(t, "2025-01-01", "2025-01-31")
	r2 := mustRange(t, "2025-02-01", "2025-02-28")
	mu.Lock()
	release["2025-01-01"] = make(chan struct{})
	release["2025-02-01"] = make(chan struct{})
	mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	done1 := make(chan struct{})
	go func() {
		defer wg.Done()
		w.Refresh(context.Background(), r1)
		close(done1)
	}()
	go func() {
		defer wg.Done()
		// second refresh for the newer range, started after the first
		for {
			w.mu.Lock()
			started := w.gen >= 1
			w.mu.Unlock()
			if started {
				break
			}
		}
		w.Refresh(context.Background(), r2)
	}()

	// let the newer range resolve first, then the stale one
	close(release["2025-02-01"])
	for {
		w.mu.Lock()
		committed := w.state == StateReady
		w.mu.Unlock()
		if committed {
			break
		}
	}
	close(release["2025-01-01"])
	<-done1
	wg.Wait()

	got := w.View()
	if got.Data != "data-for-2025-02-01" {
		t.Fatalf("committed data = %v, want the newer range's data", got.Data)
	}
	if got.State != "ready" {
		t.Fatalf("state = %q, want ready", got.State)
	}
}

func TestBoardRegisterRejectsDuplicates(t *testing.T) {
	b := NewBoard()
	b.Register(NewWidget("a", func(ctx context.Context, rng daterange.Range) (int, error) { return 0, nil }))
	testkit.MustPanic(t, func() {
		b.Register(NewWidget("a", func(ctx context.Context, rng daterange.Range) (int, error) { return 0, nil }))
	})
}

func TestBoardSetRangeRefreshesAllWidgets(t *testing.T) {
	b := NewBoard()

	var mu sync.Mutex
	seen := map[string]daterange.Range{}
	for _, name := range []string{"one", "two", "three"} {
		name := name
		b.Register(NewWidget(name, func(ctx context.Context, rng daterange.Range) (string, error) {
			mu.Lock()
			seen[name] = rng
			mu.Unlock()
			if name == "two" {
				return "", perr.Unavailablef("down")
			}
			return name + "-ok", nil
		}))
	}

	rng := mustRange(t, "2025-03-01", "2025-03-31")
	b.SetRange(context.Background(), rng)

	if !b.Range().Equal(rng) {
		t.Fatalf("board range = %+v, want %+v", b.Range(), rng)
	}
	mu.Lock()
	if len(seen) != 3 {
		t.Fatalf("refreshed %d widgets, want 3", len(seen))
	}
	for name, got := range seen {
		if !got.Equal(rng) {
			t.Fatalf("widget %s fetched %+v, want %+v", name, got, rng)
		}
	}
	mu.Unlock()

	// one widget failing must not disturb the others
	views := b.Views()
	if len(views) != 3 {
		t.Fatalf("got %d views, want 3", len(views))
	}
	byName := map[string]View{}
	for _, v := range views {
		byName[v.Name] = v
	}
	if byName["one"].State != "ready" || byName["three"].State != "ready" {
		t.Fatalf("healthy widgets not ready: %+v", byName)
	}
	if byName["two"].State != "errored" {
		t.Fatalf("failing widget state = %q, want errored", byName["two"].State)
	}
}

func TestBoardDiscardsFetchForSupersededSelection(t *testing.T) {
	r1 := mustRange(t, "2025-01-01", "2025-01-31")
	r2 := mustRange(t, "2025-02-01", "2025-02-28")

	release := map[string]chan struct{}{
		"2025-01-01": make(chan struct{}),
		"2025-02-01": make(chan struct{}),
	}
	started := make(chan string, 2)

	b := NewBoard()
	w := NewWidget("echo", func(ctx context.Context, rng daterange.Range) (string, error) {
		start, _ := rng.Days()
		started <- start
		<-release[start]
		return start, nil
	})
	b.Register(w)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.SetRange(context.Background(), r1)
	}()
	<-started // first selection is fetching
	go func() {
		defer wg.Done()
		b.SetRange(context.Background(), r2)
	}()
	<-started

	// the newer selection resolves first, the older one afterwards
	close(release["2025-02-01"])
	for {
		if v, _ := b.ViewByName("echo"); v.State == "ready" {
			break
		}
	}
	close(release["2025-01-01"])
	wg.Wait()

	if start, _ := b.Range().Days(); start != "2025-02-01" {
		t.Fatalf("board range start = %s, want 2025-02-01", start)
	}
	v, _ := b.ViewByName("echo")
	if v.State != "ready" {
		t.Fatalf("state = %q, want ready", v.State)
	}
	if v.Data != "2025-02-01" {
		t.Fatalf("committed data = %v, want the newer selection's", v.Data)
	}
}

func TestBoardRangeAndDataAgreeUnderConcurrentSelections(t *testing.T) {
	r1 := mustRange(t, "2025-01-01", "2025-01-31")
	r2 := mustRange(t, "2025-02-01", "2025-02-28")

	for i := 0; i < 500; i++ {
		b := NewBoard()
		b.Register(NewWidget("echo", func(ctx context.Context, rng daterange.Range) (string, error) {
			start, _ := rng.Days()
			return start, nil
		}))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.SetRange(context.Background(), r1)
		}()
		go func() {
			defer wg.Done()
			b.SetRange(context.Background(), r2)
		}()
		wg.Wait()

		start, _ := b.Range().Days()
		v, _ := b.ViewByName("echo")
		if v.Data != start {
			t.Fatalf("run %d: board range start %s but widget data %v", i, start, v.Data)
		}
	}
}

func TestBoardViewByName(t *testing.T) {
	b := NewBoard()
	b.Register(NewWidget("known", func(ctx context.Context, rng daterange.Range) (int, error) { return 7, nil }))

	if _, ok := b.ViewByName("unknown"); ok {
		t.Fatal("unknown name should not resolve")
	}
	v, ok := b.ViewByName("known")
	if !ok || v.Name != "known" {
		t.Fatalf("ViewByName = %+v, %v", v, ok)
	}
}
