package http

import (
	stdctx "context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"retroboard/internal/core/daterange"
	"retroboard/internal/dashkit"
	phttp "retroboard/internal/platform/net/http"
	retdomain "retroboard/internal/services/api/retention/domain"
)

type fakeBoard struct {
	mu    sync.Mutex
	rng   daterange.Range
	sets  int
	views []dashkit.View
}

func (f *fakeBoard) Range() daterange.Range {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng
}

func (f *fakeBoard) SetRange(_ stdctx.Context, rng daterange.Range) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rng = rng
	f.sets++
}

func (f *fakeBoard) Views() []dashkit.View { return f.views }

func (f *fakeBoard) ViewByName(name string) (dashkit.View, bool) {
	for _, v := range f.views {
		if v.Name == name {
			return v, true
		}
	}
	return dashkit.View{}, false
}

type fakeRetention struct{ res retdomain.RatioResult }

func (f fakeRetention) Last() retdomain.RatioResult { return f.res }

func newTestRouter(b Board) http.Handler {
	return newTestRouterWithRetention(b, nil)
}

func newTestRouterWithRetention(b Board, ret Retention) http.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/dashboard", func(rr phttp.Router) {
		Register(rr, b, ret)
	})
	return mux
}

func TestSetRangeTriggersBoardRefresh(t *testing.T) {
	fb := &fakeBoard{}
	srv := newTestRouter(fb)

	req := httptest.NewRequest(http.MethodPut, "/dashboard/range",
		strings.NewReader(`{"start":"2025-03-01","end":"2025-03-31"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d body %s, want 204", rec.Code, rec.Body.String())
	}

	// refresh runs async; wait for the board to see it
	deadline := time.Now().Add(2 * time.Second)
	for {
		fb.mu.Lock()
		done := fb.sets == 1
		fb.mu.Unlock()
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("board never refreshed")
		}
		time.Sleep(time.Millisecond)
	}

	want, _ := daterange.ParseDays("2025-03-01", "2025-03-31")
	if !fb.Range().Equal(want) {
		t.Fatalf("board range = %+v, want %+v", fb.Range(), want)
	}
}

func TestSetRangeRejectsInvertedRange(t *testing.T) {
	fb := &fakeBoard{}
	srv := newTestRouter(fb)

	req := httptest.NewRequest(http.MethodPut, "/dashboard/range",
		strings.NewReader(`{"start":"2025-03-31","end":"2025-03-01"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if fb.sets != 0 {
		t.Fatal("board must not refresh on invalid input")
	}
}

func TestSetRangeValidatesShape(t *testing.T) {
	fb := &fakeBoard{}
	srv := newTestRouter(fb)

	req := httptest.NewRequest(http.MethodPut, "/dashboard/range",
		strings.NewReader(`{"start":"03/01/2025","end":"2025-03-31"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body %s, want 400", rec.Code, rec.Body.String())
	}
}

func TestSnapshot(t *testing.T) {
	rng, _ := daterange.ParseDays("2025-03-01", "2025-03-31")
	fb := &fakeBoard{
		rng: rng,
		views: []dashkit.View{
			{Name: "signup_count", State: "ready", Data: []int{1, 2}},
			{Name: "stay_time", State: "loading"},
		},
	}
	srv := newTestRouter(fb)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data struct {
			Range struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"range"`
			Widgets []dashkit.View `json:"widgets"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Range.Start != "2025-03-01" || env.Data.Range.End != "2025-03-31" {
		t.Fatalf("range = %+v", env.Data.Range)
	}
	if len(env.Data.Widgets) != 2 || env.Data.Widgets[1].State != "loading" {
		t.Fatalf("widgets = %+v", env.Data.Widgets)
	}
}

func TestSnapshotCarriesLastRetention(t *testing.T) {
	ratio := "30.0"
	matched, total := int64(3), int64(10)
	srv := newTestRouterWithRetention(&fakeBoard{}, fakeRetention{res: retdomain.RatioResult{
		Ratio:        &ratio,
		MatchedCount: &matched,
		TotalCount:   &total,
	}})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data struct {
			Retention *retdomain.RatioResult `json:"retention"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Retention == nil || env.Data.Retention.Ratio == nil || *env.Data.Retention.Ratio != "30.0" {
		t.Fatalf("retention = %+v, want the last committed ratio", env.Data.Retention)
	}
}

func TestSnapshotOmitsRetentionWhenUnwired(t *testing.T) {
	srv := newTestRouter(&fakeBoard{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, present := env.Data["retention"]; present {
		t.Fatal("retention must be omitted when no port is wired")
	}
}

func TestWidgetByNameUnknownIs404(t *testing.T) {
	fb := &fakeBoard{views: []dashkit.View{{Name: "signup_count", State: "idle"}}}
	srv := newTestRouter(fb)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/widgets/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/widgets/signup_count", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
