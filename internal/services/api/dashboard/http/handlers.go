// Package http provides the dashboard transport over the board
package http

import (
	stdctx "context"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"retroboard/internal/core/daterange"
	"retroboard/internal/dashkit"
	"retroboard/internal/modkit/httpkit"
	perr "retroboard/internal/platform/errors"
	"retroboard/internal/services/api/dashboard/domain"
	retdomain "retroboard/internal/services/api/retention/domain"
)

// Board is the surface the handlers need from dashkit.Board
type Board interface {
	Range() daterange.Range
	SetRange(ctx stdctx.Context, rng daterange.Range)
	Views() []dashkit.View
	ViewByName(name string) (dashkit.View, bool)
}

// Retention supplies the last committed meaningful-ratio result for the
// snapshot. Resolved through the module registry at wire-up; nil when the
// retention module is not mounted
type Retention interface {
	Last() retdomain.RatioResult
}

// Register mounts the dashboard endpoints on the given router
func Register(r httpkit.Router, b Board, ret Retention) {
	h := &handlers{board: b, retention: ret}

	httpkit.PutJSON[domain.RangeInput](r, "/range", h.setRange)
	httpkit.Get(r, "/", h.snapshot)
	httpkit.Get(r, "/widgets/{name}", h.widget)
}

type handlers struct {
	board     Board
	retention Retention
}

// @Summary Select the dashboard date range
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.RangeInput true "Inclusive day range"
// @Success 204 "refresh started"
// @Router /dashboard/range [put]
func (h *handlers) setRange(r *stdhttp.Request, in domain.RangeInput) (any, error) {
	rng, err := daterange.ParseDays(in.Start, in.End)
	if err != nil {
		return nil, perr.InvalidArgf("bad date: %v", err)
	}
	if rng.End.Before(rng.Start) {
		return nil, perr.WithField(perr.InvalidArgf("end must not precede start"), "end")
	}

	// refresh outlives the request, widgets guard against overlap themselves
	go h.board.SetRange(stdctx.WithoutCancel(r.Context()), rng)

	return httpkit.NoContent(), nil
}

// @Summary Full board snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard [get]
func (h *handlers) snapshot(_ *stdhttp.Request) (any, error) {
	start, end := h.board.Range().Days()
	snap := domain.Snapshot{
		Range:   domain.RangeView{Start: start, End: end},
		Widgets: h.board.Views(),
	}
	if h.retention != nil {
		last := h.retention.Last()
		snap.Retention = &last
	}
	return snap, nil
}

// @Summary Single widget snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashkit.View "ok"
// @Failure 404 {object} httpkit.Envelope "unknown widget"
// @Router /dashboard/widgets/{name} [get]
func (h *handlers) widget(r *stdhttp.Request) (any, error) {
	name := chi.URLParam(r, "name")
	v, ok := h.board.ViewByName(name)
	if !ok {
		return nil, perr.NotFoundf("unknown widget %q", name)
	}
	return v, nil
}
