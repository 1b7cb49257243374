// Package http provides http transport for template analytics
package http

import (
	stdhttp "net/http"

	"retroboard/internal/core/daterange"
	"retroboard/internal/modkit/httpkit"
	perr "retroboard/internal/platform/errors"
	svc "retroboard/internal/services/api/template/service"
)

// Register mounts template endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/breakdown", h.breakdown)
	httpkit.Get(r, "/choice-ratio", h.choiceRatio)
}

type handlers struct{ svc svc.Service }

func parseRange(r *stdhttp.Request) (daterange.Range, error) {
	q := r.URL.Query()
	rng, err := daterange.ParseDays(q.Get("start"), q.Get("end"))
	if err != nil {
		return daterange.Range{}, perr.InvalidArgf("bad date: %v", err)
	}
	return rng, nil
}

// @Summary Template usage breakdown
// @Tags Template
// @Produce json
// @Success 200 {object} domain.Breakdown "ok"
// @Router /template/breakdown [get]
func (h *handlers) breakdown(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Breakdown(r.Context(), rng)
}

// @Summary Recommend vs list choice ratio
// @Tags Template
// @Produce json
// @Success 200 {object} domain.ChoiceRatio "ok"
// @Router /template/choice-ratio [get]
func (h *handlers) choiceRatio(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ChoiceRatio(r.Context(), rng)
}
