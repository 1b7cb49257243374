// Package http provides http transport for writing analytics
package http

import (
	stdhttp "net/http"

	"retroboard/internal/core/daterange"
	"retroboard/internal/modkit/httpkit"
	perr "retroboard/internal/platform/errors"
	svc "retroboard/internal/services/api/writing/service"
)

// Register mounts writing endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/stay-time", h.stayTime)
	httpkit.Get(r, "/completion-rate", h.completionRate)
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

// @Summary Stay-time histogram
// @Tags Writing
// @Produce json
// @Success 200 {object} domain.StayTimeDistribution "ok"
// @Router /writing/stay-time [get]
func (h *handlers) stayTime(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.StayTime(r.Context(), rng)
}

// @Summary Retrospect completion rate
// @Tags Writing
// @Produce json
// @Success 200 {object} domain.CompletionStat "ok"
// @Router /writing/completion-rate [get]
func (h *handlers) completionRate(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CompletionRate(r.Context(), rng)
}
