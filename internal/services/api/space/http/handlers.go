// Package http provides http transport for space composition
package http

import (
	stdhttp "net/http"

	"retroboard/internal/core/daterange"
	"retroboard/internal/modkit/httpkit"
	perr "retroboard/internal/platform/errors"
	svc "retroboard/internal/services/api/space/service"
)

// Register mounts space endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/ratio", h.ratio)
	httpkit.Get(r, "/members", h.members)
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

// @Summary Team vs individual space ratio
// @Tags Space
// @Produce json
// @Success 200 {object} domain.CompositionRatio "ok"
// @Router /space/ratio [get]
func (h *handlers) ratio(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Ratio(r.Context(), rng)
}

// @Summary Per-member space composition
// @Tags Space
// @Produce json
// @Success 200 {object} domain.MemberTable "ok"
// @Router /space/members [get]
func (h *handlers) members(r *stdhttp.Request) (any, error) {
	rng, err := parseRange(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Members(r.Context(), rng)
}
