// Package http provides http transport for registration
package http

import (
	stdhttp "net/http"

	"retroboard/internal/core/daterange"
	"retroboard/internal/modkit/httpkit"
	perr "retroboard/internal/platform/errors"
	svc "retroboard/internal/services/api/registration/service"
)

// Register mounts registration endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// direct series fetch outside the board lifecycle
	httpkit.Get(r, "/signups", h.signups)
}

type handlers struct{ svc svc.Service }

// @Summary Daily signup counts
// @Tags Registration
// @Produce json
// @Param start query string false "inclusive start day (2006-01-02)"
// @Param end query string false "inclusive end day (2006-01-02)"
// @Success 200 {array} domain.SignupPoint "ok"
// @Router /registration/signups [get]
func (h *handlers) signups(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	rng, err := daterange.ParseDays(q.Get("start"), q.Get("end"))
	if err != nil {
		return nil, perr.InvalidArgf("bad date: %v", err)
	}
	return h.svc.SignupSeries(r.Context(), rng)
}
