// Package http provides http transport for retention
package http

import (
	stdhttp "net/http"

	"retroboard/internal/modkit/httpkit"
	"retroboard/internal/services/api/retention/domain"
	svc "retroboard/internal/services/api/retention/service"
)

// Register mounts retention endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// run the filtered computation against the current board range
	httpkit.PostJSON[domain.Criteria](r, "/meaningful", h.apply)

	// last committed result without recomputing
	httpkit.Get(r, "/meaningful", h.last)
}

type handlers struct{ svc svc.Service }

// @Summary Compute meaningful retention ratio
// @Tags Retention
// @Accept json
// @Produce json
// @Param payload body domain.Criteria true "Filter criteria"
// @Success 200 {object} domain.RatioResult "ok"
// @Router /retention/meaningful [post]
func (h *handlers) apply(r *stdhttp.Request, in domain.Criteria) (any, error) {
	return h.svc.Apply(r.Context(), in), nil
}

// @Summary Last committed retention result
// @Tags Retention
// @Produce json
// @Success 200 {object} domain.RatioResult "ok"
// @Router /retention/meaningful [get]
func (h *handlers) last(r *stdhttp.Request) (any, error) {
	return h.svc.Last(), nil
}
