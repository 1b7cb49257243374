// Package module wires writing analytics into the API using modkit
package module

import (
	"net/http"

	modkit "retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"

	"retroboard/internal/dashkit"
	str "retroboard/internal/platform/strings"
	wrhttp "retroboard/internal/services/api/writing/http"
	wrrepo "retroboard/internal/services/api/writing/repo"
	wrsvc "retroboard/internal/services/api/writing/service"
)

// Board names of the writing widgets
const (
	WidgetStayTime       = "stay_time"
	WidgetCompletionRate = "completion_rate"
)

// Module implements the writing analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc wrsvc.Service
}

// New constructs the writing module and registers its widgets on the board
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("writing"), modkit.WithPrefix("/writing")},
		opts...,
	)...)

	repo := wrrepo.NewUpstream(deps.Upstream)
	svc := wrsvc.New(repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	if deps.Board != nil {
		deps.Board.Register(dashkit.NewWidget(WidgetStayTime, svc.StayTime))
		deps.Board.Register(dashkit.NewWidget(WidgetCompletionRate, svc.CompletionRate))
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		wrhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns nil, writing exposes no cross module ports
func (m *Module) Ports() any { return m.ports }
