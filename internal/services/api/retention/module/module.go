// Package module wires retention into the API using modkit
package module

import (
	"net/http"

	modkit "retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"

	str "retroboard/internal/platform/strings"
	rethttp "retroboard/internal/services/api/retention/http"
	retrepo "retroboard/internal/services/api/retention/repo"
	retsvc "retroboard/internal/services/api/retention/service"
)

// Module implements the retention module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc retsvc.Service
}

// New constructs the retention module
// The board supplies the range, retention never owns one of its own
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("retention"), modkit.WithPrefix("/retention")},
		opts...,
	)...)

	repo := retrepo.NewUpstream(deps.Upstream)
	svc := retsvc.New(repo, deps.Board)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		rethttp.Register(r, m.svc)
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

// Ports returns the retention service port for cross wiring
func (m *Module) Ports() any { return m.ports }
