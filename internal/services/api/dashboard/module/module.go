// Package module wires the dashboard surface into the API using modkit
package module

import (
	"net/http"

	modkit "retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"
	registry "retroboard/internal/modkit/module"

	str "retroboard/internal/platform/strings"
	dashhttp "retroboard/internal/services/api/dashboard/http"
)

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the dashboard module over the shared board
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")},
		opts...,
	)...)

	if deps.Board == nil {
		panic("dashboard module requires a board")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		// the retention module mounts before the dashboard, so its port is
		// already in the registry by the time routes attach
		ret, _ := registry.PortsAs[dashhttp.Retention]("retention")
		dashhttp.Register(r, deps.Board, ret)
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

// Ports returns nil, dashboard exposes no cross module ports
func (m *Module) Ports() any { return m.ports }
