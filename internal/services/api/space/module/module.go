// Package module wires space composition into the API using modkit
package module

import (
	"net/http"

	modkit "retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"

	"retroboard/internal/dashkit"
	str "retroboard/internal/platform/strings"
	spacehttp "retroboard/internal/services/api/space/http"
	spacerepo "retroboard/internal/services/api/space/repo"
	spacesvc "retroboard/internal/services/api/space/service"
)

// Board names of the space widgets
const (
	WidgetRatio   = "space_ratio"
	WidgetMembers = "space_members"
)

// Module implements the space composition module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc spacesvc.Service
}

// New constructs the space module and registers its widgets on the board
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("space"), modkit.WithPrefix("/space")},
		opts...,
	)...)

	repo := spacerepo.NewUpstream(deps.Upstream)
	svc := spacesvc.New(repo)

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
		deps.Board.Register(dashkit.NewWidget(WidgetRatio, svc.Ratio))
		deps.Board.Register(dashkit.NewWidget(WidgetMembers, svc.Members))
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		spacehttp.Register(r, m.svc)
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

// Ports returns nil, space exposes no cross module ports
func (m *Module) Ports() any { return m.ports }
