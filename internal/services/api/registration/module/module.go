// Package module wires registration into the API using modkit
package module

import (
	"net/http"

	modkit "retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"

	"retroboard/internal/dashkit"
	str "retroboard/internal/platform/strings"
	reghttp "retroboard/internal/services/api/registration/http"
	regrepo "retroboard/internal/services/api/registration/repo"
	regsvc "retroboard/internal/services/api/registration/service"
)

// WidgetSignups is the board name of the signup series widget
const WidgetSignups = "signup_count"

// Module implements the registration module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc regsvc.Service
}

// New constructs the registration module and registers its widget on the board
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("registration"), modkit.WithPrefix("/registration")},
		opts...,
	)...)

	repo := regrepo.NewUpstream(deps.Upstream)
	svc := regsvc.New(repo)

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

	if deps.Board != nil {
		deps.Board.Register(dashkit.NewWidget(WidgetSignups, svc.SignupSeries))
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reghttp.Register(r, m.svc)
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

// Ports returns the registration service port for cross wiring
func (m *Module) Ports() any { return m.ports }
