// Package api provides the HTTP API for the application
package api

import (
	"retroboard/internal/adapters/upstream"
	"retroboard/internal/dashkit"
	"retroboard/internal/platform/config"
	"retroboard/internal/platform/logger"
	phttp "retroboard/internal/platform/net/http"

	"retroboard/internal/modkit"
	"retroboard/internal/modkit/httpkit"
	"retroboard/internal/modkit/module"
	"retroboard/internal/modkit/swaggerkit"

	dashmod "retroboard/internal/services/api/dashboard/module"
	metamod "retroboard/internal/services/api/meta/module"
	regmod "retroboard/internal/services/api/registration/module"
	retmod "retroboard/internal/services/api/retention/module"
	spacemod "retroboard/internal/services/api/space/module"
	tplmod "retroboard/internal/services/api/template/module"
	wrmod "retroboard/internal/services/api/writing/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Upstream       *upstream.Client
	Board          *dashkit.Board
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:      opt.Config,
		Upstream: opt.Upstream,
		Board:    opt.Board,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// widget modules register themselves on the board at construction,
	// the dashboard module must therefore come after them in wiring order
	mods := []module.Module{
		metamod.New(deps),
		regmod.New(deps),
		wrmod.New(deps),
		tplmod.New(deps),
		spacemod.New(deps),
		retmod.New(deps),
		dashmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
