// @title         Retroboard admin API
// @version       0.1.0
// @description   Backend-for-frontend for the retrospective admin dashboard

package main

import (
	"context"
	"time"

	"retroboard/internal/platform/config"
	"retroboard/internal/platform/logger"
	phttp "retroboard/internal/platform/net/http"

	"retroboard/internal/adapters/upstream"
	"retroboard/internal/core/daterange"
	"retroboard/internal/dashkit"
	"retroboard/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (RETROBOARD_API_*)
	root := config.New()
	apiCfg := root.Prefix("RETROBOARD_API_")
	upCfg := root.Prefix("UPSTREAM_") // the aggregate admin API lives under UPSTREAM_*

	// bring up logging early
	l := logger.Get()

	// authenticated client for the aggregate admin API
	// the admin token is injected here, nothing downstream reads it ambiently
	up := upstream.NewClient(
		upstream.Options{
			BaseURL: upCfg.MustString("URL"),
			Timeout: upCfg.MayDuration("TIMEOUT", 10*time.Second),
		},
		upstream.StaticToken(upCfg.MustString("ADMIN_TOKEN")),
	)

	// shared board, widgets register during api.Mount
	board := dashkit.NewBoard()

	// http server (reads RETROBOARD_API_PORT / RETROBOARD_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Upstream:       up,
			Board:          board,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// optionally pre-select the trailing N days so the board is warm on first load
	if days := apiCfg.MayInt("DEFAULT_RANGE_DAYS", 0); days > 0 {
		end := time.Now()
		start := end.AddDate(0, 0, -(days - 1))
		go board.SetRange(context.Background(), daterange.New(start, end))
	}

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
