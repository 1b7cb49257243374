// Package modkit provides module wiring and core deps
package modkit

import (
	"retroboard/internal/adapters/upstream"
	"retroboard/internal/dashkit"
	"retroboard/internal/platform/config"
	"retroboard/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Upstream *upstream.Client
	Board    *dashkit.Board
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check Upstream and Board
func (d Deps) ZeroOK() bool { return true }
