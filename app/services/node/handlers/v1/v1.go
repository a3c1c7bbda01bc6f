// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/memochain/app/services/node/handlers/v1/chaingrp"
	"github.com/ardanlabs/memochain/app/services/node/handlers/v1/memogrp"
	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ardanlabs/memochain/foundation/events"
	"github.com/ardanlabs/memochain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log       *zap.SugaredLogger
	Chain     *chain.Chain
	Builder   *memo.Builder
	Evts      *events.Events
	EvHandler func(v string, args ...any)
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	cgh := chaingrp.Handlers{
		Log:   cfg.Log,
		Chain: cfg.Chain,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", cgh.Events)
	app.Handle(http.MethodGet, version, "/chain/blocks", cgh.List)
	app.Handle(http.MethodGet, version, "/chain/blocks/:hash", cgh.QueryByHash)
	app.Handle(http.MethodPost, version, "/chain/blocks", cgh.Append)
	app.Handle(http.MethodGet, version, "/chain/verify", cgh.Verify)

	mgh := memogrp.Handlers{
		Log:       cfg.Log,
		Builder:   cfg.Builder,
		EvHandler: cfg.EvHandler,
	}

	app.Handle(http.MethodPost, version, "/memo/instruction", mgh.Instruction)
	app.Handle(http.MethodPost, version, "/memo/plan", mgh.Plan)
}
