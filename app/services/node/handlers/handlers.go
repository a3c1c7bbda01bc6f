// Package handlers manages the different versions of the API.
package handlers

import (
	"context"
	"expvar"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/ardanlabs/memochain/app/services/node/handlers/debug/checkgrp"
	v1 "github.com/ardanlabs/memochain/app/services/node/handlers/v1"
	"github.com/ardanlabs/memochain/business/web/mid"
	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ardanlabs/memochain/foundation/events"
	"github.com/ardanlabs/memochain/foundation/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown  chan os.Signal
	Log       *zap.SugaredLogger
	Chain     *chain.Chain
	Builder   *memo.Builder
	Evts      *events.Events
	EvHandler func(v string, args ...any)
	Origin    string
}

// APIMux constructs a http.Handler with all application routes defined.
func APIMux(cfg MuxConfig) http.Handler {

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Cors(cfg.Origin),
		mid.Panics(),
	)

	// Accept CORS 'OPTIONS' preflight requests.
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return nil
	}
	app.Handle(http.MethodOptions, "", "/*", h, mid.Cors(cfg.Origin))

	// Load the v1 routes.
	v1.Routes(app, v1.Config{
		Log:       cfg.Log,
		Chain:     cfg.Chain,
		Builder:   cfg.Builder,
		Evts:      cfg.Evts,
		EvHandler: cfg.EvHandler,
	})

	return app
}

// DebugStandardLibraryMux registers all the debug routes from the standard library
// into a new mux bypassing the use of the DefaultServerMux. Using the
// DefaultServerMux would be a security risk since a dependency could inject a
// handler into our service without us knowing it.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Register all the standard library debug endpoints.
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}

// DebugMux registers all the debug standard library routes and then custom
// debug application routes for the service. This bypassing the use of the
// DefaultServerMux. Using the DefaultServerMux would be a security risk since
// a dependency could inject a handler into our service without us knowing it.
func DebugMux(build string, log *zap.SugaredLogger, ch *chain.Chain) http.Handler {
	mux := DebugStandardLibraryMux()

	// Register the prometheus collectors.
	mux.Handle("/metrics", promhttp.Handler())

	// Register debug check endpoints.
	cgh := checkgrp.Handlers{
		Build: build,
		Log:   log,
		Chain: ch,
	}
	mux.HandleFunc("/debug/readiness", cgh.Readiness)
	mux.HandleFunc("/debug/liveness", cgh.Liveness)

	return mux
}
