// Package metrics constructs the metrics the application will track.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Requests counts the handled web requests by route.
var Requests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "memochain_requests_total",
		Help: "Total number of web requests handled",
	},
	[]string{"method", "route"},
)

// Errors counts the web requests that returned an error.
var Errors = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "memochain_errors_total",
		Help: "Total number of web requests that failed",
	},
)

// Panics counts the panics recovered while handling web requests.
var Panics = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "memochain_panics_total",
		Help: "Total number of panics recovered",
	},
)

// BlocksAppended counts the blocks appended to the chain.
var BlocksAppended = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "memochain_blocks_appended_total",
		Help: "Total number of blocks appended to the chain",
	},
)

// PlansBuilt counts the upload plans built, labeled by outcome.
var PlansBuilt = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "memochain_plans_built_total",
		Help: "Total number of memo upload plans requested",
	},
	[]string{"result"},
)
