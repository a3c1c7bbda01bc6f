package mid

import (
	"context"
	"net/http"

	"github.com/ardanlabs/memochain/business/sys/metrics"
	"github.com/ardanlabs/memochain/foundation/web"
)

// Metrics updates program counters.
func Metrics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v, err := web.GetValues(ctx)
			if err != nil {
				return web.NewShutdownError("web value missing from context")
			}

			// Call the next handler.
			err = handler(ctx, w, r)

			// Increment the request counter for the route.
			metrics.Requests.WithLabelValues(r.Method, v.Route).Inc()

			// Increment if there is an error flowing through the request.
			if err != nil {
				metrics.Errors.Inc()
			}

			// Return the error so it can be handled further up the chain.
			return err
		}

		return h
	}

	return m
}
