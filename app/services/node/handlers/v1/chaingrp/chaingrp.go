// Package chaingrp maintains the group of handlers for chain access.
package chaingrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/memochain/business/sys/metrics"
	"github.com/ardanlabs/memochain/business/web/errs"
	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
	"github.com/ardanlabs/memochain/foundation/events"
	"github.com/ardanlabs/memochain/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a block is looked up with an unknown hash.
var ErrNotFound = errors.New("block not found")

// Handlers manages the set of chain endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	Chain *chain.Chain
	Evts  *events.Events
	WS    websocket.Upgrader
}

// Append records the data from the request as a new block.
func (h Handlers) Append(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nb NewBlock
	if err := web.Decode(r, &nb); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	block := h.Chain.Append(nb.Data)
	metrics.BlocksAppended.Inc()

	h.Log.Infow("append", "traceid", web.GetTraceID(ctx), "index", block.Index(), "hash", block.Hash())

	return web.Respond(ctx, w, toBlock(block), http.StatusCreated)
}

// List returns a snapshot of all the blocks in the chain.
func (h Handlers) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toBlocks(h.Chain.Snapshot()), http.StatusOK)
}

// QueryByHash returns the block recorded with the specified hash.
func (h Handlers) QueryByHash(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	hash := web.Param(r, "hash")

	block, exists := h.Chain.Get(hash)
	if !exists {
		return errs.NewTrusted(fmt.Errorf("%w: %s", ErrNotFound, hash), http.StatusNotFound)
	}

	return web.Respond(ctx, w, toBlock(block), http.StatusOK)
}

// Verify walks the chain and reports if the chain is intact.
func (h Handlers) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	status := Status{
		Valid:  true,
		Blocks: h.Chain.Len(),
	}

	if latest, exists := h.Chain.Latest(); exists {
		status.Latest = latest.Hash()
	}

	if err := h.Chain.Verify(); err != nil {
		status.Valid = false
		status.Error = err.Error()
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	// Need this to handle CORS on the websocket.
	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	// This provides a channel for receiving events from the chain. It is
	// acquired before the upgrade so no event after the handshake is missed.
	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	// This upgrades the HTTP connection to a websocket connection.
	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	// Starting a ticker to send a ping message over the websocket.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	// Block waiting for events from the chain or ticker.
	for {
		select {
		case msg, wd := <-ch:

			// If the channel is closed, release the websocket.
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
