// Package memogrp maintains the group of handlers for building memo
// commitments. The handlers only build unsigned plans, they never sign or
// submit anything to a ledger.
package memogrp

import (
	"context"
	"net/http"

	"github.com/ardanlabs/memochain/business/sys/metrics"
	"github.com/ardanlabs/memochain/business/web/errs"
	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ardanlabs/memochain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of memo endpoints.
type Handlers struct {
	Log       *zap.SugaredLogger
	Builder   *memo.Builder
	EvHandler func(v string, args ...any)
}

// Instruction builds the memo instruction for the data in the request.
func (h Handlers) Instruction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var ni NewInstruction
	if err := web.Decode(r, &ni); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	data, err := decodeData(ni.Data, ni.Encoding)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	hash, ix := memo.BuildInstruction(data)

	resp := InstructionResult{
		DataHash:    hash,
		Instruction: toInstruction(ix),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Plan builds the unsigned upload plan for the payer and data in the request.
func (h Handlers) Plan(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var np NewPlan
	if err := web.Decode(r, &np); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	data, err := decodeData(np.Data, np.Encoding)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	plan, err := h.Builder.BuildPlan(np.Payer, data)
	if err != nil {
		if memo.IsIdentityError(err) {
			metrics.PlansBuilt.WithLabelValues("invalid_payer").Inc()
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		metrics.PlansBuilt.WithLabelValues("error").Inc()
		return err
	}
	metrics.PlansBuilt.WithLabelValues("ok").Inc()

	h.Log.Infow("plan", "traceid", web.GetTraceID(ctx), "payer", plan.Payer, "datahash", plan.DataHash)
	if h.EvHandler != nil {
		h.EvHandler("memo: BuildPlan: payer[%s]: hash[%s]", plan.Payer, plan.DataHash)
	}

	return web.Respond(ctx, w, toPlan(plan), http.StatusOK)
}
