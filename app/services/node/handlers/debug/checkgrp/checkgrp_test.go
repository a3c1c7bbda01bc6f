package checkgrp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ardanlabs/memochain/app/services/node/handlers/debug/checkgrp"
	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Readiness(t *testing.T) {
	var events int
	ch := chain.New(func(v string, args ...any) { events++ })
	ch.Append("first")
	ch.Append("second")
	events = 0

	cgh := checkgrp.Handlers{
		Build: "test",
		Log:   zap.NewNop().Sugar(),
		Chain: ch,
	}

	t.Log("Given the need to check the chain is ready.")
	{
		r := httptest.NewRequest(http.MethodGet, "/debug/readiness", nil)
		w := httptest.NewRecorder()
		cgh.Readiness(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("\t%s\tShould receive a status code of 200 : %v", failed, w.Code)
		}
		t.Logf("\t%s\tShould receive a status code of 200.", success)

		var got struct {
			Status string `json:"status"`
			Blocks int    `json:"blocks"`
		}
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("\t%s\tShould be able to unmarshal the response : %v", failed, err)
		}

		if got.Status != "ok" || got.Blocks != 2 {
			t.Fatalf("\t%s\tShould get back the chain status : %+v", failed, got)
		}
		t.Logf("\t%s\tShould get back the chain status.", success)

		if events != 0 {
			t.Logf("\t%s\tgot: %d", failed, events)
			t.Logf("\t%s\texp: %d", failed, 0)
			t.Fatalf("\t%s\tShould not emit chain events for a readiness check.", failed)
		}
		t.Logf("\t%s\tShould not emit chain events for a readiness check.", success)
	}
}

func Test_Liveness(t *testing.T) {
	t.Setenv("KUBERNETES_PODNAME", "node-0")

	cgh := checkgrp.Handlers{
		Build: "test",
		Log:   zap.NewNop().Sugar(),
		Chain: chain.New(nil),
	}

	t.Log("Given the need to check the service is alive.")
	{
		r := httptest.NewRequest(http.MethodGet, "/debug/liveness", nil)
		w := httptest.NewRecorder()
		cgh.Liveness(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("\t%s\tShould receive a status code of 200 : %v", failed, w.Code)
		}

		var got struct {
			Status string `json:"status"`
			Build  string `json:"build"`
			Pod    string `json:"pod"`
		}
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("\t%s\tShould be able to unmarshal the response : %v", failed, err)
		}

		if got.Status != "up" || got.Build != "test" || got.Pod != "node-0" {
			t.Fatalf("\t%s\tShould get back the service details : %+v", failed, got)
		}
		t.Logf("\t%s\tShould get back the service details.", success)
	}
}
