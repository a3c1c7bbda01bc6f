package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
)

const helloSolana = "e33f0cade5733c8be398632565d2b9c48c3f8ef5360b656a0370c116a5937b04"

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dataFile, dataHex, payer, verbose = "", false, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader("hello solana"))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func Test_Hash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("hello solana"), 0600); err != nil {
		t.Fatalf("Should be able to write the data file: %s", err)
	}

	tt := map[string][]string{
		"args":  {"hash", "hello", "solana"},
		"hex":   {"hash", "--hex", "0x68656c6c6f20736f6c616e61"},
		"file":  {"hash", "--file", path},
		"stdin": {"hash", "--file", "-"},
	}

	for name, args := range tt {
		out, err := run(t, args...)
		if err != nil {
			t.Fatalf("Test %s:\tShould be able to hash the data: %s", name, err)
		}

		if got := strings.TrimSpace(out); got != helloSolana {
			t.Logf("Test %s:\tgot: %s", name, got)
			t.Logf("Test %s:\texp: %s", name, helloSolana)
			t.Fatalf("Test %s:\tShould get back the digest of the data.", name)
		}
	}

	if _, err := run(t, "hash"); err == nil {
		t.Fatalf("Should not be able to hash without data.")
	}
}

func Test_Instruction(t *testing.T) {
	out, err := run(t, "instruction", "hello solana")
	if err != nil {
		t.Fatalf("Should be able to build an instruction: %s", err)
	}

	var ir struct {
		DataHash    string `json:"data_hash"`
		Instruction struct {
			ProgramID string   `json:"program_id"`
			Accounts  []string `json:"accounts"`
			Data      string   `json:"data"`
			Memo      string   `json:"memo"`
		} `json:"instruction"`
	}
	if err := json.Unmarshal([]byte(out), &ir); err != nil {
		t.Fatalf("Should be able to unmarshal the instruction: %s", err)
	}

	ix := ir.Instruction
	if ir.DataHash != helloSolana || ix.Memo != helloSolana || ix.ProgramID != memo.ProgramID {
		t.Fatalf("Should get back the memo instruction for the data: %+v", ir)
	}

	if len(ix.Accounts) != 0 || !strings.HasPrefix(ix.Data, "0x") {
		t.Fatalf("Should get back no accounts and a hex payload: %+v", ix)
	}
}

func Test_Plan(t *testing.T) {
	const payerKey = "11111111111111111111111111111111"

	out, err := run(t, "plan", "--payer", payerKey, "hello solana")
	if err != nil {
		t.Fatalf("Should be able to build a plan: %s", err)
	}

	var plan struct {
		DataHash    string `json:"data_hash"`
		Payer       string `json:"payer"`
		Transaction struct {
			FeePayer     string `json:"fee_payer"`
			Instructions []struct {
				ProgramID string `json:"program_id"`
				Memo      string `json:"memo"`
			} `json:"instructions"`
		} `json:"transaction"`
	}
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("Should be able to unmarshal the plan: %s", err)
	}

	if plan.DataHash != helloSolana || plan.Payer != payerKey || plan.Transaction.FeePayer != payerKey {
		t.Fatalf("Should get back the plan for the payer: %+v", plan)
	}

	ixs := plan.Transaction.Instructions
	if len(ixs) != 1 || ixs[0].ProgramID != memo.ProgramID || ixs[0].Memo != helloSolana {
		t.Fatalf("Should get back a single memo instruction: %+v", ixs)
	}

	_, err = run(t, "plan", "--payer", "bad", "hello solana")
	if !memo.IsIdentityError(err) {
		t.Fatalf("Should get an identity error for a bad payer, got %v", err)
	}
}

func Test_Chain(t *testing.T) {
	out, err := run(t, "chain", "first", "second")
	if err != nil {
		t.Fatalf("Should be able to build a chain: %s", err)
	}

	var blocks []struct {
		Index    uint64 `json:"index"`
		PrevHash string `json:"prev_hash"`
		Hash     string `json:"hash"`
	}
	if err := json.Unmarshal([]byte(out), &blocks); err != nil {
		t.Fatalf("Should be able to unmarshal the chain: %s", err)
	}

	if len(blocks) != 2 || blocks[0].PrevHash != "GENESIS" || blocks[1].PrevHash != blocks[0].Hash {
		t.Fatalf("Should get back a linked chain: %+v", blocks)
	}
}
