package solana_test

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ardanlabs/memochain/foundation/blockchain/solana"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	systemProgram = "11111111111111111111111111111111"
	tokenProgram  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

// =============================================================================

func Test_ToPublicKey(t *testing.T) {
	type table struct {
		name string
		key  string
		hex  string
		err  error
	}

	tt := []table{
		{
			name: "system",
			key:  systemProgram,
			hex:  "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name: "token",
			key:  tokenProgram,
			hex:  "06ddf6e1d765a193d9cbe146ceeb79ac1cb485ed5f5b37913a8cf5857eff00a9",
		},
		{
			name: "memo",
			key:  memo.ProgramID,
			hex:  "054a535a992921064d24e87160da387c7c35b5ddbc92bb81e41fa8404105448d",
		},
		{
			name: "empty",
			key:  "",
			err:  solana.ErrInvalidEncoding,
		},
		{
			name: "bad-alphabet",
			key:  "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl",
			err:  solana.ErrInvalidEncoding,
		},
		{
			name: "too-short",
			key:  "abc",
			err:  solana.ErrInvalidLength,
		},
		{
			name: "hex-address",
			key:  "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4",
			err:  solana.ErrInvalidEncoding,
		},
	}

	t.Log("Given the need to parse Solana public keys.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				pk, err := solana.ToPublicKey(tst.key)

				if tst.err != nil {
					if !errors.Is(err, tst.err) {
						t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, err)
						t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, tst.err)
						t.Fatalf("\t%s\tTest %d:\tShould reject the public key.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould reject the public key.", success, testID)
					return
				}

				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to parse the public key: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to parse the public key.", success, testID)

				if got := hex.EncodeToString(pk[:]); got != tst.hex {
					t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, got)
					t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.hex)
					t.Fatalf("\t%s\tTest %d:\tShould decode to the right bytes.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould decode to the right bytes.", success, testID)

				if pk.String() != tst.key {
					t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, pk.String())
					t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.key)
					t.Fatalf("\t%s\tTest %d:\tShould encode back to the same string.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould encode back to the same string.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_ZeroKey(t *testing.T) {
	var pk solana.PublicKey
	if pk.String() != systemProgram {
		t.Logf("got: %s", pk.String())
		t.Logf("exp: %s", systemProgram)
		t.Fatalf("Should encode the zero key as the system program.")
	}

	if solana.MemoProgram == pk {
		t.Fatalf("Should not parse the memo program as the zero key.")
	}
}

func Test_JSON(t *testing.T) {
	in := struct {
		Payer solana.PublicKey `json:"payer"`
	}{
		Payer: solana.MustPublicKey(tokenProgram),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Should be able to marshal a public key: %s", err)
	}

	exp := `{"payer":"` + tokenProgram + `"}`
	if string(data) != exp {
		t.Logf("got: %s", data)
		t.Logf("exp: %s", exp)
		t.Fatalf("Should marshal the public key as base58.")
	}

	var out struct {
		Payer solana.PublicKey `json:"payer"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Should be able to unmarshal a public key: %s", err)
	}

	if out.Payer != in.Payer {
		t.Fatalf("Should get back the same public key.")
	}

	if err := json.Unmarshal([]byte(`{"payer":"abc"}`), &out); err == nil {
		t.Fatalf("Should not be able to unmarshal an invalid public key.")
	}
}

func Test_BuildPlan(t *testing.T) {
	builder := memo.NewBuilder(solana.Ledger{})

	plan, err := builder.BuildPlan(systemProgram, []byte("payload for transaction"))
	if err != nil {
		t.Fatalf("Should be able to build a plan: %s", err)
	}

	payer := solana.MustPublicKey(systemProgram)
	if plan.Payer != payer || plan.Transaction.FeePayer != payer {
		t.Fatalf("Should set the payer and fee payer to the parsed public key.")
	}

	if err := plan.Validate(); err != nil {
		t.Fatalf("Should build a valid plan: %s", err)
	}

	_, err = builder.BuildPlan("not a key", []byte("payload"))
	if !memo.IsIdentityError(err) {
		t.Fatalf("Should get an identity error for a bad payer, got %v", err)
	}

	if !errors.Is(err, solana.ErrInvalidEncoding) {
		t.Fatalf("Should be able to unwrap the Solana error, got %v", err)
	}
}
