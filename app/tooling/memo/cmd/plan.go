package cmd

import (
	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ardanlabs/memochain/foundation/blockchain/solana"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var payer string

var instructionCmd = &cobra.Command{
	Use:   "instruction [data]",
	Short: "Print the memo instruction committing the hash of the data",
	RunE:  instructionRun,
}

var planCmd = &cobra.Command{
	Use:   "plan [data]",
	Short: "Print the unsigned transaction committing the hash of the data",
	RunE:  planRun,
}

func init() {
	rootCmd.AddCommand(instructionCmd)
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVarP(&payer, "payer", "p", "", "Base58 address of the fee payer.")
	planCmd.MarkFlagRequired("payer")
}

type instruction struct {
	ProgramID string        `json:"program_id"`
	Accounts  []string      `json:"accounts"`
	Data      hexutil.Bytes `json:"data"`
	Memo      string        `json:"memo"`
}

func toInstruction(ix memo.Instruction) instruction {
	accounts := make([]string, len(ix.Accounts))
	for i, acct := range ix.Accounts {
		accounts[i] = acct.Identity.String()
	}

	return instruction{
		ProgramID: ix.ProgramID,
		Accounts:  accounts,
		Data:      ix.Data,
		Memo:      ix.Memo(),
	}
}

func instructionRun(cmd *cobra.Command, args []string) error {
	data, err := readData(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	hash, ix := memo.BuildInstruction(data)

	out := struct {
		DataHash    string      `json:"data_hash"`
		Instruction instruction `json:"instruction"`
	}{
		DataHash:    hash,
		Instruction: toInstruction(ix),
	}

	return printJSON(cmd.OutOrStdout(), out)
}

func planRun(cmd *cobra.Command, args []string) error {
	data, err := readData(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	plan, err := memo.NewBuilder(solana.Ledger{}).BuildPlan(payer, data)
	if err != nil {
		return err
	}

	ixs := make([]instruction, len(plan.Transaction.Instructions))
	for i, ix := range plan.Transaction.Instructions {
		ixs[i] = toInstruction(ix)
	}

	type transaction struct {
		FeePayer     string        `json:"fee_payer"`
		Instructions []instruction `json:"instructions"`
	}

	out := struct {
		DataHash    string      `json:"data_hash"`
		Payer       string      `json:"payer"`
		Transaction transaction `json:"transaction"`
	}{
		DataHash: plan.DataHash,
		Payer:    plan.Payer.String(),
		Transaction: transaction{
			FeePayer:     plan.Transaction.FeePayer.String(),
			Instructions: ixs,
		},
	}

	return printJSON(cmd.OutOrStdout(), out)
}
