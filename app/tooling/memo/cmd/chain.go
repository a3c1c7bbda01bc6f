package cmd

import (
	"fmt"

	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
	"github.com/spf13/cobra"
)

var verbose bool

var chainCmd = &cobra.Command{
	Use:   "chain data...",
	Short: "Build a demo chain with one block per argument and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
	chainCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the chain events.")
}

func chainRun(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	var ev chain.EventHandler
	if verbose {
		ev = func(v string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), v+"\n", args...)
		}
	}

	ch := chain.New(ev)
	for _, data := range args {
		ch.Append(data)
	}

	if err := ch.Verify(); err != nil {
		return err
	}

	type block struct {
		Index    uint64 `json:"index"`
		Data     string `json:"data"`
		PrevHash string `json:"prev_hash"`
		Hash     string `json:"hash"`
	}

	blocks := ch.Snapshot()
	out := make([]block, len(blocks))
	for i, b := range blocks {
		out[i] = block{
			Index:    b.Index(),
			Data:     b.Data(),
			PrevHash: b.PrevHash(),
			Hash:     b.Hash(),
		}
	}

	return printJSON(w, out)
}
