package cmd

import (
	"fmt"

	"github.com/ardanlabs/memochain/foundation/blockchain/hasher"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash [data]",
	Short: "Print the SHA-256 digest of the data",
	RunE:  hashRun,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func hashRun(cmd *cobra.Command, args []string) error {
	data, err := readData(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hasher.Digest(data))
	return err
}
