// Package cmd contains the memo tooling commands.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	dataFile string
	dataHex  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Read the data from this file, - for stdin.")
	rootCmd.PersistentFlags().BoolVarP(&dataHex, "hex", "x", false, "Treat the data argument as 0x prefixed hex.")
}

var rootCmd = &cobra.Command{
	Use:           "memo",
	Short:         "Build memo commitments for data without signing or sending them",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// readData returns the bytes to work with from the file flag or the
// arguments.
func readData(in io.Reader, args []string) ([]byte, error) {
	switch {
	case dataFile == "-":
		return io.ReadAll(in)

	case dataFile != "":
		return os.ReadFile(dataFile)

	case len(args) == 0:
		return nil, errors.New("no data provided, pass it as an argument or use --file")
	}

	data := strings.Join(args, " ")
	if !dataHex {
		return []byte(data), nil
	}

	b, err := hexutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding hex data: %w", err)
	}

	return b, nil
}

// printJSON writes the value to the writer as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
