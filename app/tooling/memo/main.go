// This program builds memo commitments and demo chains from the command line.
package main

import "github.com/ardanlabs/memochain/app/tooling/memo/cmd"

func main() {
	cmd.Execute()
}
