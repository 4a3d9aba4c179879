// Command qwave evaluates sine and cosine over the fixed-point rotation
// format, where angles serialize losslessly and evaluation replays bit
// for bit.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/quarterwave/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
