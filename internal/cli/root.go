// Package cli wires symcirc's cobra command tree: resolve (netlist in,
// N(s)/D(s) out) and decode (binary cache in, text out), replacing the
// original's -h/-i/-v/-s/-b getopt switch in sapec-ng.c's main().
package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "symcirc",
	Short:   "Symbolic nodal analysis of lumped linear circuits (Grimbleby's method)",
	Version: version,
}

func init() {
	rootCmd.AddCommand(resolveCmd, decodeCmd)
}

// Execute runs the command tree; main() logs and exits nonzero on error.
func Execute() error {
	return rootCmd.Execute()
}
