package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sapecng/symcirc/analysis"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [binary-cache]",
	Short: "Replay a binary result cache (.fdt) back to text",
	Long: "decode reproduces original_source/src/sapec-ng.c's load_and_splash():\n" +
		"it reads the binary cache resolve wrote and re-renders N(s)/D(s) to\n" +
		"stdout without re-running the analysis.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := "./circuit.fdt"
	if len(args) == 1 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("decode: open %s: %w", path, err)
	}
	defer f.Close()

	result, err := analysis.ReadResult(f)
	if err != nil {
		logrus.WithError(err).Error("decode failed")
		return fmt.Errorf("decode: %s: %w", path, err)
	}

	return result.WriteText(cmd.OutOrStdout())
}
