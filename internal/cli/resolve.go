package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sapecng/symcirc/analysis"
	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
	"github.com/sapecng/symcirc/netlist"
)

var (
	resolveReverseSign bool
	resolveVerbose     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [netlist]",
	Short: "Parse a netlist and write its N(s)/D(s) as text and binary",
	Long: "resolve reproduces original_source/src/sapec-ng.c's resolve(): it reads\n" +
		"a netlist, runs both analysis passes, and writes two sibling files next\n" +
		"to the input — <path>.out (text) and <path>.fdt (binary cache).",
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveReverseSign, "reverse-sign", "s", false, "SapWin-compatible reverse current-generator sign")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "verbose logging")
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolveVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	path := "./circuit"
	if len(args) == 1 {
		path = args[0]
	}
	cfg := config.New(config.WithReverseSign(resolveReverseSign), config.WithVerbose(resolveVerbose))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("resolve: open %s: %w", path, err)
	}
	defer f.Close()

	c := circuit.New()
	var parseErr error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		parseErr = netlist.ParseYAML(f, c, cfg)
	} else {
		parseErr = netlist.Parse(f, c, cfg)
	}
	if parseErr != nil {
		return fmt.Errorf("resolve: parse %s: %w", path, parseErr)
	}

	if err := c.Normalize(); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	if err := c.SetBlock(); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	result, err := analysis.Analyze(c)
	if err != nil {
		logrus.WithError(err).Error("analysis failed")
		return err
	}

	textPath := path + ".out"
	if err := writeFile(textPath, result.WriteText); err != nil {
		return err
	}
	binPath := path + ".fdt"
	if err := writeFile(binPath, result.WriteBinary); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"text": textPath, "binary": binPath}).Info("wrote results")
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("resolve: create %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("resolve: write %s: %w", path, err)
	}
	return nil
}
