// Command symcirc is the CLI driver for symbolic nodal analysis, the Go
// counterpart of original_source/src/sapec-ng.c's main()/resolve()/
// load_and_splash() — a cobra command tree replacing the original's getopt
// switch.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/sapecng/symcirc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
