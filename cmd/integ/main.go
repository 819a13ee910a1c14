// Command integ benchmarks numerical integration methods on problem suites.
package main

import (
	"os"

	"github.com/katalvlaran/integ/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
