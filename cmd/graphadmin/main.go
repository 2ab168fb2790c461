// Command graphadmin compiles graph-database administrative commands
// into logical plan nodes.
package main

import (
	"os"

	"github.com/graphstack-labs/graphadmin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
