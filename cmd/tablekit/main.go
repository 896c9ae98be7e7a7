// Command tablekit validates declarative table configuration and renders
// dialect-aware SQL from it.
package main

import (
	"os"

	"github.com/tablekit/tablekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
