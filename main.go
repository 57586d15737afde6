// Command dirtop shows the largest directories of a tree while it is being scanned.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirtop/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dirtop: %v\n", err)
		os.Exit(1)
	}
}
