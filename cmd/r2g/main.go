// Command r2g calculates the point reached from an initial point given a
// range and an initial bearing.
package main

import (
	"os"

	"github.com/radarkit/coordtran/internal/cli"
)

func main() {
	os.Exit(cli.RunR2G(os.Args[1:], os.Stdout, os.Stderr))
}
