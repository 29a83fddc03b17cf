// Command g2r calculates the range and bearing between two geographic points.
package main

import (
	"os"

	"github.com/radarkit/coordtran/internal/cli"
)

func main() {
	os.Exit(cli.RunG2R(os.Args[1:], os.Stdout, os.Stderr))
}
