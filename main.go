// +build !citest

package main

import (
	"os"

	"github.com/jkiot/orus-mqtt/cli"
)

func main() {
	os.Exit(cli.Codec(os.Args, os.Stdout, os.Stderr))
}
