// Package main is the entry point of the base58 command line tool.
package main

import (
	"os"

	"github.com/jht5945/base58/cli"
	"github.com/jht5945/base58/cmderror"
)

func main() {
	defer os.Exit(cmderror.OK)
	cmd := cli.New()
	cmd.WatchSignals()
	cmderror.Handle(cmd.Log(), cmd.Run(os.Args))
}
