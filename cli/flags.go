package cli

import (
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli"
)

var (
	// DecodeFlag switches from encoding to decoding.
	DecodeFlag = urfave.BoolFlag{
		Name:   "decode, d",
		Usage:  "Decode data",
		EnvVar: "BASE58_DECODE",
	}
	// NewLineFlag appends a newline to the output.
	NewLineFlag = urfave.BoolFlag{
		Name:   "new-line",
		Usage:  "Do output the trailing newline",
		EnvVar: "BASE58_NEW_LINE",
	}
	// VerboseFlag turns on debug logging.
	VerboseFlag = urfave.BoolFlag{
		Name:   "verbose",
		Usage:  "Verbose output",
		EnvVar: "BASE58_VERBOSE",
	}
	// VersionFlag prints the version banner and exits.
	VersionFlag = urfave.BoolFlag{
		Name:  "version, v",
		Usage: "Print version",
	}
)

type options struct {
	decode  bool
	newLine bool
	verbose bool
	version bool
	file    string
}

func parseOptions(ctx *urfave.Context) (options, error) {
	if ctx.NArg() > 1 {
		return options{}, errors.Errorf("too many arguments: %q", ctx.Args()[1:])
	}
	return options{
		decode:  ctx.Bool("decode"),
		newLine: ctx.Bool("new-line"),
		verbose: ctx.Bool("verbose"),
		version: ctx.Bool("version"),
		file:    ctx.Args().First(),
	}, nil
}
