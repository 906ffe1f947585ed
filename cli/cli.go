// Package cli is the base58 command line: it reads a file or stdin, runs the
// codec and writes the result to stdout.
package cli

import (
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/jht5945/base58/base58"
	"github.com/jht5945/base58/cmderror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	urfave "github.com/urfave/cli"
	"github.com/vrecan/death/v3"
)

// CommandLine runs base58 over its own input, output and error streams.
type CommandLine struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *logrus.Logger
	log    *logrus.Entry
	exit   func(code int)
}

// New returns a command line bound to the process' standard streams.
func New() *CommandLine {
	return NewWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithStreams returns a command line reading stdin and writing stdout and stderr.
func NewWithStreams(stdin io.Reader, stdout, stderr io.Writer) *CommandLine {
	logger := logrus.New()
	logger.Out = stderr
	return &CommandLine{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		logger: logger,
		exit:   os.Exit,
		log: logger.WithFields(logrus.Fields{
			"app":    "base58",
			"prefix": "cli",
		}),
	}
}

// Log returns the command line's logger.
func (cl *CommandLine) Log() *logrus.Entry {
	return cl.log
}

// Exits with cmderror.Interrupted on SIGINT or SIGTERM.
// The signals are caught once WatchSignals returns.
func (cl *CommandLine) WatchSignals() {
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM)
	go d.WaitForDeathWithFunc(func() {
		cl.log.Debug("Interrupted.")
		cl.exit(cmderror.Interrupted)
	})
}

func (cl *CommandLine) newApp() *urfave.App {
	app := urfave.NewApp()
	app.Name = "base58"
	app.Usage = "command line base58 convert tool"
	app.ArgsUsage = "[FILE]"
	app.Copyright = "Copyright (C) 2019-2020 Hatter Jiang."
	app.Version = Version()
	// --version is handled by action so it can log build details
	app.HideVersion = true
	app.Writer = cl.Stdout
	app.ErrWriter = cl.Stderr
	app.Flags = []urfave.Flag{DecodeFlag, NewLineFlag, VersionFlag, VerboseFlag}
	app.Action = cl.action
	return app
}

// Run parses args (args[0] is the program name) and runs the command.
func (cl *CommandLine) Run(args []string) error {
	return cl.newApp().Run(args)
}

func (cl *CommandLine) action(ctx *urfave.Context) error {
	opts, err := parseOptions(ctx)
	if err != nil {
		return err
	}
	if opts.verbose {
		cl.logger.SetLevel(logrus.DebugLevel)
	}
	if opts.version {
		return cl.printVersion(cl.Stdout)
	}

	in, hint, err := cl.openInput(opts.file)
	if err != nil {
		return err
	}
	defer in.Close()

	if opts.decode {
		return cl.decode(in, hint, opts)
	}
	return cl.encode(in, hint, opts)
}

// Empty file or "-" means stdin.
func (cl *CommandLine) openInput(file string) (io.ReadCloser, string, error) {
	if file == "" || file == "-" {
		return io.NopCloser(cl.Stdin), "stdin", nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open file: %s", file)
	}
	return f, "file: " + file, nil
}

func (cl *CommandLine) read(in io.Reader, hint string) ([]byte, error) {
	cl.log.Debug("Start read input.")
	buf, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", hint)
	}
	cl.log.WithField("bytes", len(buf)).Debug("Read input finished.")
	return buf, nil
}

func (cl *CommandLine) encode(in io.Reader, hint string, opts options) error {
	buf, err := cl.read(in, hint)
	if err != nil {
		return err
	}
	return cl.write([]byte(base58.Encode(buf)), opts.newLine)
}

func (cl *CommandLine) decode(in io.Reader, hint string, opts options) error {
	buf, err := cl.read(in, hint)
	if err != nil {
		return err
	}
	cl.log.Debugf("Read content: %s", buf)
	data, err := base58.Decode(strings.TrimSpace(string(buf)))
	if err != nil {
		return errors.Wrapf(err, "decode base58 from %s", hint)
	}
	return cl.write(data, opts.newLine)
}

func (cl *CommandLine) write(out []byte, newLine bool) error {
	if newLine {
		out = append(out, '\n')
	}
	if _, err := cl.Stdout.Write(out); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
