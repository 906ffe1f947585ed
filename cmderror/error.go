// Package cmderror maps command failures to process exit codes.
package cmderror

import (
	"errors"
	"os"

	"github.com/jht5945/base58/base58"
	"github.com/sirupsen/logrus"
)

// Exit codes.
const (
	OK          = 0
	Failure     = 1
	BadInput    = 2
	Interrupted = 130
)

var exit = os.Exit

// Code returns the exit code for err.
func Code(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, base58.ErrInvalidCharacter):
		return BadInput
	default:
		return Failure
	}
}

// Logs err and exits with its code. Does nothing if err is nil.
func Handle(log *logrus.Entry, err error) {
	if err == nil {
		return
	}
	log.WithField("code", Code(err)).Error(err)
	exit(Code(err))
}
