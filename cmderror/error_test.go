package cmderror

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jht5945/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	_, decodeErr := base58.Decode("0OIl")

	assert.Equal(t, OK, Code(nil))
	assert.Equal(t, BadInput, Code(decodeErr))
	assert.Equal(t, BadInput, Code(errors.Wrap(decodeErr, "decode base58 from stdin")))
	assert.Equal(t, BadInput, Code(fmt.Errorf("outer: %w", decodeErr)))
	assert.Equal(t, Failure, Code(errors.New("open file: x")))
}

func TestHandle(t *testing.T) {
	var got []int
	old := exit
	exit = func(code int) { got = append(got, code) }
	defer func() { exit = old }()

	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	log := logger.WithField("app", "base58")

	Handle(log, nil)
	assert.Empty(t, got)
	assert.Empty(t, buf.String())

	_, decodeErr := base58.Decode("ab0")
	Handle(log, errors.Wrap(decodeErr, "decode base58 from stdin"))
	assert.Equal(t, []int{BadInput}, got)
	assert.Contains(t, buf.String(), "position 2")
	assert.Contains(t, buf.String(), "code=2")
}
