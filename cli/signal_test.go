//go:build !windows

package cli

import (
	"bytes"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/jht5945/base58/cmderror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSignalsExitsInterrupted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cl := NewWithStreams(strings.NewReader(""), &stdout, &stderr)
	codes := make(chan int, 1)
	cl.exit = func(code int) { codes <- code }

	cl.WatchSignals()
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case code := <-codes:
		assert.Equal(t, cmderror.Interrupted, code)
	case <-time.After(5 * time.Second):
		t.Fatal("no exit after SIGTERM")
	}
}
