package term_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/locmt/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

// runIndicator starts ind, delivers ticks, cancels and waits for Run to
// return.
func runIndicator(t *testing.T, opts []term.Option, ticks int) (string, *fakeTicker) {
	t.Helper()

	var buf bytes.Buffer
	ft := &fakeTicker{c: make(chan time.Time)}
	var interval time.Duration
	opts = append(opts, term.WithTicker(func(d time.Duration) term.Ticker {
		interval = d
		return ft
	}))
	ind := term.NewIndicator(&buf, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ind.Run(ctx, "Searching") }()

	for range ticks {
		ft.c <- time.Now()
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("indicator did not stop after cancel")
	}
	assert.Equal(t, term.DefaultInterval, interval)
	return buf.String(), ft
}

func TestIndicator_Run(t *testing.T) {
	t.Parallel()

	t.Run("cycles one to three dots on separate lines", func(t *testing.T) {
		t.Parallel()

		out, ft := runIndicator(t, []term.Option{term.WithTerminal(false)}, 4)

		assert.Equal(t, "Searching.\nSearching..\nSearching...\nSearching.\nSearching..\n", out)
		assert.True(t, ft.stopped.Load())
	})

	t.Run("overwrites one line on a terminal and clears it", func(t *testing.T) {
		t.Parallel()

		out, _ := runIndicator(t, []term.Option{term.WithTerminal(true)}, 2)

		assert.Equal(t, "\r\033[KSearching.\r\033[KSearching..\r\033[KSearching...\r\033[K", out)
	})

	t.Run("renders first frame immediately", func(t *testing.T) {
		t.Parallel()

		out, _ := runIndicator(t, []term.Option{term.WithTerminal(false)}, 0)

		assert.Equal(t, "Searching.\n", out)
	})
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, term.IsTerminal(&bytes.Buffer{}))
}
