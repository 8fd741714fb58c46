// Package term renders console status output.
package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/locmt"
	xterm "golang.org/x/term"
)

// Ensure Indicator implements locmt.StatusIndicator at compile time.
var _ locmt.StatusIndicator = (*Indicator)(nil)

// DefaultInterval is the time between frames.
const DefaultInterval = 500 * time.Millisecond

// maxDots is the longest dot run before the animation wraps to one dot.
const maxDots = 3

// Ticker delivers animation ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// Indicator animates a label followed by one to three dots. On a terminal
// each frame overwrites the previous one; otherwise each frame is written on
// its own line.
type Indicator struct {
	w         io.Writer
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	tty       bool
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(i *Indicator) {
		i.interval = d
	}
}

// WithTicker replaces the tick source.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(i *Indicator) {
		i.newTicker = newTicker
	}
}

// WithTerminal overrides terminal detection.
func WithTerminal(tty bool) Option {
	return func(i *Indicator) {
		i.tty = tty
	}
}

// NewIndicator creates an Indicator writing to w.
func NewIndicator(w io.Writer, opts ...Option) *Indicator {
	i := &Indicator{
		w:        w,
		interval: DefaultInterval,
		newTicker: func(d time.Duration) Ticker {
			return timeTicker{t: time.NewTicker(d)}
		},
		tty: IsTerminal(w),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run renders frames until ctx is cancelled, then clears the line.
func (i *Indicator) Run(ctx context.Context, label string) error {
	t := i.newTicker(i.interval)
	defer t.Stop()

	dots := 1
	if err := i.render(label, dots); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return i.clear()
		case <-t.C():
			dots = dots%maxDots + 1
			if err := i.render(label, dots); err != nil {
				return err
			}
		}
	}
}

func (i *Indicator) render(label string, dots int) error {
	frame := label + strings.Repeat(".", dots)
	var err error
	if i.tty {
		_, err = fmt.Fprintf(i.w, "\r\033[K%s", frame)
	} else {
		_, err = fmt.Fprintln(i.w, frame)
	}
	return err
}

func (i *Indicator) clear() error {
	if !i.tty {
		return nil
	}
	_, err := fmt.Fprint(i.w, "\r\033[K")
	return err
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
