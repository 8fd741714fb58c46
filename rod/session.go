package rod

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/locmt"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Session implements locmt.Session at compile time.
var _ locmt.Session = (*Session)(nil)

// Session is one Chrome process driving one page.
// Session is not safe for concurrent use; operations must not overlap.
type Session struct {
	id         string
	browser    *rod.Browser
	launcher   *launcher.Launcher
	page       *rod.Page
	navTimeout time.Duration
	idleWindow time.Duration
	closed     atomic.Bool
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Navigate loads url and waits for the load event, and for WaitNetworkIdle
// also for the network to stay quiet for the idle window.
func (s *Session) Navigate(ctx context.Context, url string, policy locmt.WaitPolicy) error {
	if s.closed.Load() {
		return locmt.Errorf(locmt.EINVALID, "session closed")
	}

	ctx, cancel := context.WithTimeout(ctx, s.navTimeout)
	defer cancel()
	page := s.page.Context(ctx)

	// Subscribe before navigating so the first requests are counted.
	var waitIdle func()
	if policy == locmt.WaitNetworkIdle {
		waitIdle = page.WaitRequestIdle(s.idleWindow, nil, nil, nil)
	}

	if err := page.Navigate(url); err != nil {
		return navigationError(url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return navigationError(url, err)
	}
	if waitIdle != nil {
		waitIdle()
		if err := ctx.Err(); err != nil {
			return navigationError(url, err)
		}
	}

	return nil
}

// WaitElements waits until every selector matches an element.
func (s *Session) WaitElements(ctx context.Context, selectors ...string) error {
	if s.closed.Load() {
		return locmt.Errorf(locmt.EINVALID, "session closed")
	}

	page := s.page.Context(ctx)
	for _, sel := range selectors {
		if _, err := page.Element(sel); err != nil {
			return waitError(fmt.Sprintf("element %q", sel), err)
		}
	}

	return nil
}

// WaitResponse subscribes to network events right away. A response is a
// candidate once its URL matches and its body has finished loading; the
// body is then fetched and checked against the filter.
func (s *Session) WaitResponse(ctx context.Context, filter locmt.ResponseFilter) func() error {
	if s.closed.Load() {
		return func() error { return locmt.Errorf(locmt.EINVALID, "session closed") }
	}

	ctx, cancel := context.WithCancel(ctx)
	page := s.page.Context(ctx)

	candidates := make(map[proto.NetworkRequestID]bool)
	finished := make(chan proto.NetworkRequestID)

	// Callbacks run sequentially on the event goroutine, so the map needs no lock.
	listen := page.EachEvent(
		func(e *proto.NetworkResponseReceived) {
			if e.Response != nil && strings.Contains(e.Response.URL, filter.URLContains) {
				candidates[e.RequestID] = true
			}
		},
		func(e *proto.NetworkLoadingFinished) bool {
			if !candidates[e.RequestID] {
				return false
			}
			delete(candidates, e.RequestID)
			select {
			case finished <- e.RequestID:
				return false
			case <-ctx.Done():
				return true
			}
		},
	)
	go listen()

	return func() error {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return waitError(fmt.Sprintf("response matching %q", filter.URLContains), ctx.Err())
			case id := <-finished:
				body, err := responseBody(page, id)
				if err != nil {
					// The body may already be evicted; keep waiting for the next one.
					continue
				}
				if filter.Match == nil || filter.Match(body) {
					return nil
				}
			}
		}
	}
}

// Clear triple-clicks the input to select its content and deletes it.
func (s *Session) Clear(ctx context.Context, selector string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 3); err != nil {
		return fmt.Errorf("selecting %q: %w", selector, err)
	}
	if err := el.Type(input.Backspace); err != nil {
		return fmt.Errorf("clearing %q: %w", selector, err)
	}
	return nil
}

// Type enters text into the input matched by selector.
func (s *Session) Type(ctx context.Context, selector, text string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("typing into %q: %w", selector, err)
	}
	return nil
}

// HTML returns the rendered HTML of the current document.
func (s *Session) HTML(ctx context.Context) (string, error) {
	if s.closed.Load() {
		return "", locmt.Errorf(locmt.EINVALID, "session closed")
	}
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("reading page HTML: %w", err)
	}
	return html, nil
}

// Close releases the page, the browser connection and the launcher process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	_ = s.page.Close()
	err := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()

	return err
}

// PID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) PID() int {
	return s.launcher.PID()
}

func (s *Session) element(ctx context.Context, selector string) (*rod.Element, error) {
	if s.closed.Load() {
		return nil, locmt.Errorf(locmt.EINVALID, "session closed")
	}
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return nil, waitError(fmt.Sprintf("element %q", selector), err)
	}
	return el, nil
}

func responseBody(page *rod.Page, id proto.NetworkRequestID) ([]byte, error) {
	res, err := proto.NetworkGetResponseBody{RequestID: id}.Call(page)
	if err != nil {
		return nil, err
	}
	if res.Base64Encoded {
		return base64.StdEncoding.DecodeString(res.Body)
	}
	return []byte(res.Body), nil
}

// navigationError converts a failed navigation into ENAVIGATION, keeping
// context cancellation distinguishable for the caller.
func navigationError(url string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return locmt.Errorf(locmt.ENAVIGATION, "navigating to %s: timed out", url)
	}
	return locmt.Errorf(locmt.ENAVIGATION, "navigating to %s: %v", url, err)
}

// waitError converts a failed readiness wait into ETIMEOUT when the deadline
// passed.
func waitError(what string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return locmt.Errorf(locmt.ETIMEOUT, "timed out waiting for %s", what)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("waiting for %s: %w", what, err)
}
