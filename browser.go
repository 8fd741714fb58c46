package locmt

import (
	"context"
	"strings"
)

// WaitPolicy controls when a navigation is considered settled.
type WaitPolicy int

// Navigation wait policies.
const (
	// WaitNetworkIdle waits until the page has had no in-flight network
	// requests for an idle window.
	WaitNetworkIdle WaitPolicy = iota

	// WaitLoad waits for the page load event only.
	WaitLoad
)

// String returns the policy name used in logs.
func (p WaitPolicy) String() string {
	switch p {
	case WaitNetworkIdle:
		return "network-idle"
	case WaitLoad:
		return "load"
	default:
		return "unknown"
	}
}

// ResponseFilter selects a network response observed by a page.
type ResponseFilter struct {
	// URLContains is a substring the response URL must contain.
	URLContains string

	// Match inspects the decoded response body. A nil Match accepts any
	// response whose URL matches.
	Match func(body []byte) bool
}

// Matches reports whether a response with the given URL and body satisfies
// the filter.
func (f ResponseFilter) Matches(url string, body []byte) bool {
	if !strings.Contains(url, f.URLContains) {
		return false
	}
	return f.Match == nil || f.Match(body)
}

// Page is the single browser tab of a Session.
//
// Every blocking operation honors the context for cancellation and deadline.
type Page interface {
	// Navigate loads url and waits until the page settles per policy.
	// Returns ENAVIGATION if the page fails to load or settle.
	Navigate(ctx context.Context, url string, policy WaitPolicy) error

	// WaitElements blocks until every selector matches at least one element.
	// Returns ETIMEOUT if the context deadline passes first.
	WaitElements(ctx context.Context, selectors ...string) error

	// WaitResponse subscribes to page responses immediately and returns a
	// function that blocks until the first response satisfying filter
	// arrives. The subscription ends when wait returns.
	// The wait function returns ETIMEOUT if the context deadline passes first.
	WaitResponse(ctx context.Context, filter ResponseFilter) (wait func() error)

	// Clear selects all text of the input matched by selector and deletes it.
	Clear(ctx context.Context, selector string) error

	// Type types text into the input matched by selector.
	Type(ctx context.Context, selector, text string) error

	// HTML returns the rendered HTML of the current document.
	HTML(ctx context.Context) (string, error)
}

// Session is one browser process with one page.
// A Session is owned by a single task and is never shared.
type Session interface {
	Page

	// ID returns an identifier for the session, used in logs.
	ID() string

	// Close releases the page and the browser process.
	// Close is safe to call more than once.
	Close() error
}

// Browser opens browser sessions.
type Browser interface {
	// Open launches a browser process and creates a single page.
	// Returns ELAUNCH if the browser cannot be located or started.
	Open(ctx context.Context) (Session, error)
}
