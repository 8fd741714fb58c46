package rod

import (
	"context"
	"time"

	"github.com/fwojciec/locmt"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
)

// Ensure Browser implements locmt.Browser at compile time.
var _ locmt.Browser = (*Browser)(nil)

// Default timeouts.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultIdleWindow        = 500 * time.Millisecond
)

// Browser launches a fresh Chrome process for every session.
type Browser struct {
	bin        string
	headless   bool
	navTimeout time.Duration
	idleWindow time.Duration
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithBin sets the path to the Chrome/Chromium executable.
// When empty, rod looks for a local browser and downloads one if needed.
func WithBin(path string) BrowserOption {
	return func(b *Browser) {
		b.bin = path
	}
}

// WithHeadless controls whether the browser window is hidden.
// Defaults to true.
func WithHeadless(headless bool) BrowserOption {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithNavigationTimeout bounds every navigation including the wait for the
// page to settle. Defaults to 30s.
func WithNavigationTimeout(d time.Duration) BrowserOption {
	return func(b *Browser) {
		b.navTimeout = d
	}
}

// WithIdleWindow sets how long the network must stay quiet before a
// WaitNetworkIdle navigation is considered settled. Defaults to 500ms.
func WithIdleWindow(d time.Duration) BrowserOption {
	return func(b *Browser) {
		b.idleWindow = d
	}
}

// NewBrowser creates a new Browser. No process is started until Open.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{
		headless:   true,
		navTimeout: DefaultNavigationTimeout,
		idleWindow: DefaultIdleWindow,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open launches a browser with stability flags, connects to it and creates
// a single blank page.
func (b *Browser) Open(ctx context.Context) (locmt.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Context(ctx).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(b.headless)
	if b.bin != "" {
		lnchr = lnchr.Bin(b.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, locmt.Errorf(locmt.ELAUNCH, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, locmt.Errorf(locmt.ELAUNCH, "connecting to browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, locmt.Errorf(locmt.ELAUNCH, "creating page: %v", err)
	}

	return &Session{
		id:         uuid.New().String(),
		browser:    browser,
		launcher:   lnchr,
		page:       page,
		navTimeout: b.navTimeout,
		idleWindow: b.idleWindow,
	}, nil
}
