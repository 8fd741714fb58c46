package mock

import (
	"context"

	"github.com/fwojciec/locmt"
)

var _ locmt.Browser = (*Browser)(nil)

// Browser is a mock implementation of locmt.Browser.
type Browser struct {
	OpenFn func(ctx context.Context) (locmt.Session, error)
}

func (b *Browser) Open(ctx context.Context) (locmt.Session, error) {
	return b.OpenFn(ctx)
}

var _ locmt.Page = (*Page)(nil)

// Page is a mock implementation of locmt.Page.
type Page struct {
	NavigateFn     func(ctx context.Context, url string, policy locmt.WaitPolicy) error
	WaitElementsFn func(ctx context.Context, selectors ...string) error
	WaitResponseFn func(ctx context.Context, filter locmt.ResponseFilter) func() error
	ClearFn        func(ctx context.Context, selector string) error
	TypeFn         func(ctx context.Context, selector, text string) error
	HTMLFn         func(ctx context.Context) (string, error)
}

func (p *Page) Navigate(ctx context.Context, url string, policy locmt.WaitPolicy) error {
	return p.NavigateFn(ctx, url, policy)
}

func (p *Page) WaitElements(ctx context.Context, selectors ...string) error {
	return p.WaitElementsFn(ctx, selectors...)
}

func (p *Page) WaitResponse(ctx context.Context, filter locmt.ResponseFilter) func() error {
	return p.WaitResponseFn(ctx, filter)
}

func (p *Page) Clear(ctx context.Context, selector string) error {
	return p.ClearFn(ctx, selector)
}

func (p *Page) Type(ctx context.Context, selector, text string) error {
	return p.TypeFn(ctx, selector, text)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

var _ locmt.Session = (*Session)(nil)

// Session is a mock implementation of locmt.Session.
type Session struct {
	Page

	IDFn    func() string
	CloseFn func() error
}

func (s *Session) ID() string {
	if s.IDFn == nil {
		return "mock-session"
	}
	return s.IDFn()
}

func (s *Session) Close() error {
	return s.CloseFn()
}
