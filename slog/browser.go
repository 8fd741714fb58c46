package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locmt"
)

// Ensure LoggingBrowser implements locmt.Browser.
var _ locmt.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging. Sessions it opens are
// wrapped in LoggingSession.
type LoggingBrowser struct {
	next   locmt.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next locmt.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open delegates to the wrapped browser and logs the launch.
func (b *LoggingBrowser) Open(ctx context.Context) (session locmt.Session, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if session != nil {
			attrs = append([]any{"session", session.ID()}, attrs...)
		}
		b.logger.Info("browser open", attrs...)
	}(time.Now())

	session, err = b.next.Open(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingSession(session, b.logger), nil
}

// Ensure LoggingSession implements locmt.Session.
var _ locmt.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging. Every record carries
// the session ID.
type LoggingSession struct {
	next   locmt.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next locmt.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger.With("session", next.ID())}
}

// ID returns the wrapped session's ID.
func (s *LoggingSession) ID() string {
	return s.next.ID()
}

func (s *LoggingSession) Navigate(ctx context.Context, url string, policy locmt.WaitPolicy) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"wait", policy.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url, policy)
}

func (s *LoggingSession) WaitElements(ctx context.Context, selectors ...string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("wait elements",
			"selectors", selectors,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WaitElements(ctx, selectors...)
}

// WaitResponse logs when the returned wait function resolves. The duration
// covers subscription to resolution.
func (s *LoggingSession) WaitResponse(ctx context.Context, filter locmt.ResponseFilter) func() error {
	begin := time.Now()
	wait := s.next.WaitResponse(ctx, filter)
	return func() (err error) {
		defer func() {
			s.logger.Info("wait response",
				"pattern", filter.URLContains,
				"duration", time.Since(begin),
				"err", err,
			)
		}()
		return wait()
	}
}

func (s *LoggingSession) Clear(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("clear",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Clear(ctx, selector)
}

func (s *LoggingSession) Type(ctx context.Context, selector, text string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("type",
			"selector", selector,
			"chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Type(ctx, selector, text)
}

func (s *LoggingSession) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.HTML(ctx)
}

func (s *LoggingSession) Close() (err error) {
	defer func() {
		s.logger.Info("session close", "err", err)
	}()
	return s.next.Close()
}
