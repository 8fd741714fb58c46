// Package slog provides logging decorators for locmt services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locmt"
)

// Ensure LoggingDescriber implements locmt.Describer.
var _ locmt.Describer = (*LoggingDescriber)(nil)

// LoggingDescriber wraps a Describer with debug logging.
type LoggingDescriber struct {
	next   locmt.Describer
	logger *slog.Logger
}

// NewLoggingDescriber creates a new LoggingDescriber.
func NewLoggingDescriber(next locmt.Describer, logger *slog.Logger) *LoggingDescriber {
	return &LoggingDescriber{next: next, logger: logger}
}

// Search delegates to the wrapped describer and logs the result count.
func (d *LoggingDescriber) Search(ctx context.Context, page locmt.Page, title string) (results []locmt.SearchResult, err error) {
	defer func(begin time.Time) {
		d.logger.Info("search",
			"title", title,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Search(ctx, page, title)
}

// Describe delegates to the wrapped describer and logs the description size.
func (d *LoggingDescriber) Describe(ctx context.Context, page locmt.Page, result locmt.SearchResult) (text string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("describe",
			"url", result.URL,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Describe(ctx, page, result)
}

// Ensure LoggingTranslator implements locmt.Translator.
var _ locmt.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with debug logging.
type LoggingTranslator struct {
	next     locmt.Translator
	logger   *slog.Logger
	provider locmt.Provider
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next locmt.Translator, provider locmt.Provider, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger, provider: provider}
}

// Translate delegates to the wrapped translator and logs input and output
// sizes.
func (t *LoggingTranslator) Translate(ctx context.Context, page locmt.Page, text string) (out string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"provider", string(t.provider),
			"chars", len([]rune(text)),
			"out_chars", len([]rune(out)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, page, text)
}
