// Package google drives the Google Translate web page.
package google

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/locmt"
)

// Ensure Translator implements locmt.Translator at compile time.
var _ locmt.Translator = (*Translator)(nil)

// DefaultBaseURL is the Google Translate web app.
const DefaultBaseURL = "https://translate.google.com/"

// DefaultReadinessTimeout bounds the wait for the rendered result.
const DefaultReadinessTimeout = 30 * time.Second

// Readiness selectors. Both must be present before the result is read.
const (
	ResultSelector     = ".VIiyi"
	LiveRegionSelector = `[aria-live="polite"]`
)

// Translator loads Google Translate with the text in the URL and reads the
// rendered result.
type Translator struct {
	extractor locmt.TranslationExtractor
	baseURL   string
	source    string
	target    string
	timeout   time.Duration
}

// Option configures a Translator.
type Option func(*Translator)

// WithBaseURL overrides the Google Translate origin.
func WithBaseURL(u string) Option {
	return func(t *Translator) {
		t.baseURL = u
	}
}

// WithLanguages sets the source and target language codes.
func WithLanguages(source, target string) Option {
	return func(t *Translator) {
		t.source = source
		t.target = target
	}
}

// WithReadinessTimeout bounds the result wait. Defaults to 30s.
func WithReadinessTimeout(timeout time.Duration) Option {
	return func(t *Translator) {
		t.timeout = timeout
	}
}

// NewTranslator creates a new Translator. Languages default to auto → ko.
func NewTranslator(extractor locmt.TranslationExtractor, opts ...Option) *Translator {
	t := &Translator{
		extractor: extractor,
		baseURL:   DefaultBaseURL,
		source:    "auto",
		target:    "ko",
		timeout:   DefaultReadinessTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PageURL returns the URL that translates text on load.
func (t *Translator) PageURL(text string) string {
	q := url.Values{}
	q.Set("sl", t.source)
	q.Set("tl", t.target)
	q.Set("text", text)
	q.Set("op", "translate")
	return t.baseURL + "?" + q.Encode()
}

// Translate returns the Google translation of text.
func (t *Translator) Translate(ctx context.Context, page locmt.Page, text string) (string, error) {
	if err := page.Navigate(ctx, t.PageURL(text), locmt.WaitNetworkIdle); err != nil {
		return "", err
	}

	waitCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	if err := page.WaitElements(waitCtx, ResultSelector, LiveRegionSelector); err != nil {
		return "", err
	}

	html, err := page.HTML(ctx)
	if err != nil {
		return "", err
	}
	return t.extractor.ExtractTranslation(html)
}
