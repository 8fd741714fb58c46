// Package papago drives the Papago web translator.
package papago

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/fwojciec/locmt"
)

// Ensure Translator implements locmt.Translator at compile time.
var _ locmt.Translator = (*Translator)(nil)

// DefaultBaseURL is the Papago web app.
const DefaultBaseURL = "https://papago.naver.com/"

// DefaultReadinessTimeout bounds the wait for the translation response and
// the rendered output.
const DefaultReadinessTimeout = 30 * time.Second

const (
	// SourceSelector is the source text area.
	SourceSelector = "#txtSource"
	// TargetSelector is the rendered translation.
	TargetSelector = "#txtTarget>span"
	// ResponsePattern is matched against response URLs.
	ResponsePattern = "translate"
)

// Translator types each line into Papago and waits for the translation
// response before reading the output.
type Translator struct {
	extractor locmt.TranslationExtractor
	baseURL   string
	source    string
	target    string
	timeout   time.Duration
}

// Option configures a Translator.
type Option func(*Translator)

// WithBaseURL overrides the Papago origin.
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

// WithReadinessTimeout bounds each translation wait. Defaults to 30s.
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

// PageURL returns the Papago URL preselecting the language pair.
func (t *Translator) PageURL() string {
	q := url.Values{}
	q.Set("sk", t.source)
	q.Set("tk", t.target)
	return t.baseURL + "?" + q.Encode()
}

// Translate returns the Papago translation of text.
func (t *Translator) Translate(ctx context.Context, page locmt.Page, text string) (string, error) {
	if err := page.Navigate(ctx, t.PageURL(), locmt.WaitNetworkIdle); err != nil {
		return "", err
	}

	waitCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	// Subscribe before typing so a fast response is not missed.
	wait := page.WaitResponse(waitCtx, locmt.ResponseFilter{
		URLContains: ResponsePattern,
		Match:       HasDictField,
	})

	if err := page.Clear(waitCtx, SourceSelector); err != nil {
		return "", err
	}
	if err := page.Type(waitCtx, SourceSelector, text); err != nil {
		return "", err
	}
	if err := wait(); err != nil {
		return "", err
	}
	// The output renders after the response arrives.
	if err := page.WaitElements(waitCtx, TargetSelector); err != nil {
		return "", err
	}

	html, err := page.HTML(ctx)
	if err != nil {
		return "", err
	}
	return t.extractor.ExtractTranslation(html)
}

// HasDictField reports whether body is a JSON object with a top-level "dict"
// member. A null value counts as present.
func HasDictField(body []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	_, ok := fields["dict"]
	return ok
}
