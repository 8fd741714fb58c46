// Package steam drives the Steam storefront: search for a title, then read
// the description of the chosen store page.
package steam

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/locmt"
)

// Ensure Describer implements locmt.Describer at compile time.
var _ locmt.Describer = (*Describer)(nil)

// DefaultBaseURL is the Steam storefront origin.
const DefaultBaseURL = "https://store.steampowered.com"

// DefaultReadinessTimeout bounds each wait for a page container.
const DefaultReadinessTimeout = 30 * time.Second

// Readiness selectors.
const (
	ResultsSelector     = "#search_resultsRows"
	DescriptionSelector = "#game_area_description"
)

// Describer implements the two-step storefront flow.
type Describer struct {
	extractor locmt.SearchExtractor
	converter locmt.Converter
	baseURL   string
	timeout   time.Duration
}

// Option configures a Describer.
type Option func(*Describer)

// WithBaseURL overrides the storefront origin.
func WithBaseURL(u string) Option {
	return func(d *Describer) {
		d.baseURL = strings.TrimRight(u, "/")
	}
}

// WithReadinessTimeout bounds the wait for the results and description
// containers. Defaults to 30s.
func WithReadinessTimeout(timeout time.Duration) Option {
	return func(d *Describer) {
		d.timeout = timeout
	}
}

// WithConverter renders descriptions as Markdown using c instead of plain
// text.
func WithConverter(c locmt.Converter) Option {
	return func(d *Describer) {
		d.converter = c
	}
}

// NewDescriber creates a new Describer.
func NewDescriber(extractor locmt.SearchExtractor, opts ...Option) *Describer {
	d := &Describer{
		extractor: extractor,
		baseURL:   DefaultBaseURL,
		timeout:   DefaultReadinessTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SearchURL returns the search page URL for title. The query is lowercased
// and escaped.
func (d *Describer) SearchURL(title string) string {
	return d.baseURL + "/search/?term=" + url.QueryEscape(strings.ToLower(title))
}

// Search loads the search page for title and returns the results.
func (d *Describer) Search(ctx context.Context, page locmt.Page, title string) ([]locmt.SearchResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, locmt.Errorf(locmt.EINVALID, "title required")
	}

	searchURL := d.SearchURL(title)
	html, err := d.load(ctx, page, searchURL, ResultsSelector)
	if err != nil {
		return nil, err
	}

	results, err := d.extractor.ExtractSearchResults(html, searchURL)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, locmt.Errorf(locmt.ENOTFOUND, "no results for %q", title)
	}

	return results, nil
}

// Describe loads the store page of result and returns its description.
func (d *Describer) Describe(ctx context.Context, page locmt.Page, result locmt.SearchResult) (string, error) {
	if result.URL == "" {
		return "", locmt.Errorf(locmt.EINVALID, "result %q has no link", result.Title)
	}

	html, err := d.load(ctx, page, result.URL, DescriptionSelector)
	if err != nil {
		return "", err
	}

	if d.converter == nil {
		return d.extractor.ExtractDescription(html)
	}

	inner, err := d.extractor.ExtractDescriptionHTML(html)
	if err != nil {
		return "", err
	}
	md, err := d.converter.Convert(inner)
	if err != nil {
		return "", err
	}
	return locmt.NormalizeMarkdown(strings.TrimSpace(md)), nil
}

// load navigates to u, waits for selector and returns the rendered HTML.
func (d *Describer) load(ctx context.Context, page locmt.Page, u, selector string) (string, error) {
	if err := page.Navigate(ctx, u, locmt.WaitLoad); err != nil {
		return "", err
	}

	waitCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := page.WaitElements(waitCtx, selector); err != nil {
		return "", err
	}

	return page.HTML(ctx)
}
