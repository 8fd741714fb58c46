package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locmt"
)

// Ensure SteamExtractor implements locmt.SearchExtractor at compile time.
var _ locmt.SearchExtractor = (*SteamExtractor)(nil)

// Steam storefront selectors.
const (
	SteamResultsSelector     = "#search_resultsRows"
	SteamTitleSelector       = ".title"
	SteamDescriptionSelector = "#game_area_description"
)

// SteamExtractor reads Steam storefront search results and store pages.
type SteamExtractor struct{}

// NewSteamExtractor creates a new SteamExtractor.
func NewSteamExtractor() *SteamExtractor {
	return &SteamExtractor{}
}

// ExtractSearchResults returns one result per child of the results
// container, in document order. Children without a link or a title are
// skipped. Returns EEXTRACT if the results container is missing.
func (e *SteamExtractor) ExtractSearchResults(html string, baseURL string) ([]locmt.SearchResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, locmt.Errorf(locmt.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	container := doc.Find(SteamResultsSelector).First()
	if container.Length() == 0 {
		return nil, locmt.Errorf(locmt.EEXTRACT, "search results container %q not found", SteamResultsSelector)
	}

	results := []locmt.SearchResult{}
	container.Children().Each(func(_ int, row *goquery.Selection) {
		href, ok := row.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		title := strings.TrimSpace(row.Find(SteamTitleSelector).First().Text())
		if title == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		results = append(results, locmt.SearchResult{
			Title: title,
			URL:   base.ResolveReference(ref).String(),
		})
	})

	return results, nil
}

// ExtractDescription returns the rendered text of the description container
// with newline runs collapsed. Returns EEXTRACT if the container is missing.
func (e *SteamExtractor) ExtractDescription(html string) (string, error) {
	sel, err := e.description(html)
	if err != nil {
		return "", err
	}
	return locmt.NormalizeText(RenderText(sel)), nil
}

// ExtractDescriptionHTML returns the inner HTML of the description container.
// Returns EEXTRACT if the container is missing.
func (e *SteamExtractor) ExtractDescriptionHTML(html string) (string, error) {
	sel, err := e.description(html)
	if err != nil {
		return "", err
	}
	inner, err := sel.Html()
	if err != nil {
		return "", locmt.Errorf(locmt.EEXTRACT, "failed to render description HTML: %v", err)
	}
	return inner, nil
}

func (e *SteamExtractor) description(html string) (*goquery.Selection, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	sel := doc.Find(SteamDescriptionSelector).First()
	if sel.Length() == 0 {
		return nil, locmt.Errorf(locmt.EEXTRACT, "description container %q not found", SteamDescriptionSelector)
	}
	return sel, nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locmt.Errorf(locmt.EEXTRACT, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
