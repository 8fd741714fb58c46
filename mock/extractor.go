package mock

import "github.com/fwojciec/locmt"

var _ locmt.SearchExtractor = (*SearchExtractor)(nil)

// SearchExtractor is a mock implementation of locmt.SearchExtractor.
type SearchExtractor struct {
	ExtractSearchResultsFn   func(html string, baseURL string) ([]locmt.SearchResult, error)
	ExtractDescriptionFn     func(html string) (string, error)
	ExtractDescriptionHTMLFn func(html string) (string, error)
}

func (e *SearchExtractor) ExtractSearchResults(html string, baseURL string) ([]locmt.SearchResult, error) {
	return e.ExtractSearchResultsFn(html, baseURL)
}

func (e *SearchExtractor) ExtractDescription(html string) (string, error) {
	return e.ExtractDescriptionFn(html)
}

func (e *SearchExtractor) ExtractDescriptionHTML(html string) (string, error) {
	return e.ExtractDescriptionHTMLFn(html)
}

var _ locmt.TranslationExtractor = (*TranslationExtractor)(nil)

// TranslationExtractor is a mock implementation of locmt.TranslationExtractor.
type TranslationExtractor struct {
	ExtractTranslationFn func(html string) (string, error)
}

func (e *TranslationExtractor) ExtractTranslation(html string) (string, error) {
	return e.ExtractTranslationFn(html)
}

var _ locmt.Converter = (*Converter)(nil)

// Converter is a mock implementation of locmt.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
