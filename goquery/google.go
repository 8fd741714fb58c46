package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locmt"
)

// Ensure GoogleExtractor implements locmt.TranslationExtractor at compile time.
var _ locmt.TranslationExtractor = (*GoogleExtractor)(nil)

// GoogleSegmentSelector matches one translated segment on Google Translate.
const GoogleSegmentSelector = ".Q4iAWc"

// GoogleExtractor reads the translation from a rendered Google Translate page.
type GoogleExtractor struct{}

// NewGoogleExtractor creates a new GoogleExtractor.
func NewGoogleExtractor() *GoogleExtractor {
	return &GoogleExtractor{}
}

// ExtractTranslation joins the text of every translated segment in document
// order with single spaces and collapses newline runs. Returns EEXTRACT if
// there are no segments.
func (e *GoogleExtractor) ExtractTranslation(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	segments := doc.Find(GoogleSegmentSelector)
	if segments.Length() == 0 {
		return "", locmt.Errorf(locmt.EEXTRACT, "no translated segments %q found", GoogleSegmentSelector)
	}

	var b strings.Builder
	segments.Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteByte(' ')
	})

	return locmt.NormalizeText(strings.TrimSpace(b.String())), nil
}
