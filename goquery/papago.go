package goquery

import (
	"strings"

	"github.com/fwojciec/locmt"
)

// Ensure PapagoExtractor implements locmt.TranslationExtractor at compile time.
var _ locmt.TranslationExtractor = (*PapagoExtractor)(nil)

// PapagoTargetSelector matches the translated text output of Papago.
const PapagoTargetSelector = "#txtTarget>span"

// PapagoExtractor reads the translation from a rendered Papago page.
type PapagoExtractor struct{}

// NewPapagoExtractor creates a new PapagoExtractor.
func NewPapagoExtractor() *PapagoExtractor {
	return &PapagoExtractor{}
}

// ExtractTranslation returns the text content of the target output with
// newline runs collapsed. Returns EEXTRACT if the output element is missing.
func (e *PapagoExtractor) ExtractTranslation(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	sel := doc.Find(PapagoTargetSelector)
	if sel.Length() == 0 {
		return "", locmt.Errorf(locmt.EEXTRACT, "translation output %q not found", PapagoTargetSelector)
	}

	return locmt.NormalizeText(strings.TrimSpace(sel.Text())), nil
}
