package locmt

import "context"

// Translator translates one line of text on a page.
// Implementations may rely on state kept by the page between calls, so
// calls on the same page must not overlap.
type Translator interface {
	Translate(ctx context.Context, page Page, text string) (string, error)
}

// TranslationExtractor reads the translated text from a rendered page.
type TranslationExtractor interface {
	ExtractTranslation(html string) (string, error)
}

// TranslateProgressType indicates the type of translation progress event.
type TranslateProgressType int

// Translation progress event types.
const (
	TranslateStarted TranslateProgressType = iota
	TranslateCompleted
	TranslateFailed
)

// TranslateProgress reports progress of a translation batch.
// Index is zero-based; Total is the number of source lines.
type TranslateProgress struct {
	Type   TranslateProgressType
	Index  int
	Total  int
	Source string
	Text   string
	Err    error
}

// TranslateProgressFunc is called as lines are processed.
type TranslateProgressFunc func(TranslateProgress)

// SourceLoader reads the lines to translate.
type SourceLoader interface {
	// Load returns the lines of the source at path in order.
	// Returns EINPUT if the source cannot be read.
	Load(path string) ([]string, error)
}

// StatusIndicator renders a progress animation while a long-running
// operation is outstanding.
type StatusIndicator interface {
	// Run renders frames until ctx is cancelled.
	Run(ctx context.Context, label string) error
}
