package locmt

import "context"

// MaxSearchChoices is the number of search results offered to the operator.
const MaxSearchChoices = 5

// SearchResult is one entry of a storefront search results list.
type SearchResult struct {
	Title string
	URL   string
}

// SearchChoices returns the results offered for selection: the first
// MaxSearchChoices results in their original order.
func SearchChoices(results []SearchResult) []SearchResult {
	n := min(len(results), MaxSearchChoices)
	choices := make([]SearchResult, n)
	copy(choices, results[:n])
	return choices
}

// Description is the outcome of a game description task.
type Description struct {
	Title string
	URL   string
	Text  string
}

// Chooser asks the operator to pick one of the offered search results.
type Chooser interface {
	// Choose returns the index of the chosen candidate.
	// Candidates contains at most MaxSearchChoices entries.
	Choose(ctx context.Context, candidates []SearchResult) (int, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, candidates []SearchResult) (int, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, candidates []SearchResult) (int, error) {
	return f(ctx, candidates)
}

// Describer runs the two-step storefront flow on a page: search for a title,
// then read the description of one result.
type Describer interface {
	// Search navigates to the search page for title and returns the
	// results in rendered order. Returns ENOTFOUND if there are none.
	Search(ctx context.Context, page Page, title string) ([]SearchResult, error)

	// Describe navigates to the result's page and returns its normalized
	// description text.
	Describe(ctx context.Context, page Page, result SearchResult) (string, error)
}

// SearchExtractor reads storefront search and detail pages.
type SearchExtractor interface {
	// ExtractSearchResults returns the search results from a rendered search
	// page, resolving relative links against baseURL.
	ExtractSearchResults(html string, baseURL string) ([]SearchResult, error)

	// ExtractDescription returns the normalized description text of a
	// rendered detail page.
	ExtractDescription(html string) (string, error)

	// ExtractDescriptionHTML returns the inner HTML of the description
	// container of a rendered detail page.
	ExtractDescriptionHTML(html string) (string, error)
}
