package locmt

import "regexp"

var (
	newlineRuns   = regexp.MustCompile(`\n+`)
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText collapses every run of consecutive newline characters into
// a single newline. It is idempotent.
func NormalizeText(s string) string {
	return newlineRuns.ReplaceAllString(s, "\n")
}

// NormalizeMarkdown collapses runs of three or more newlines into one blank
// line. Block separators survive, so paragraphs stay apart.
func NormalizeMarkdown(s string) string {
	return blankLineRuns.ReplaceAllString(s, "\n\n")
}
