// Package fs reads source text files.
package fs

import (
	"os"
	"strings"

	"github.com/fwojciec/locmt"
)

// Ensure SourceLoader implements locmt.SourceLoader at compile time.
var _ locmt.SourceLoader = (*SourceLoader)(nil)

// SourceLoader reads newline-delimited UTF-8 text files.
type SourceLoader struct{}

// NewSourceLoader creates a new SourceLoader.
func NewSourceLoader() *SourceLoader {
	return &SourceLoader{}
}

// Load returns the lines of the file at path. A trailing newline does not
// produce an extra empty line and CRLF endings are accepted. An empty file
// yields no lines.
func (l *SourceLoader) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, locmt.Errorf(locmt.EINPUT, "failed to read %s: %v", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
