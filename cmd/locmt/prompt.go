package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/locmt"
)

// Ensure Prompt implements locmt.Chooser at compile time.
var _ locmt.Chooser = (*Prompt)(nil)

// Prompt asks questions on a line-oriented console.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a Prompt reading answers from in and writing questions
// to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer.
// Returns EINPUT when input ends before an answer is given.
func (p *Prompt) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", locmt.Errorf(locmt.EINPUT, "no answer given")
		}
	}
	return strings.TrimSpace(line), nil
}

// Select lists options numbered from 1 and returns the zero-based index of
// the chosen one. Invalid answers are asked again.
func (p *Prompt) Select(question string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, locmt.Errorf(locmt.EINVALID, "nothing to select")
	}
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
	}
	for {
		answer, err := p.Ask(fmt.Sprintf("%s [1-%d]: ", question, len(options)))
		if err != nil {
			return -1, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
	}
}

// Choose asks the operator to pick a search result by title.
func (p *Prompt) Choose(_ context.Context, candidates []locmt.SearchResult) (int, error) {
	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
	}
	return p.Select("Select a game", titles)
}

// pickChooser always selects the nth (1-based) candidate.
func pickChooser(n int) locmt.Chooser {
	return locmt.ChooserFunc(func(_ context.Context, candidates []locmt.SearchResult) (int, error) {
		if n < 1 || n > len(candidates) {
			return -1, locmt.Errorf(locmt.EINVALID, "--pick %d out of range: %d results", n, len(candidates))
		}
		return n - 1, nil
	})
}
