package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/locmt"
)

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	var chooser locmt.Chooser = deps.Prompt
	if c.Pick != 0 {
		chooser = pickChooser(c.Pick)
	}
	return describe(deps, c.Title, chooser)
}

func describe(deps *Dependencies, title string, chooser locmt.Chooser) error {
	announce := locmt.ChooserFunc(func(ctx context.Context, candidates []locmt.SearchResult) (int, error) {
		i, err := chooser.Choose(ctx, candidates)
		if err == nil && i >= 0 && i < len(candidates) {
			fmt.Fprintf(deps.Stderr, "Loading game description for %q\n", candidates[i].Title)
		}
		return i, err
	})

	desc, err := deps.Runner.Describe(deps.Ctx, title, announce)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stderr, "Description:")
	fmt.Fprintln(deps.Stdout, desc.Text)
	return nil
}
