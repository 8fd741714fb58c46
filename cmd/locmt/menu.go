package main

import (
	"fmt"

	"github.com/fwojciec/locmt"
)

// Run executes the menu command.
func (c *MenuCmd) Run(deps *Dependencies) error {
	providers := locmt.Providers()
	labels := make([]string, len(providers))
	for i, p := range providers {
		labels[i] = p.Label()
	}

	i, err := deps.Prompt.Select("Select a task", labels)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		return err
	}
	provider := providers[i]

	if provider == locmt.ProviderSteam {
		title, err := deps.Prompt.Ask("Game title: ")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
			return err
		}
		return describe(deps, title, deps.Prompt)
	}

	path, err := deps.Prompt.Ask("Source file: ")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		return err
	}
	return translate(deps, provider, path)
}
