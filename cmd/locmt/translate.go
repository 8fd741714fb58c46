package main

import (
	"fmt"

	"github.com/fwojciec/locmt"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	provider, err := locmt.ParseProvider(c.Provider)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		return err
	}
	deps.Runner.KeepGoing = c.KeepGoing
	return translate(deps, provider, c.File)
}

func translate(deps *Dependencies, provider locmt.Provider, path string) error {
	if !provider.IsTranslator() {
		err := locmt.Errorf(locmt.EINVALID, "%s is not a translation provider", provider)
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		return err
	}

	progress := func(p locmt.TranslateProgress) {
		switch p.Type {
		case locmt.TranslateStarted:
			fmt.Fprintf(deps.Stdout, "[Translating %d/%d]\n", p.Index+1, p.Total)
		case locmt.TranslateCompleted:
			fmt.Fprintln(deps.Stdout, p.Text)
		case locmt.TranslateFailed:
			fmt.Fprintf(deps.Stderr, "error: line %d: %s\n", p.Index+1, locmt.ErrorMessage(p.Err))
			// Keep stdout aligned with the source lines.
			fmt.Fprintln(deps.Stdout)
		}
	}

	_, err := deps.Runner.TranslateFile(deps.Ctx, provider, path, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locmt.ErrorMessage(err))
		// An unreadable or empty source is reported, not treated as a failed run.
		if locmt.ErrorCode(err) == locmt.EINPUT {
			return nil
		}
		return err
	}
	return nil
}
