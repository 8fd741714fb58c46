// Package task orchestrates units of work against a browser session: a
// Steam description lookup or a line-by-line translation batch.
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/locmt"
	"golang.org/x/sync/errgroup"
)

// SearchingLabel is shown while the Steam search is outstanding.
const SearchingLabel = "Searching"

// Runner runs one unit of work per call, each in a fresh browser session.
type Runner struct {
	Browser     locmt.Browser
	Sources     locmt.SourceLoader
	Indicator   locmt.StatusIndicator
	Describer   locmt.Describer
	Translators map[locmt.Provider]locmt.Translator

	// KeepGoing records a failed line and continues instead of aborting.
	KeepGoing bool
}

// Request describes one unit of work.
type Request struct {
	Provider locmt.Provider

	// Title and Chooser are used by the Steam provider.
	Title   string
	Chooser locmt.Chooser

	// Path and Progress are used by translation providers.
	Path     string
	Progress locmt.TranslateProgressFunc
}

// Outcome holds the result of a unit of work.
type Outcome struct {
	Description  *locmt.Description
	Translations []string
}

// Run dispatches req to the matching provider flow.
func (r *Runner) Run(ctx context.Context, req Request) (*Outcome, error) {
	switch req.Provider {
	case locmt.ProviderSteam:
		desc, err := r.Describe(ctx, req.Title, req.Chooser)
		if err != nil {
			return nil, err
		}
		return &Outcome{Description: desc}, nil
	case locmt.ProviderPapago, locmt.ProviderGoogle:
		lines, err := r.TranslateFile(ctx, req.Provider, req.Path, req.Progress)
		return &Outcome{Translations: lines}, err
	default:
		return nil, locmt.Errorf(locmt.EINVALID, "unknown provider %q", req.Provider)
	}
}

// Describe searches Steam for title, asks chooser to pick one of the first
// results and returns the description of the chosen store page.
func (r *Runner) Describe(ctx context.Context, title string, chooser locmt.Chooser) (_ *locmt.Description, err error) {
	if r.Describer == nil {
		return nil, locmt.Errorf(locmt.EINTERNAL, "no describer configured")
	}
	if chooser == nil {
		return nil, locmt.Errorf(locmt.EINTERNAL, "no chooser configured")
	}

	var session locmt.Session
	defer func() {
		if session != nil {
			closeSession(session, &err)
		}
	}()

	var results []locmt.SearchResult
	err = r.withStatus(ctx, SearchingLabel, func(ctx context.Context) error {
		s, err := r.Browser.Open(ctx)
		if err != nil {
			return err
		}
		session = s
		results, err = r.Describer.Search(ctx, s, title)
		return err
	})
	if err != nil {
		return nil, err
	}

	choices := locmt.SearchChoices(results)
	i, err := chooser.Choose(ctx, choices)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(choices) {
		return nil, locmt.Errorf(locmt.EINVALID, "choice %d out of range 1-%d", i+1, len(choices))
	}
	chosen := choices[i]

	text, err := r.Describer.Describe(ctx, session, chosen)
	if err != nil {
		return nil, err
	}

	return &locmt.Description{
		Title: chosen.Title,
		URL:   chosen.URL,
		Text:  text,
	}, nil
}

// TranslateFile loads the lines at path and translates them with provider.
// An unreadable source yields an empty result and an EINPUT error. A source
// with no text to translate also reports EINPUT, after passing any blank
// lines through.
func (r *Runner) TranslateFile(ctx context.Context, provider locmt.Provider, path string, progress locmt.TranslateProgressFunc) ([]string, error) {
	if r.Sources == nil {
		return []string{}, locmt.Errorf(locmt.EINTERNAL, "no source loader configured")
	}
	lines, err := r.Sources.Load(path)
	if err != nil {
		if locmt.ErrorCode(err) != locmt.EINPUT {
			err = locmt.Errorf(locmt.EINPUT, "failed to read %s: %v", path, err)
		}
		return []string{}, err
	}
	out, err := r.Translate(ctx, provider, lines, progress)
	if err != nil {
		return out, err
	}
	if !hasText(lines) {
		return out, locmt.Errorf(locmt.EINPUT, "nothing to translate in %s", path)
	}
	return out, nil
}

func hasText(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// Translate translates lines in order with provider, one line at a time.
// The result has one entry per input line. Blank lines translate to "" and
// never reach the browser. A session is opened only when a non-blank line
// needs it.
func (r *Runner) Translate(ctx context.Context, provider locmt.Provider, lines []string, progress locmt.TranslateProgressFunc) (_ []string, err error) {
	tr, ok := r.Translators[provider]
	if !ok {
		return nil, locmt.Errorf(locmt.EINVALID, "%s is not a translation provider", provider)
	}
	if progress == nil {
		progress = func(locmt.TranslateProgress) {}
	}

	out := make([]string, len(lines))
	total := len(lines)

	var session locmt.Session
	defer func() {
		if session != nil {
			closeSession(session, &err)
		}
	}()

	var failed int
	var firstErr error
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		progress(locmt.TranslateProgress{
			Type:   locmt.TranslateStarted,
			Index:  i,
			Total:  total,
			Source: line,
		})

		if strings.TrimSpace(line) == "" {
			progress(locmt.TranslateProgress{
				Type:   locmt.TranslateCompleted,
				Index:  i,
				Total:  total,
				Source: line,
			})
			continue
		}

		if session == nil {
			s, err := r.Browser.Open(ctx)
			if err != nil {
				return nil, err
			}
			session = s
		}

		text, err := tr.Translate(ctx, session, line)
		if err != nil {
			progress(locmt.TranslateProgress{
				Type:   locmt.TranslateFailed,
				Index:  i,
				Total:  total,
				Source: line,
				Err:    err,
			})
			if !r.KeepGoing {
				return nil, err
			}
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		out[i] = text
		progress(locmt.TranslateProgress{
			Type:   locmt.TranslateCompleted,
			Index:  i,
			Total:  total,
			Source: line,
			Text:   text,
		})
	}

	if failed > 0 {
		return out, locmt.Errorf(locmt.ErrorCode(firstErr), "%d of %d lines failed, first: %s", failed, total, locmt.ErrorMessage(firstErr))
	}
	return out, nil
}

// withStatus runs fn while the indicator renders label. The indicator is
// stopped and joined before withStatus returns.
func (r *Runner) withStatus(ctx context.Context, label string, fn func(ctx context.Context) error) error {
	if r.Indicator == nil {
		return fn(ctx)
	}

	statusCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		return r.Indicator.Run(statusCtx, label)
	})

	err := fn(ctx)
	cancel()
	if werr := g.Wait(); werr != nil && err == nil {
		return fmt.Errorf("status indicator: %w", werr)
	}
	return err
}

// closeSession closes s and reports the close error unless err is already set.
func closeSession(s locmt.Session, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
