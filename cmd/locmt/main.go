package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locmt"
	"github.com/fwojciec/locmt/fs"
	"github.com/fwojciec/locmt/google"
	"github.com/fwojciec/locmt/goquery"
	"github.com/fwojciec/locmt/htmltomarkdown"
	"github.com/fwojciec/locmt/papago"
	"github.com/fwojciec/locmt/rod"
	locslog "github.com/fwojciec/locmt/slog"
	"github.com/fwojciec/locmt/steam"
	"github.com/fwojciec/locmt/task"
	"github.com/fwojciec/locmt/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by interactive prompts. Defaults to os.Stdin.
	Stdin io.Reader

	// Services for end-to-end testing. When nil, real implementations are
	// wired from flags.
	Browser   locmt.Browser
	Indicator locmt.StatusIndicator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Prompt: NewPrompt(m.Stdin, stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locmt"),
		kong.Description("Look up Steam game descriptions and machine-translate text files in a headless browser"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locmt --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Runner = m.wire(cli, stderr)

	return kongCtx.Run(deps)
}

// wire builds the task runner from parsed flags.
func (m *Main) wire(cli *CLI, stderr io.Writer) *task.Runner {
	var browser locmt.Browser = m.Browser
	if browser == nil {
		browser = rod.NewBrowser(
			rod.WithBin(cli.ChromeBin),
			rod.WithHeadless(!cli.ShowBrowser),
			rod.WithNavigationTimeout(cli.NavTimeout),
		)
	}

	indicator := m.Indicator
	if indicator == nil {
		indicator = term.NewIndicator(stderr)
	}

	describerOpts := []steam.Option{steam.WithReadinessTimeout(cli.WaitTimeout)}
	if cli.Describe.Markdown {
		var convOpts []htmltomarkdown.Option
		if cli.Describe.Media {
			convOpts = append(convOpts, htmltomarkdown.WithMedia())
		}
		describerOpts = append(describerOpts, steam.WithConverter(htmltomarkdown.NewConverter(convOpts...)))
	}
	var describer locmt.Describer = steam.NewDescriber(goquery.NewSteamExtractor(), describerOpts...)

	translators := map[locmt.Provider]locmt.Translator{
		locmt.ProviderPapago: papago.NewTranslator(goquery.NewPapagoExtractor(),
			papago.WithLanguages(cli.SourceLang, cli.TargetLang),
			papago.WithReadinessTimeout(cli.WaitTimeout),
		),
		locmt.ProviderGoogle: google.NewTranslator(goquery.NewGoogleExtractor(),
			google.WithLanguages(cli.SourceLang, cli.TargetLang),
			google.WithReadinessTimeout(cli.WaitTimeout),
		),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		browser = locslog.NewLoggingBrowser(browser, logger)
		describer = locslog.NewLoggingDescriber(describer, logger)
		for p, tr := range translators {
			translators[p] = locslog.NewLoggingTranslator(tr, p, logger)
		}
	}

	return &task.Runner{
		Browser:     browser,
		Sources:     fs.NewSourceLoader(),
		Indicator:   indicator,
		Describer:   describer,
		Translators: translators,
	}
}
