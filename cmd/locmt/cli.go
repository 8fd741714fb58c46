package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/locmt/task"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Prompt *Prompt
	Runner *task.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ChromeBin   string        `name:"chrome-bin" env:"LOCMT_CHROME_BIN" help:"Path to Chrome or Chromium (downloaded when empty)"`
	NavTimeout  time.Duration `name:"nav-timeout" env:"LOCMT_NAV_TIMEOUT" default:"30s" help:"Navigation timeout"`
	WaitTimeout time.Duration `name:"wait-timeout" env:"LOCMT_WAIT_TIMEOUT" default:"30s" help:"Timeout for a page to become ready"`
	SourceLang  string        `name:"source-lang" env:"LOCMT_SOURCE_LANG" default:"auto" help:"Source language code"`
	TargetLang  string        `name:"target-lang" env:"LOCMT_TARGET_LANG" default:"ko" help:"Target language code"`
	ShowBrowser bool          `name:"show-browser" help:"Run Chrome with a visible window"`
	Debug       bool          `help:"Log browser operations to stderr"`

	Menu      MenuCmd      `cmd:"" help:"Choose a task interactively"`
	Describe  DescribeCmd  `cmd:"" help:"Find a Steam game and print its description"`
	Translate TranslateCmd `cmd:"" help:"Translate each line of a text file"`
}

// MenuCmd is the "menu" subcommand.
type MenuCmd struct{}

// DescribeCmd is the "describe" subcommand.
type DescribeCmd struct {
	Title    string `arg:"" help:"Game title to search for"`
	Pick     int    `short:"n" help:"Pick the Nth search result (1-based) instead of prompting"`
	Markdown bool   `short:"m" help:"Render the description as Markdown"`
	Media    bool   `help:"Keep images in Markdown output"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	Provider  string `arg:"" enum:"papago,google" help:"Translation service (papago, google)"`
	File      string `arg:"" help:"Text file with one line per translation unit"`
	KeepGoing bool   `short:"k" help:"Continue past lines that fail to translate"`
}
