// Package cli implements the deckgen command-line interface.
//
// deckgen builds the control plane deck, or any deck described by a YAML or
// TOML script, into a .pptx file and optionally a directory of PNG previews.
//
// # Commands
//
//   - build: write the presentation (and previews with --preview)
//   - validate: build and check the presentation without writing it
//   - outline: list the slides of a deck
//   - inspect: summarize a written .pptx file
//
// # Configuration
//
// Settings come from built-in defaults, an optional --config file, DECKGEN_*
// environment variables and finally command-line flags. Loggers are passed
// to commands through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VantageDataChat/GoDeck"
	"github.com/VantageDataChat/GoDeck/pptx"
	"github.com/VantageDataChat/GoDeck/script"
)

// CLI holds state shared by all commands.
type CLI struct {
	out    io.Writer // command results
	errOut io.Writer // logs

	configPath string
	logLevel   string
	verbose    bool

	cfg *Config
}

// New creates a CLI that prints results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// Execute runs the deckgen command tree with args.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := New(out, errOut).RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "deckgen",
		Short:         "deckgen builds slide decks as .pptx files",
		Long:          `deckgen lays out title, content, architecture and pipeline slides on a widescreen canvas and writes them as a PowerPoint presentation.`,
		Version:       godeck.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			name := cfg.Log.Level
			if cmd.Flags().Changed("log-level") {
				name = c.logLevel
			}
			level, err := parseLevel(name)
			if err != nil {
				return err
			}
			if c.verbose {
				level = log.DebugLevel
			}

			logger := newLogger(c.errOut, level)
			logger.Debug("Loaded configuration", "config", c.configPath, "deck", cfg.Deck, "output", cfg.Output)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate("deckgen {{.Version}}\n")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.inspectCommand())

	return root
}

// =============================================================================
// Deck Loading
// =============================================================================

// loadScript returns the script at path, or the built-in deck when path is
// empty.
func loadScript(path string) (script.Script, error) {
	if path == "" {
		return script.Default(), nil
	}
	return script.Load(path)
}

// loadedDeck is a built deck together with the script and theme it came from.
type loadedDeck struct {
	script script.Script
	deck   *godeck.Deck
	theme  godeck.Theme
}

// loadDeck loads and builds the deck at path on the widescreen canvas.
func loadDeck(ctx context.Context, path string) (*loadedDeck, error) {
	logger := loggerFromContext(ctx)

	s, err := loadScript(path)
	if err != nil {
		return nil, err
	}
	source := path
	if source == "" {
		source = "built-in"
	}
	logger.Debug("Loaded script", "source", source, "slides", len(s.Slides))

	b := godeck.NewBuilder(godeck.Widescreen, godeck.DefaultTheme)
	deck, err := script.Build(b, s)
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}
	for _, w := range godeck.Lint(deck, b.Theme()) {
		logger.Warn("Text may overflow", "slide", w.Slide, "name", w.SlideName, "primitive", w.Primitive, "detail", w.Message)
	}
	return &loadedDeck{script: s, deck: deck, theme: b.Theme()}, nil
}

// newPresentation creates an empty pptx document sized to the deck, styled
// with its theme and carrying the script's title and subject.
func (ld *loadedDeck) newPresentation() *pptx.Document {
	canvas := ld.deck.Canvas()
	doc := pptx.New(canvas.Width, canvas.Height)
	doc.SetTheme(ld.theme)

	props := pptx.NewDocumentProperties()
	props.Title = ld.script.Title
	props.Subject = ld.script.Subject
	doc.SetDocumentProperties(props)
	return doc
}

// deckFlag reads --deck if it was given, otherwise the configured deck.
func (c *CLI) deckFlag(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("deck") {
		return flag
	}
	return c.cfg.Deck
}
