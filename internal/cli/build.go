package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/VantageDataChat/GoDeck/preview"
)

type buildOpts struct {
	deck         string
	output       string
	previewDir   string
	previewWidth int
	fontDirs     []string
	watch        bool
}

func (c *CLI) buildCommand() *cobra.Command {
	var (
		deck, output, previewDir string
		previewWidth             int
		watch                    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deck into a .pptx file",
		Long: `Build lays out every slide of the deck and writes it as a PowerPoint file.
Without --deck the built-in control plane deck is used.`,
		Example: `  deckgen build
  deckgen build --deck release.yaml -o release.pptx
  deckgen build --preview previews --preview-width 1280
  deckgen build --deck release.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOpts{
				deck:         c.deckFlag(cmd, deck),
				output:       c.cfg.Output,
				previewDir:   c.cfg.Preview.Dir,
				previewWidth: c.cfg.Preview.Width,
				fontDirs:     c.cfg.Preview.FontDirs,
				watch:        watch,
			}
			if cmd.Flags().Changed("output") {
				opts.output = output
			}
			if cmd.Flags().Changed("preview") {
				opts.previewDir = previewDir
			}
			if cmd.Flags().Changed("preview-width") {
				if previewWidth <= 0 {
					return fmt.Errorf("--preview-width must be positive, got %d", previewWidth)
				}
				opts.previewWidth = previewWidth
			}
			if opts.watch {
				return c.runWatch(cmd.Context(), opts)
			}
			return c.runBuild(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "deck script (.yaml, .yml or .toml); default is the built-in deck")
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output .pptx path")
	cmd.Flags().StringVar(&previewDir, "preview", "", "also write one PNG per slide into this directory")
	cmd.Flags().IntVar(&previewWidth, "preview-width", defaultPreview, "preview image width in pixels")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild whenever the --deck script changes")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, opts buildOpts) error {
	logger := loggerFromContext(ctx)
	report := startBuild(logger, opts.deck)

	ld, err := loadDeck(ctx, opts.deck)
	if err != nil {
		return err
	}
	deck := ld.deck

	doc := ld.newPresentation()
	var pv *preview.Document
	if opts.previewDir != "" {
		pv = preview.New(deck.Canvas(), preview.Options{Width: opts.previewWidth, FontDirs: opts.fontDirs})
		deck.Emit(pv)
	}

	// The pptx file and the previews are written concurrently.
	var g errgroup.Group
	g.Go(func() error {
		return deck.Save(doc, opts.output)
	})
	if pv != nil {
		g.Go(func() error {
			if err := pv.Save(opts.previewDir); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			logger.Debug("Rendered previews", "dir", opts.previewDir, "slides", pv.SlideCount())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	report.saved(deck.Len(), opts.output, opts.previewDir)

	fmt.Fprintf(c.out, "Presentation saved to: %s\n", opts.output)
	return nil
}

// runWatch builds once and then again after every change to the deck
// script, until ctx is cancelled. Failed rebuilds are logged, not returned.
func (c *CLI) runWatch(ctx context.Context, opts buildOpts) error {
	if opts.deck == "" {
		return fmt.Errorf("--watch needs a --deck script")
	}
	fw, err := newFileWatcher(opts.deck, watchDebounce)
	if err != nil {
		return err
	}
	if err := c.runBuild(ctx, opts); err != nil {
		loggerFromContext(ctx).Error("Build failed", "err", err)
	}
	loggerFromContext(ctx).Info("Watching for changes", "deck", opts.deck)

	return fw.run(ctx, func(ctx context.Context) {
		if err := c.runBuild(ctx, opts); err != nil {
			loggerFromContext(ctx).Error("Build failed", "err", err)
		}
	})
}
