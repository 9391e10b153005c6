package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) outlineCommand() *cobra.Command {
	var deck string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "List the slides of a deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOutline(cmd.Context(), c.deckFlag(cmd, deck))
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "deck script (.yaml, .yml or .toml); default is the built-in deck")
	return cmd
}

func (c *CLI) runOutline(ctx context.Context, path string) error {
	ld, err := loadDeck(ctx, path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tTITLE\tSHAPES")
	for i, slide := range ld.deck.Slides() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, ld.script.Slides[i].Kind, slide.Name(), slide.Len())
	}
	return tw.Flush()
}
