package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) validateCommand() *cobra.Command {
	var deck string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the deck and check it without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), c.deckFlag(cmd, deck))
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "deck script (.yaml, .yml or .toml); default is the built-in deck")
	return cmd
}

func (c *CLI) runValidate(ctx context.Context, path string) error {
	ld, err := loadDeck(ctx, path)
	if err != nil {
		return err
	}
	deck := ld.deck

	doc := ld.newPresentation()
	deck.Emit(doc)
	if err := doc.Validate(); err != nil {
		return err
	}

	loggerFromContext(ctx).Info("Deck is valid", "slides", deck.Len())
	fmt.Fprintf(c.out, "OK: %d slides\n", deck.Len())
	return nil
}
