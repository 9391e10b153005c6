package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/GoDeck"
	"github.com/VantageDataChat/GoDeck/pptx"
)

func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.pptx",
		Short: "Summarize the slides of a written presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	sum, err := pptx.Read(path)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("Read presentation", "path", path, "slides", len(sum.Slides))

	fmt.Fprintf(c.out, "%s (%.3gin x %.3gin)\n", displayTitle(sum.Title), godeck.EMUToInch(sum.Width), godeck.EMUToInch(sum.Height))

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSHAPES\tTEXT BOXES")
	for i, s := range sum.Slides {
		boxes := 0
		for _, sh := range s.Shapes {
			if sh.TextBox {
				boxes++
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i+1, s.Name, len(s.Shapes), boxes)
	}
	return tw.Flush()
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
