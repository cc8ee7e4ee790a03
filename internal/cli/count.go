package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridtracks/css/validation"
	"github.com/benoitkugler/gridtracks/html/layout"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <style>",
		Short: "Print the number of explicit columns and rows of a grid container",
		Long: `Resolve the explicit grid of a container, whose properties are given
as the content of a style attribute, for example:

  gridtracks count "width: 300px; grid-template-columns: repeat(auto-fill, 100px)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			style := validation.ParseStyle(args[0])
			if !style.IsGrid() {
				logger.Debug("container is not a grid, resolving anyway", "display", style.Display)
			}
			columns, rows := layout.ExplicitSizes(&style)
			w := cmd.OutOrStdout()
			p := newPalette(w)
			fmt.Fprintf(w, "columns: %s\n", p.number.Render(strconv.Itoa(columns)))
			fmt.Fprintf(w, "rows: %s\n", p.number.Render(strconv.Itoa(rows)))
			return nil
		},
	}
}
