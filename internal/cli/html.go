package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridtracks/html/layout"
	"github.com/benoitkugler/gridtracks/html/tree"
)

func newHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "html <file.html>",
		Short: "Build the tracks of the grid containers of an HTML document",
		Long: `Build the tracks of the elements with display: grid or inline-grid.
Only the style attributes are used, and the children are placed one
after the other, filling each row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			doc, err := tree.Parse(file)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			containers := doc.GridContainers()
			if len(containers) == 0 {
				logger.Warn("no grid container found", "file", args[0])
				return nil
			}

			w := cmd.OutOrStdout()
			grid := layout.NewGrid()
			for _, container := range containers {
				items := len(container.Items)
				grid.Layout(&container.Style, func(explicitColumns, explicitRows int) (columns, rows layout.Placement) {
					return layout.AutoPlace(items, explicitColumns, explicitRows)
				})
				printGrid(w, fmt.Sprintf("%s (%d items)", container.Name(), items), grid)
				fmt.Fprintln(w)
			}
			prog.done(fmt.Sprintf("Built %d grid containers", len(containers)))
			return nil
		},
	}
}
