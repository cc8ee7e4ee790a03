package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridtracks/css/validation"
	"github.com/benoitkugler/gridtracks/html/layout"
)

func newTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <fixture.toml>",
		Short: "Build the tracks of the grid containers described in a TOML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			f, undecoded, err := loadFixture(args[0])
			if err != nil {
				return err
			}
			for _, key := range undecoded {
				logger.Warn("unknown fixture key", "key", key)
			}
			logger.Debug("loaded fixture", "containers", f.names())

			w := cmd.OutOrStdout()
			grid := layout.NewGrid()
			for _, cf := range f.Containers {
				style := validation.ParseStyle(cf.Style)
				grid.Layout(&style, cf.place)
				printGrid(w, cf.Name, grid)
				fmt.Fprintln(w)
			}
			prog.done(fmt.Sprintf("Built %d grid containers", len(f.Containers)))
			return nil
		},
	}
}
