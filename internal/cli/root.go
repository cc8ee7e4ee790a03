// Package cli implements the gridtracks command-line interface.
//
// The commands resolve the explicit grid and build the tracks of
// grid containers described by
//   - a style attribute (count)
//   - a TOML fixture (tracks)
//   - an HTML document (html)
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridtracks/version"
)

// Execute runs the gridtracks CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	root, restore := newRootCmd()
	defer restore()
	return root.ExecuteContext(ctx)
}

// newRootCmd returns the root command and a function restoring the
// library loggers, to call once the command has run, even on failure.
func newRootCmd() (*cobra.Command, func()) {
	var (
		verbose bool
		restore = func() {}
	)

	root := &cobra.Command{
		Use:          "gridtracks",
		Short:        "gridtracks builds the rows and columns of CSS grid containers",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			l := newLogger(cmd.ErrOrStderr(), level)
			restore = redirectLibraryLogs(l)
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}

	root.SetVersionTemplate(version.VersionString + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCountCmd())
	root.AddCommand(newTracksCmd())
	root.AddCommand(newHTMLCmd())

	return root, func() { restore() }
}
