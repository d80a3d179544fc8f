package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasproto"
	"github.com/erraggy/oasproto/internal/cliutil"
)

func newVersionCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the oasproto version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if long {
				cliutil.Writef(cmd.OutOrStdout(), "%s", oasproto.BuildInfo())
				return nil
			}
			cliutil.Writef(cmd.OutOrStdout(), "oasproto %s\n", oasproto.Version())
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "include commit, build time and Go version")
	return cmd
}
