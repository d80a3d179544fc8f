// Package commands provides the cobra command tree for the oasproto CLI.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasproto/parser"
)

// Execute runs the oasproto CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oasproto",
		Short: "Rewrite OpenAPI documents for protobuf code generation",
		Long: "oasproto normalizes OpenAPI 3.x documents (Swagger 2.0 is upgraded on load) so that " +
			"every schema maps onto a protobuf message, enum or oneof.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(flagError)
	cmd.PersistentFlags().Bool("verbose", false, "log pipeline activity to stderr at debug level")

	for _, sub := range []*cobra.Command{newRewriteCmd(), newVerifyCmd(), newVersionCmd()} {
		sub.SetFlagErrorFunc(flagError)
		cmd.AddCommand(sub)
	}
	return cmd
}

// flagError turns cobra flag errors (like unknown flags) into usage errors
// that carry the command's help text.
func flagError(c *cobra.Command, err error) error {
	return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return flagError(cmd, err)
		}
		return nil
	}
}

// newLogger returns a debug-level slog text logger on the command's stderr
// when --verbose is set.
func newLogger(cmd *cobra.Command) parser.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return parser.NopLogger{}
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(h))
}
