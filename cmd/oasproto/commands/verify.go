package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasproto/internal/cliutil"
	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/severity"
	"github.com/erraggy/oasproto/rewriter"
)

// VerifyFlags contains flags for the verify command
type VerifyFlags struct {
	Format string
	Quiet  bool
}

func newVerifyCmd() *cobra.Command {
	flags := &VerifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify [flags] <file|->",
		Short: "Check that a document satisfies the rewrite invariants",
		Long: `Report every schema that breaks an invariant of rewritten output:

  additional-properties  additionalProperties is true or accepts any value
  composite-length       an allOf, anyOf or oneOf has exactly one member
  oneof-const            a oneOf member carries a const
  null-type              a type is null
  enum-case              two enum values are equal ignoring case

Exits with status 1 when any violation is found.`,
		Example: `  oasproto verify rewritten.yaml
  oasproto verify --format json rewritten.yaml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, flags, args[0])
		},
	}
	cmd.Flags().StringVar(&flags.Format, "format", FormatText, "report format: text, json or yaml")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "print nothing, only set the exit status")
	return cmd
}

func runVerify(cmd *cobra.Command, flags *VerifyFlags, specPath string) error {
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}

	parsed, err := parseSource(cmd.InOrStdin(), specPath, newLogger(cmd))
	if err != nil {
		return err
	}

	violations := rewriter.Verify(parsed.Document)
	list := make([]issues.Issue, 0, len(violations))
	for _, v := range violations {
		list = append(list, v.Issue())
	}

	if !flags.Quiet {
		out := cmd.OutOrStdout()
		if flags.Format == FormatText {
			cliutil.WriteIssues(out, list, severity.SeverityInfo)
			if len(list) == 0 {
				cliutil.Writef(out, "✓ %s satisfies every invariant\n", FormatSpecPath(specPath))
			} else {
				cliutil.Writef(out, "\n✗ %d %s\n", len(list), cliutil.Plural(len(list), "violation"))
			}
		} else if err := OutputStructured(out, list, flags.Format); err != nil {
			return err
		}
	}

	if len(violations) > 0 {
		return violationsError{count: len(violations)}
	}
	return nil
}
