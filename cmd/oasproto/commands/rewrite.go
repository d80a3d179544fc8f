package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasproto"
	"github.com/erraggy/oasproto/internal/cliutil"
	"github.com/erraggy/oasproto/internal/issues"
	"github.com/erraggy/oasproto/internal/severity"
	"github.com/erraggy/oasproto/oaserrors"
	"github.com/erraggy/oasproto/parser"
	"github.com/erraggy/oasproto/rewriter"
)

// RewriteFlags contains flags for the rewrite command
type RewriteFlags struct {
	Output      string
	Format      string
	Exempt      []string
	Suffix      string
	NullType    string
	WrapperKey  string
	Inject      bool
	Only        []string
	MinSeverity string
	Strict      bool
	Quiet       bool
}

func newRewriteCmd() *cobra.Command {
	flags := &RewriteFlags{}
	cmd := &cobra.Command{
		Use:   "rewrite [flags] <file|->",
		Short: "Rewrite a document into a protobuf-friendly shape",
		Long: `Run the rewrite pipeline over an OpenAPI document and print the result.

Phases:
  local        const-to-enum, array-dedup, collapse-composite,
               any-additional-properties, enum-dedup, null-type, redundant-union
  restructure  single-map, titled-additional-properties, oneof-exclusive
  annotate     oneof-annotation

The summary and diagnostics go to stderr so stdout can be piped.`,
		Example: `  oasproto rewrite openapi.yaml
  oasproto rewrite -o proto-ready.yaml --exempt LegacyFilter openapi.yaml
  oasproto rewrite --inject --format json swagger.json
  cat openapi.yaml | oasproto rewrite -q - | oasproto verify -`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Output, "output", "o", "", "output file path (default: stdout)")
	f.StringVar(&flags.Format, "format", "", "output format: yaml or json (default: source format)")
	f.StringArrayVar(&flags.Exempt, "exempt", nil, "component or Component.property that keeps a plain reference for single-map (repeatable)")
	f.StringVar(&flags.Suffix, "single-map-suffix", rewriter.DefaultSingleMapSuffix, "suffix of generated single-map components")
	f.StringVar(&flags.NullType, "null-type", rewriter.DefaultNullTypeName, "type name substituted for null")
	f.StringVar(&flags.WrapperKey, "wrapper-key", rewriter.DefaultWrapperProperty, "property wrapping an untitled primitive when --inject is set")
	f.BoolVar(&flags.Inject, "inject", false, "add the key field to the value type instead of generating a boxed component")
	f.StringSliceVar(&flags.Only, "only", nil, "run only the named rules (comma separated)")
	f.StringVar(&flags.MinSeverity, "min-severity", "warning", "lowest diagnostic severity to print: info, warning or error")
	f.BoolVar(&flags.Strict, "strict", false, "exit non-zero when a rewrite was skipped with an error diagnostic")
	f.BoolVarP(&flags.Quiet, "quiet", "q", false, "only output the document, no summary")
	return cmd
}

func runRewrite(cmd *cobra.Command, flags *RewriteFlags, specPath string) error {
	stderr := cmd.ErrOrStderr()

	minSeverity, err := severity.Parse(flags.MinSeverity)
	if err != nil {
		return newUsageError(err.Error())
	}
	if flags.Format != "" {
		if err := ValidateOutputFormat(flags.Format, FormatYAML, FormatJSON); err != nil {
			return err
		}
	}
	enabled := make([]rewriter.RewriteType, 0, len(flags.Only))
	for _, name := range flags.Only {
		rt, err := rewriter.ParseRewriteType(name)
		if err != nil {
			return newUsageError(err.Error())
		}
		enabled = append(enabled, rt)
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(stderr, flags.Output, specPath); err != nil {
			return err
		}
	}

	log := newLogger(cmd)
	startTime := time.Now()
	parsed, err := parseSource(cmd.InOrStdin(), specPath, log)
	if err != nil {
		return err
	}

	style := rewriter.SingleMapBoxed
	if flags.Inject {
		style = rewriter.SingleMapInjected
	}
	opts := []rewriter.Option{
		rewriter.WithParsed(parsed),
		rewriter.WithSingleMapExemptions(flags.Exempt...),
		rewriter.WithSingleMapSuffix(flags.Suffix),
		rewriter.WithNullTypeName(flags.NullType),
		rewriter.WithDefaultWrapperKey(flags.WrapperKey),
		rewriter.WithSingleMapStyle(style),
		rewriter.WithLogger(log),
	}
	if len(enabled) > 0 {
		opts = append(opts, rewriter.WithEnabledRewrites(enabled...))
	}
	result, err := rewriter.RewriteWithOptions(opts...)
	if err != nil {
		return rewriteError(err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(stderr, "OpenAPI Protobuf Rewriter\n")
		cliutil.Writef(stderr, "=========================\n\n")
		cliutil.Writef(stderr, "oasproto version: %s\n", oasproto.Version())
		cliutil.Writef(stderr, "Specification: %s\n", FormatSpecPath(specPath))
		cliutil.Writef(stderr, "OAS Version: %s\n", parsed.Version)
		cliutil.Writef(stderr, "Schemas: %d\n", len(result.Document.SchemaNames()))
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)

		if result.HasRewrites() {
			cliutil.Writef(stderr, "Rewrites Applied (%d):\n", result.RewriteCount)
			for _, rw := range result.Rewrites {
				cliutil.Writef(stderr, "  - [%s] %s: %s\n", rw.Type, rw.Path, rw.Description)
			}
			cliutil.Writef(stderr, "\n")
		}
		if len(result.Generated) > 0 {
			cliutil.Writef(stderr, "Generated Components (%d):\n", len(result.Generated))
			for _, name := range result.Generated {
				cliutil.Writef(stderr, "  - %s\n", name)
			}
			cliutil.Writef(stderr, "\n")
		}
		if n := cliutil.WriteIssues(stderr, result.Diagnostics, minSeverity); n > 0 {
			cliutil.Writef(stderr, "\n")
		}

		if result.HasRewrites() {
			cliutil.Writef(stderr, "✓ Applied %d %s\n", result.RewriteCount, cliutil.Plural(result.RewriteCount, "rewrite"))
		} else {
			cliutil.Writef(stderr, "✓ No rewrites needed\n")
		}
	}

	format := result.SourceFormat
	if flags.Format != "" {
		format = parser.SourceFormat(flags.Format)
	}
	data, err := parser.Encode(result.Document, format)
	if err != nil {
		return fmt.Errorf("encoding rewritten document: %w", err)
	}
	if err := writeOutput(cmd.OutOrStdout(), flags.Output, data); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.Output)
	}

	if flags.Strict && issues.HasAtLeast(result.Diagnostics, severity.SeverityError) {
		counts := issues.CountBySeverity(result.Diagnostics)
		return fmt.Errorf("%d rewrite(s) skipped with errors", counts[severity.SeverityError])
	}
	return nil
}

// rewriteError maps a pipeline failure to the command's error. Only a
// rejected option is a usage error.
func rewriteError(err error) error {
	if errors.Is(err, oaserrors.ErrConfig) {
		return newUsageError(err.Error())
	}
	return fmt.Errorf("rewriting: %w", err)
}
