package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/sumtree/text"
	"github.com/npillmayer/sumtree/text/html"
	"github.com/npillmayer/sumtree/text/textfile"
	"github.com/spf13/cobra"
)

// options shared by all sub-commands
type rootOptions struct {
	trace    string // trace level
	fragSize int64  // fragment size for file loading
	fromHTML bool   // extract text from an HTML file
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "sumtree",
		Short:         "Inspect text files held in a B+ sum-tree",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.trace)
		},
	}
	root.PersistentFlags().StringVar(&opts.trace, "trace", "", "trace level (error, info, debug)")
	root.PersistentFlags().Int64Var(&opts.fragSize, "fragment", 0, "fragment size for loading files (0 = auto)")
	root.PersistentFlags().BoolVar(&opts.fromHTML, "from-html", false, "treat input as HTML and use its text content")
	root.AddCommand(newStatsCmd(opts), newDumpCmd(opts), newLineCmd(opts))
	return root
}

func setupTracing(level string) error {
	if level == "" {
		return nil
	}
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(level) {
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

// load reads the input file of a sub-command.
func (opts *rootOptions) load(ctx context.Context, path string) (text.Text, error) {
	txt, err := textfile.Load(ctx, path, opts.fragSize)
	if err != nil || !opts.fromHTML {
		return txt, err
	}
	return html.TextFromHTML(strings.NewReader(txt.String()))
}
