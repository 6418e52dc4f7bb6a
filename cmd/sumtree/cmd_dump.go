package main

import (
	"errors"

	"github.com/npillmayer/sumtree/chunk"
	"github.com/npillmayer/sumtree/internal/dump"
	"github.com/spf13/cobra"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var asHTML, asDot bool
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the chunk tree of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asHTML && asDot {
				return errors.New("--html and --dot are mutually exclusive")
			}
			txt, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case asHTML:
				return dump.HTML(out, txt.Tree(), chunk.Chunk.String)
			case asDot:
				return txt.Tree().Dot(out, chunk.Chunk.String)
			}
			return dump.Console(out, txt.Tree(), chunk.Chunk.String, dump.OptionsFromTerminal())
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "output nested HTML lists")
	cmd.Flags().BoolVar(&asDot, "dot", false, "output Graphviz DOT")
	return cmd
}
