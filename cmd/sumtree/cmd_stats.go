package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// stats is the result of the stats command.
type stats struct {
	File        string `json:"file"`
	Bytes       uint64 `json:"bytes"`
	Chars       uint64 `json:"chars"`
	Lines       uint64 `json:"lines"`
	Words       int    `json:"words"`
	Chunks      int    `json:"chunks"`
	Height      int    `json:"height"`
	Fingerprint string `json:"fingerprint"`
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print size, line count and tree shape of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txt, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sum := txt.Summary()
			st := stats{
				File:        args[0],
				Bytes:       sum.Bytes,
				Chars:       sum.Chars,
				Lines:       txt.LineCount(),
				Words:       txt.WordCount(),
				Chunks:      txt.Tree().Len(),
				Height:      txt.Tree().Height(),
				Fingerprint: fmt.Sprintf("%016x", txt.Fingerprint()),
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			fmt.Fprintf(out, "file:        %s\n", st.File)
			fmt.Fprintf(out, "bytes:       %d\n", st.Bytes)
			fmt.Fprintf(out, "chars:       %d\n", st.Chars)
			fmt.Fprintf(out, "lines:       %d\n", st.Lines)
			fmt.Fprintf(out, "words:       %d\n", st.Words)
			fmt.Fprintf(out, "chunks:      %d\n", st.Chunks)
			fmt.Fprintf(out, "height:      %d\n", st.Height)
			fmt.Fprintf(out, "fingerprint: %s\n", st.Fingerprint)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
