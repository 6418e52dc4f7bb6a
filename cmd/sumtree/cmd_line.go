package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLineCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "line FILE N",
		Short: "Print line N (counting from 0) of a text file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid line number %q: %w", args[1], err)
			}
			txt, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			line, err := txt.Line(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
