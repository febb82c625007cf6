package cmd

import (
	"github.com/spf13/cobra"

	"github.com/coregx/minire/nfa"
)

func newDotCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot PATTERN",
		Short: "Write the NFA of a pattern as Graphviz DOT",
		Long: `Write the NFA of PATTERN to standard output in Graphviz DOT format.

Example:
  minire dot 'a(bb)*|b' | dot -Tsvg > nfa.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := opts.compile(cmd, args[0])
			if err != nil {
				return err
			}
			return nfa.WriteDOT(cmd.OutOrStdout(), re.Engine().NFA())
		},
	}
}
