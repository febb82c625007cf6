package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/minire/syntax"
)

func newExplainCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain PATTERN",
		Short: "Show how a pattern is compiled",
		Long: `Show the tokens, postfix form, literal analysis, matching strategy
and NFA states of PATTERN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			out := cmd.OutOrStdout()

			tokens := syntax.Tokenize(pattern)
			fmt.Fprintln(out, titleStyle.Render("Pattern"), pattern)
			fmt.Fprintln(out, labelStyle.Render("tokens"), syntax.FormatTokens(tokens))

			re, err := opts.compile(cmd, pattern)
			if err != nil {
				return err
			}

			postfix, err := syntax.ToPostfix(tokens)
			if err != nil {
				return err
			}
			e := re.Engine()
			info := e.Literals()

			fmt.Fprintln(out, labelStyle.Render("postfix"), syntax.FormatTokens(postfix))
			fmt.Fprintln(out, labelStyle.Render("exact"), info.Exact)
			fmt.Fprintln(out, labelStyle.Render("required"), info.Required)
			fmt.Fprintln(out, labelStyle.Render("strategy"), e.Strategy())
			if pf := e.Prefilter(); pf != nil {
				fmt.Fprintln(out, labelStyle.Render("prefilter"), fmt.Sprintf("%s (%d literals)", pf.Kind(), pf.Literals()))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render(e.NFA().String()))
			fmt.Fprintln(out, labelStyle.Render("accepting"), e.NFA().Accepting())
			fmt.Fprint(out, e.NFA().Dump())
			return nil
		},
	}
}
