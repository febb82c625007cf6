package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN [INPUT...]",
		Short: "Match inputs against a pattern",
		Long: `Match each INPUT against PATTERN and print "match" or "no match".

With no INPUT arguments, every line of standard input is matched.
Exits with status 1 if any input did not match, 2 if PATTERN is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := opts.compile(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			check := func(input string) {
				ok := re.MatchString(input)
				if ok {
					fmt.Fprintln(out, matchStyle.Render("match   "), strconv.Quote(input))
				} else {
					failed++
					fmt.Fprintln(out, noMatchStyle.Render("no match"), strconv.Quote(input))
				}
			}

			if len(args) > 1 {
				for _, input := range args[1:] {
					check(input)
				}
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					check(scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			}

			stats := re.Stats()
			opts.logger.Debug("match finished",
				"failed", failed,
				"nfa_searches", stats.NFASearches,
				"literal_searches", stats.LiteralSearches,
				"prefilter_rejects", stats.PrefilterRejects)

			if failed > 0 {
				return &exitError{code: ExitNoMatch, silent: true}
			}
			return nil
		},
	}
}
