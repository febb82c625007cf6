package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/minire/internal/suite"
)

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Run a pattern test suite",
		Long: `Run the test suite in FILE and print PASS or FAIL per case.

FILE is YAML (.yaml, .yml) or TOML (.toml):

  cases:
    - pattern: "pens?"
      inputs:
        - {input: "pens", match: true}
    - pattern: "a||b"
      valid: false

Exits with status 1 if any case fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.Load(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("suite loaded", "file", args[0], "cases", len(s.Cases))

			report := suite.Run(s, opts.config())
			out := cmd.OutOrStdout()
			for i := range report.Cases {
				printCaseResult(cmd, &report.Cases[i])
			}

			fmt.Fprintf(out, "\n%d passed, %d failed\n", report.Passed, report.Failed)
			if !report.OK() {
				return &exitError{code: ExitNoMatch, silent: true}
			}
			return nil
		},
	}
}

func printCaseResult(cmd *cobra.Command, res *suite.CaseResult) {
	out := cmd.OutOrStdout()
	if res.Passed() {
		fmt.Fprintln(out, passStyle.Render("PASS"), res.Case.Name)
		return
	}

	fmt.Fprintln(out, failStyle.Render("FAIL"), res.Case.Name)
	switch {
	case res.Err != nil && res.Case.ExpectValid():
		fmt.Fprintln(out, "     unexpected error:", res.Err)
	case res.Err == nil && !res.Case.ExpectValid():
		fmt.Fprintln(out, "     compiled, want invalid pattern")
	}
	for _, in := range res.Inputs {
		if !in.Passed() {
			fmt.Fprintf(out, "     %s: got %v, want %v\n", strconv.Quote(in.Input.Input), in.Got, in.Input.Match)
		}
	}
}
