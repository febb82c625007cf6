// Package cmd implements the minire command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coregx/minire"
)

// Exit codes
const (
	ExitOK             = 0
	ExitNoMatch        = 1
	ExitInvalidPattern = 2
)

// exitError carries a process exit code. A silent exitError has already
// been reported to the user.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// options are the persistent flags shared by every command.
type options struct {
	verbose     bool
	noPrefilter bool
	noLiteral   bool

	logger *slog.Logger
}

func (o *options) config() minire.Config {
	config := minire.DefaultConfig()
	config.EnablePrefilter = !o.noPrefilter
	config.EnableLiteral = !o.noLiteral
	return config
}

// compile compiles pattern with the flag configuration. Invalid patterns
// are reported on stderr and yield ExitInvalidPattern.
func (o *options) compile(cmd *cobra.Command, pattern string) (*minire.Regex, error) {
	re, err := minire.CompileWithConfig(pattern, o.config())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("error:"), err)
		return nil, &exitError{code: ExitInvalidPattern, err: err, silent: true}
	}
	o.logger.Debug("pattern compiled",
		"pattern", pattern,
		"strategy", re.Strategy().String(),
		"states", re.Engine().NFA().States())
	return re, nil
}

// NewRootCommand builds the minire command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "minire",
		Short: "minire - a small Thompson NFA regex engine",
		Long: `minire compiles patterns written with letters, '.', '(', ')', '|',
'*', '+' and '?' into Thompson NFAs and matches whole inputs against them.

Commands:
  match    - match inputs against a pattern
  explain  - show tokens, postfix form, strategy and NFA of a pattern
  dot      - write the NFA of a pattern as Graphviz DOT
  check    - run a YAML or TOML test suite`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVar(&opts.noPrefilter, "no-prefilter", false, "Disable the required-literal prefilter")
	root.PersistentFlags().BoolVar(&opts.noLiteral, "no-literal", false, "Disable exact-literal matching")

	root.AddCommand(
		newMatchCommand(opts),
		newExplainCommand(opts),
		newDotCommand(opts),
		newCheckCommand(opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	return exitCode(root, root.Execute())
}

func exitCode(root *cobra.Command, err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.silent {
			printError(root, ee.err)
		}
		return ee.code
	}
	printError(root, err)
	return ExitNoMatch
}

func printError(root *cobra.Command, err error) {
	fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("error:"), err)
}
