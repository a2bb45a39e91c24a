// Package cli provides the command-line interface for regexlite.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/twinfer/regexlite/internal/config"
)

// Version is set at build time with -ldflags "-X ...".
var Version = "dev"

// Exit codes, grep style.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitTrouble = 2
)

// exitError carries a process exit code through cobra's error return.
// A nil err means nothing is printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// app is the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "regexlite",
		Short: "Full-string matching with a tiny, backtracking-free pattern language",
		Long: `regexlite decides whether whole strings match a small pattern language:

  .   matches any single character
  *   matches zero or more of the previous atom
      any other character matches itself

Matching always costs O(pattern x text), so no pattern can stall it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for commands that don't need it
			if cmd.Name() == "help" || cmd.Name() == "version" {
				a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
				return nil
			}

			var err error
			a.cfg, err = config.Load(a.cfgFile)
			if err != nil {
				return &exitError{code: exitTrouble, err: fmt.Errorf("loading config: %w", err)}
			}

			a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Log.Level, a.verbose)
			a.logger.Debug("config loaded", "file", a.cfgFile, "jobs", a.cfg.Grep.Jobs)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./regexlite.toml)")
	// No shorthand: -v selects non-matching lines in grep.
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newMatchCmd(a),
		newGrepCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return exitMatch
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintln(stderr, "regexlite:", exitErr.err)
		}
		return exitErr.code
	}
	fmt.Fprintln(stderr, "regexlite:", err)
	return exitTrouble
}

// Execute runs the root command with the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "regexlite", Version)
		},
	}
}
