package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/twinfer/regexlite/internal/lite"
)

type matchOptions struct {
	ignoreCase bool
	quiet      bool
	keepNL     bool
}

func newMatchCmd(a *app) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match PATTERN [TEXT]",
		Short: "Report whether TEXT fully matches PATTERN",
		Long: `Reports whether TEXT as a whole matches PATTERN as a whole, printing
true or false. Exits 0 on a match and 1 otherwise; a malformed pattern is
simply no match.

Without TEXT the whole of standard input is matched, streamed, with one
trailing newline removed unless --keep-newline is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lite.Parse(args[0])
			if err != nil {
				a.logger.Debug("pattern rejected", "pattern", args[0], "error", err)
				return opts.report(cmd, false)
			}
			if opts.ignoreCase || a.cfg.Grep.IgnoreCase {
				p = p.Fold()
			}

			var matched bool
			if len(args) == 2 {
				matched = p.MatchString(args[1])
			} else {
				var r io.RuneReader = bufio.NewReader(cmd.InOrStdin())
				if !opts.keepNL {
					r = &chompReader{r: r}
				}
				matched, err = p.MatchReader(r)
				if err != nil {
					return &exitError{code: exitTrouble, err: fmt.Errorf("reading standard input: %w", err)}
				}
			}
			a.logger.Debug("matched", "pattern", p.String(), "atoms", p.Len(), "result", matched)
			return opts.report(cmd, matched)
		},
	}

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "compare literals case-insensitively")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing, only set the exit status")
	cmd.Flags().BoolVar(&opts.keepNL, "keep-newline", false, "keep the trailing newline of standard input")
	return cmd
}

func (o *matchOptions) report(cmd *cobra.Command, matched bool) error {
	if !o.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), matched)
	}
	if !matched {
		return &exitError{code: exitNoMatch}
	}
	return nil
}

// chompReader hides a single '\n' right before EOF. It reads one rune
// ahead of its caller.
type chompReader struct {
	r      io.RuneReader
	primed bool
	next   rune
	size   int
	err    error
}

func (c *chompReader) advance() {
	c.next, c.size, c.err = c.r.ReadRune()
}

func (c *chompReader) ReadRune() (rune, int, error) {
	if !c.primed {
		c.advance()
		c.primed = true
	}
	if c.err != nil {
		return 0, 0, c.err
	}

	r, size := c.next, c.size
	c.advance()
	if r == '\n' && errors.Is(c.err, io.EOF) {
		return 0, 0, io.EOF
	}
	return r, size, nil
}
