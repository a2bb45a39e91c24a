package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/twinfer/regexlite/internal/lite"
	"github.com/twinfer/regexlite/internal/prefilter"
)

const stdinName = "-"

type grepOptions struct {
	patterns     []string
	ignoreCase   bool
	invert       bool
	count        bool
	lineNumbers  bool
	withFilename bool
	noFilename   bool
	noPrefilter  bool
	jobs         int
}

// grepper holds what every file of one grep run shares. All of it is
// read-only once built.
type grepper struct {
	patterns     []lite.Pattern
	pf           *prefilter.Prefilter
	invert       bool
	count        bool
	lineNumbers  bool
	showNames    bool
	maxLineBytes int
}

// fileResult is the buffered output of one input.
type fileResult struct {
	out      bytes.Buffer
	selected int
}

func newGrepCmd(a *app) *cobra.Command {
	opts := &grepOptions{}

	cmd := &cobra.Command{
		Use:   "grep [flags] [PATTERN] [FILE...]",
		Short: "Print lines that fully match a pattern",
		Long: `Prints every input line that matches one of the patterns as a whole.
Patterns come from -e flags or, without any, from the first argument.
With no FILE, or when FILE is -, standard input is read.

Files are searched concurrently; output keeps argument order. Exits 0 when
a line was selected, 1 when none was, and 2 on an error or malformed pattern.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := opts.patterns
			if len(patterns) == 0 {
				if len(args) == 0 {
					return &exitError{code: exitTrouble, err: errors.New("no pattern given")}
				}
				patterns, args = args[:1], args[1:]
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}

			g, err := a.newGrepper(cmd, opts, patterns, len(args))
			if err != nil {
				return err
			}

			jobs := a.cfg.Grep.Jobs
			if cmd.Flags().Changed("jobs") {
				jobs = opts.jobs
			}
			if jobs < 1 {
				return &exitError{code: exitTrouble, err: fmt.Errorf("--jobs must be at least 1, got %d", jobs)}
			}

			results, err := g.run(cmd.Context(), args, cmd.InOrStdin(), jobs)
			if err != nil {
				return &exitError{code: exitTrouble, err: err}
			}

			selected := 0
			w := cmd.OutOrStdout()
			for _, res := range results {
				if _, err := res.out.WriteTo(w); err != nil {
					return &exitError{code: exitTrouble, err: fmt.Errorf("writing output: %w", err)}
				}
				selected += res.selected
			}
			a.logger.Debug("grep finished", "inputs", len(args), "selected", selected)

			if selected == 0 {
				return &exitError{code: exitNoMatch}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.patterns, "regexp", "e", nil, "pattern to match; may be repeated")
	f.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "compare literals case-insensitively")
	f.BoolVarP(&opts.invert, "invert-match", "v", false, "select lines that match no pattern")
	f.BoolVarP(&opts.count, "count", "c", false, "print only a count of selected lines per input")
	f.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	f.BoolVarP(&opts.withFilename, "with-filename", "H", false, "prefix each line with its file name")
	f.BoolVarP(&opts.noFilename, "no-filename", "h", false, "never prefix lines with file names")
	f.BoolVar(&opts.noPrefilter, "no-prefilter", false, "disable the required-literal prefilter")
	f.IntVarP(&opts.jobs, "jobs", "j", 4, "number of files searched concurrently")
	return cmd
}

// newGrepper parses the patterns and merges flags over the config defaults.
func (a *app) newGrepper(cmd *cobra.Command, opts *grepOptions, patterns []string, inputs int) (*grepper, error) {
	flags := cmd.Flags()
	ignoreCase := a.cfg.Grep.IgnoreCase
	if flags.Changed("ignore-case") {
		ignoreCase = opts.ignoreCase
	}
	lineNumbers := a.cfg.Grep.LineNumbers
	if flags.Changed("line-number") {
		lineNumbers = opts.lineNumbers
	}

	g := &grepper{
		patterns:     make([]lite.Pattern, 0, len(patterns)),
		invert:       opts.invert,
		count:        opts.count,
		lineNumbers:  lineNumbers,
		showNames:    (inputs > 1 || opts.withFilename) && !opts.noFilename,
		maxLineBytes: a.cfg.Grep.MaxLineBytes,
	}

	for _, src := range patterns {
		p, err := lite.Parse(src)
		if err != nil {
			return nil, &exitError{code: exitTrouble, err: fmt.Errorf("pattern %q: %w", src, err)}
		}
		if ignoreCase {
			p = p.Fold()
		}
		g.patterns = append(g.patterns, p)
	}

	if a.cfg.Grep.Prefilter && !opts.noPrefilter {
		pf, err := prefilter.New(g.patterns)
		if err != nil {
			return nil, &exitError{code: exitTrouble, err: err}
		}
		g.pf = pf
		a.logger.Debug("prefilter", "active", pf.Active(), "literals", pf.Literals())
	}
	return g, nil
}

// run searches every input concurrently, at most jobs at a time.
func (g *grepper) run(ctx context.Context, names []string, stdin io.Reader, jobs int) ([]*fileResult, error) {
	results := make([]*fileResult, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, name := range names {
		res := &fileResult{}
		results[i] = res
		eg.Go(func() error {
			if name == stdinName {
				return g.search(ctx, "(standard input)", stdin, res)
			}
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			return g.search(ctx, name, f, res)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *grepper) search(ctx context.Context, name string, r io.Reader, res *fileResult) error {
	sc := bufio.NewScanner(r)
	// The limit is the larger of max and the initial capacity.
	sc.Buffer(make([]byte, 0, min(64*1024, g.maxLineBytes)), g.maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := sc.Bytes()
		if g.selects(line) {
			res.selected++
			if !g.count {
				g.writeLine(&res.out, name, lineNo, line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if g.count {
		if g.showNames {
			res.out.WriteString(name)
			res.out.WriteByte(':')
		}
		res.out.WriteString(strconv.Itoa(res.selected))
		res.out.WriteByte('\n')
	}
	return nil
}

func (g *grepper) selects(line []byte) bool {
	return g.matchesAny(line) != g.invert
}

func (g *grepper) matchesAny(line []byte) bool {
	if !g.pf.MayMatch(line) {
		return false
	}
	for _, p := range g.patterns {
		if p.MatchBytes(line) {
			return true
		}
	}
	return false
}

func (g *grepper) writeLine(w *bytes.Buffer, name string, lineNo int, line []byte) {
	if g.showNames {
		w.WriteString(name)
		w.WriteByte(':')
	}
	if g.lineNumbers {
		w.WriteString(strconv.Itoa(lineNo))
		w.WriteByte(':')
	}
	w.Write(line)
	w.WriteByte('\n')
}
