package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinfer/regexlite/internal/lite"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN...",
		Short: "Validate patterns",
		Long: `Parses each PATTERN and prints "ok" or "invalid" with the reason.
Exits 2 if any pattern is malformed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			invalid := 0
			for _, src := range args {
				p, err := lite.Parse(src)
				if err != nil {
					invalid++
					fmt.Fprintf(w, "%q: invalid: %v\n", src, err)
					continue
				}
				fmt.Fprintf(w, "%q: ok\n", src)
				a.logger.Debug("pattern parsed",
					"pattern", src,
					"atoms", p.Len(),
					"min_len", p.MinLen(),
					"required_literal", p.RequiredLiteral(),
				)
			}
			if invalid > 0 {
				return &exitError{code: exitTrouble, err: fmt.Errorf("%d of %d patterns invalid", invalid, len(args))}
			}
			return nil
		},
	}
}
