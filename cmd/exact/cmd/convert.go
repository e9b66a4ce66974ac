// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/expr"
)

func newConvertCmd(a *app) *cobra.Command {
	var bits int
	c := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Convert float literals to rational expression trees",
		Example: `  exact convert 3.2 0.1 -- -0.25
  exact convert --bits 32 3.2
  exact convert -o json 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = a.cfg.FloatBits
			}
			if bits != 32 && bits != 64 {
				return fmt.Errorf("--bits must be 32 or 64, got %d", bits)
			}

			doc := codec.NewDocument()
			exprs := make([]expr.Expr, len(args))
			for i, arg := range args {
				e, err := convertLiteral(arg, bits)
				if err != nil {
					return err
				}
				a.logger.Debug("converted", "input", arg, "bits", bits, "depth", e.Depth())
				exprs[i] = e
				doc.PutScalar(arg, e)
			}

			w := cmd.OutOrStdout()
			if wrote, err := a.writeDocument(w, doc); wrote || err != nil {
				return err
			}
			for i, arg := range args {
				fmt.Fprintf(w, "%s = %s = %s\n", arg, exprs[i], a.formatValue(exprs[i].Evaluate()))
			}
			return nil
		},
	}
	c.Flags().IntVar(&bits, "bits", 64, "float width used to parse inputs: 32 or 64")
	return c
}

// convertLiteral parses s at the given float width and converts it.
func convertLiteral(s string, bits int) (expr.Expr, error) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return expr.Expr{}, fmt.Errorf("parse %q: %w", s, err)
	}
	var e expr.Expr
	if bits == 32 {
		e, err = expr.FromFloat32(float32(f))
	} else {
		e, err = expr.FromFloat64(f)
	}
	if err != nil {
		return expr.Expr{}, fmt.Errorf("convert %q: %w", s, err)
	}
	return e, nil
}
