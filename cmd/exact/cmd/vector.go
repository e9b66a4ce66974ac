// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/expr"
	"github.com/katalvlaran/exact/linear"
)

func newVectorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vector FILE NAME",
		Short: "Print the norm and unit vector of a document vector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			v, err := doc.Vector(args[1])
			if err != nil {
				return err
			}

			var norm expr.Expr
			var unit []expr.Expr
			switch v := v.(type) {
			case linear.Vec2:
				n := v.Normalize()
				norm, unit = v.Norm(), n[:]
			case linear.Vec3:
				n := v.Normalize()
				norm, unit = v.Norm(), n[:]
			case linear.Vec4:
				n := v.Normalize()
				norm, unit = v.Norm(), n[:]
			}
			a.logger.Debug("vector", "name", args[1], "dim", len(unit), "finite", norm.IsFinite())

			out := codec.NewDocument()
			out.PutScalar("norm", norm)
			if err := out.PutVector("unit", unit...); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if wrote, err := a.writeDocument(w, out); wrote || err != nil {
				return err
			}
			return a.printDocument(w, out)
		},
	}
}
