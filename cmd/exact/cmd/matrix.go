// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/expr"
	"github.com/katalvlaran/exact/linear"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix FILE NAME",
		Short: "Print the determinant and transpose of a document matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, err := doc.Matrix(args[1])
			if err != nil {
				return err
			}

			var det expr.Expr
			var tr []expr.Expr
			switch m := m.(type) {
			case linear.Mat2:
				t := m.Transpose()
				det, tr = m.Det(), t[:]
			case linear.Mat3:
				t := m.Transpose()
				det, tr = m.Det(), t[:]
			case linear.Mat4:
				t := m.Transpose()
				det, tr = m.Det(), t[:]
			}
			a.logger.Debug("matrix", "name", args[1], "elements", len(tr), "det_size", det.Size())

			out := codec.NewDocument()
			out.PutScalar("det", det)
			if err := out.PutMatrix("transpose", tr...); err != nil {
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
