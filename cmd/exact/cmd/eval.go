// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/linear"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate every scalar, vector and matrix of a document",
		Long: `eval reads a JSON, YAML or TOML document (format chosen by extension)
and prints each entry with its evaluated value. With -o json|yaml|toml the
document is re-encoded in that format instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if wrote, err := a.writeDocument(w, doc); wrote || err != nil {
				return err
			}
			return a.printDocument(w, doc)
		},
	}
}

func (a *app) printDocument(w io.Writer, doc *codec.Document) error {
	for _, name := range doc.Names("scalars") {
		e := doc.Scalars[name]
		fmt.Fprintf(w, "%s = %s = %s\n", name, e, a.formatValue(e.Evaluate()))
	}
	for _, name := range doc.Names("vectors") {
		v, err := doc.Vector(name)
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case linear.Vec2:
			f := v.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, v, a.formatValues(f[:]))
		case linear.Vec3:
			f := v.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, v, a.formatValues(f[:]))
		case linear.Vec4:
			f := v.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, v, a.formatValues(f[:]))
		}
	}
	for _, name := range doc.Names("matrices") {
		m, err := doc.Matrix(name)
		if err != nil {
			return err
		}
		switch m := m.(type) {
		case linear.Mat2:
			f := m.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, m, a.formatValues(f[:]))
		case linear.Mat3:
			f := m.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, m, a.formatValues(f[:]))
		case linear.Mat4:
			f := m.Evaluate()
			fmt.Fprintf(w, "%s = %s = %s\n", name, m, a.formatValues(f[:]))
		}
	}
	return nil
}
