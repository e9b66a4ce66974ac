// SPDX-License-Identifier: MIT

// Package cmd holds the cobra commands of the exact tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/internal/config"
)

// app carries state resolved once per invocation by the root pre-run hook.
type app struct {
	cfgFile string
	verbose bool
	output  string

	cfg    *config.Config
	logger *slog.Logger
	codec  *codec.Codec
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "exact",
		Short: "Exact expression trees for floats, vectors and matrices",
		Long: `exact converts floating-point numbers into exact rational expression
trees and evaluates documents of named scalars, vectors and matrices
stored as JSON, YAML or TOML.

Commands:
  convert  - float literals to rational trees
  eval     - evaluate every entry of a document
  vector   - norm and direction of a document vector
  matrix   - determinant and transpose of a document matrix
  version  - build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $EXACT_CONFIG or ./exact.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml or toml")

	root.AddCommand(
		newConvertCmd(a),
		newEvalCmd(a),
		newVectorCmd(a),
		newMatrixCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.output != "" {
		a.cfg.OutputFormat = a.output
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	a.logger = a.cfg.Logger(stderr, a.verbose)
	a.codec = codec.New(a.cfg.CodecOptions(a.logger)...)
	a.logger.Debug("configuration loaded",
		"file", a.cfgFile,
		"output", a.cfg.OutputFormat,
		"float_bits", a.cfg.FloatBits)
	return nil
}

// formatValue renders an evaluated value with the configured precision.
func (a *app) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)
}

func (a *app) formatValues(vs []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.formatValue(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// writeDocument emits doc in the configured document format. It reports
// false when the output format is text.
func (a *app) writeDocument(w io.Writer, doc *codec.Document) (bool, error) {
	if a.cfg.OutputFormat == config.OutputText {
		return false, nil
	}
	f, err := codec.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return true, err
	}
	return true, a.codec.Encode(w, f, doc)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
