// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Codec. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper that applies defaults first.
package codec

import "log/slog"

// ---------- Defaults ----------

const (
	// DefaultMaxDepth bounds the depth of every decoded expression.
	// Zero disables the check.
	DefaultMaxDepth = 512

	// DefaultIndent is the indentation width used by JSON and YAML encoders.
	DefaultIndent = 2
)

// ---------- Internal panic messages ----------

const (
	panicMaxDepthInvalid = "codec: WithMaxDepth: depth must be non-negative"
	panicIndentInvalid   = "codec: WithIndent: indent must be in [0, 8]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger   *slog.Logger
	maxDepth int // >= 0; DefaultMaxDepth
	indent   int // DefaultIndent
}

// WithLogger sets the structured logger used for debug output.
// A nil logger keeps the default (slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDepth limits the depth of decoded expressions; deeper trees fail
// with ErrTooDeep. Zero disables the limit.
// Panics if depth < 0.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxDepthInvalid)
	}
	return func(o *Options) { o.maxDepth = depth }
}

// WithIndent sets the indentation width for JSON and YAML output.
// Zero produces compact JSON. Panics outside [0, 8].
func WithIndent(n int) Option {
	if n < 0 || n > 8 {
		panic(panicIndentInvalid)
	}
	return func(o *Options) { o.indent = n }
}

func defaultOptions() Options {
	return Options{
		logger:   slog.Default(),
		maxDepth: DefaultMaxDepth,
		indent:   DefaultIndent,
	}
}

// gatherOptions applies user options over the defaults, left to right.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
