// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/exact/expr"
)

// Format names a document serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// as an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath resolves the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Codec encodes and decodes Documents. The zero value is not usable; call New.
// A Codec holds no mutable state and may be shared between goroutines.
type Codec struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Codec with the given options.
func New(opts ...Option) *Codec {
	o := gatherOptions(opts...)
	return &Codec{opts: o, logger: o.logger}
}

// Encode writes doc to w in the given format.
func (c *Codec) Encode(w io.Writer, format Format, doc *Document) error {
	if doc == nil {
		doc = NewDocument()
	}
	if err := doc.validate(0); err != nil {
		return codecErrorf("Encode", err)
	}
	c.logger.Debug("encoding document",
		"format", string(format),
		"scalars", len(doc.Scalars),
		"vectors", len(doc.Vectors),
		"matrices", len(doc.Matrices))

	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if c.opts.indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", c.opts.indent))
		}
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(c.opts.indent, 2))
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc.tagged())
	default:
		return fmt.Errorf("Encode: %w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return codecErrorf("Encode "+string(format), err)
	}
	return nil
}

// Decode reads a Document from r in the given format. Expressions are
// rebuilt exactly as written. An empty input yields an empty Document.
func (c *Codec) Decode(r io.Reader, format Format) (*Document, error) {
	doc := NewDocument()
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err = dec.Decode(doc); errors.Is(err, io.EOF) {
			err = nil
		} else if err == nil {
			var extra json.RawMessage
			if derr := dec.Decode(&extra); !errors.Is(derr, io.EOF) {
				err = fmt.Errorf("%w: trailing data after document", expr.ErrMalformed)
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err = dec.Decode(doc); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatTOML:
		err = decodeTOML(r, doc)
	default:
		return nil, fmt.Errorf("Decode: %w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, codecErrorf("Decode "+string(format), err)
	}
	doc.fill()
	if err = doc.validate(c.opts.maxDepth); err != nil {
		return nil, codecErrorf("Decode "+string(format), err)
	}
	c.logger.Debug("decoded document",
		"format", string(format),
		"scalars", len(doc.Scalars),
		"vectors", len(doc.Vectors),
		"matrices", len(doc.Matrices))
	return doc, nil
}

// ReadFile decodes the file at path, choosing the format by extension.
func (c *Codec) ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErrorf("ReadFile", err)
	}
	defer f.Close()
	return c.Decode(f, format)
}

// WriteFile encodes doc into the file at path, choosing the format by
// extension. The file is created or truncated.
func (c *Codec) WriteFile(path string, doc *Document) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return codecErrorf("WriteFile", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = codecErrorf("WriteFile", cerr)
		}
	}()
	return c.Encode(f, format, doc)
}

// Encode writes doc to w with a default Codec.
func Encode(w io.Writer, format Format, doc *Document) error {
	return New().Encode(w, format, doc)
}

// Decode reads a Document from r with a default Codec.
func Decode(r io.Reader, format Format) (*Document, error) {
	return New().Decode(r, format)
}

// ---------- TOML ----------

// tagged converts doc into generic tables the TOML encoder understands.
// Empty sections are omitted.
func (d *Document) tagged() map[string]any {
	out := make(map[string]any, 3)
	if len(d.Scalars) > 0 {
		s := make(map[string]any, len(d.Scalars))
		for name, e := range d.Scalars {
			s[name] = e.Tagged()
		}
		out["scalars"] = s
	}
	if len(d.Vectors) > 0 {
		out["vectors"] = taggedLists(d.Vectors)
	}
	if len(d.Matrices) > 0 {
		out["matrices"] = taggedLists(d.Matrices)
	}
	return out
}

func taggedLists(m map[string][]expr.Expr) map[string]any {
	out := make(map[string]any, len(m))
	for name, list := range m {
		items := make([]map[string]any, len(list))
		for i, e := range list {
			items[i] = e.Tagged()
		}
		out[name] = items
	}
	return out
}

// decodeTOML decodes into generic tables and rebuilds every expression with
// expr.FromTagged.
func decodeTOML(r io.Reader, doc *Document) error {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return err
	}
	for section, body := range raw {
		table, ok := body.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected table, got %T", section, body)
		}
		switch section {
		case "scalars":
			for name, v := range table {
				e, err := expr.FromTagged(v)
				if err != nil {
					return fmt.Errorf("scalars.%s: %w", name, err)
				}
				doc.Scalars[name] = e
			}
		case "vectors", "matrices":
			dst := doc.Vectors
			if section == "matrices" {
				dst = doc.Matrices
			}
			for name, v := range table {
				list, err := exprList(v)
				if err != nil {
					return fmt.Errorf("%s.%s: %w", section, name, err)
				}
				dst[name] = list
			}
		default:
			return fmt.Errorf("unknown section %q", section)
		}
	}
	return nil
}

// exprList accepts both inline arrays ([]any) and arrays of tables
// ([]map[string]any).
func exprList(v any) ([]expr.Expr, error) {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []map[string]any:
		items = make([]any, len(t))
		for i := range t {
			items[i] = t[i]
		}
	default:
		return nil, fmt.Errorf("%w: expected array, got %T", expr.ErrMalformed, v)
	}
	out := make([]expr.Expr, len(items))
	for i, it := range items {
		e, err := expr.FromTagged(it)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

// fill replaces nil sections left by decoders with empty maps.
func (d *Document) fill() {
	if d.Scalars == nil {
		d.Scalars = make(map[string]expr.Expr)
	}
	if d.Vectors == nil {
		d.Vectors = make(map[string][]expr.Expr)
	}
	if d.Matrices == nil {
		d.Matrices = make(map[string][]expr.Expr)
	}
}
