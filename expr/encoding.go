// SPDX-License-Identifier: MIT
// Package: expr
//
// Purpose:
//   - Structural (de)serialization of Expr mirroring the tagged variants:
//     {"Value": 3} for a literal, {"Add": [<lhs>, <rhs>]} for a node.
//     Tags are the Op names: Value, Add, Sub, Mul, Div, Rem, Exp.
//   - Decoding rebuilds the tree exactly; no canonicalization is applied, so
//     Encode(Decode(x)) is Identical to x.
//
// Formats:
//   - JSON via encoding/json (MarshalJSON / UnmarshalJSON).
//   - YAML via gopkg.in/yaml.v3 (MarshalYAML / UnmarshalYAML).
//   - TOML via github.com/BurntSushi/toml (UnmarshalTOML); encoders that do
//     not understand custom marshalers can use Tagged/FromTagged.

package expr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// opByTag maps serialization tags back to their Op.
var opByTag = func() map[string]Op {
	m := make(map[string]Op, len(opInfo))
	for op := range opInfo {
		m[opInfo[op].tag] = Op(op)
	}
	return m
}()

// Tagged returns e as nested generic values: map[string]any{"Value": int64}
// for literals and map[string]any{tag: []any{lhs, rhs}} for nodes.
func (e Expr) Tagged() map[string]any {
	if e.op == OpValue {
		return map[string]any{OpValue.String(): e.val}
	}
	return map[string]any{e.op.String(): []any{e.lhs.Tagged(), e.rhs.Tagged()}}
}

// FromTagged rebuilds an Expr from the generic form produced by Tagged or
// by a JSON/YAML/TOML decoder targeting interface values.
// Returns ErrMalformed on any shape violation.
func FromTagged(v any) (Expr, error) {
	var m map[string]any
	switch t := v.(type) {
	case map[string]any:
		m = t
	case Expr:
		return t, nil
	default:
		return Expr{}, malformedf("expected single-key table, got %T", v)
	}
	if len(m) != 1 {
		return Expr{}, malformedf("expected exactly one tag, got %d", len(m))
	}
	for tag, body := range m {
		op, ok := opByTag[tag]
		if !ok {
			return Expr{}, malformedf("unknown tag %q", tag)
		}
		if op == OpValue {
			n, err := literalOf(body)
			if err != nil {
				return Expr{}, err
			}
			return Int(n), nil
		}
		kids, err := pairOf(body)
		if err != nil {
			return Expr{}, fmt.Errorf("%s: %w", tag, err)
		}
		l, err := FromTagged(kids[0])
		if err != nil {
			return Expr{}, fmt.Errorf("%s[0]: %w", tag, err)
		}
		r, err := FromTagged(kids[1])
		if err != nil {
			return Expr{}, fmt.Errorf("%s[1]: %w", tag, err)
		}
		return node(op, l, r), nil
	}
	panic("unreachable")
}

// pairOf accepts the slice shapes decoders produce for a two-element array.
func pairOf(v any) ([2]any, error) {
	switch t := v.(type) {
	case []any:
		if len(t) == 2 {
			return [2]any{t[0], t[1]}, nil
		}
		return [2]any{}, malformedf("expected 2 operands, got %d", len(t))
	case []map[string]any: // TOML arrays of tables
		if len(t) == 2 {
			return [2]any{t[0], t[1]}, nil
		}
		return [2]any{}, malformedf("expected 2 operands, got %d", len(t))
	}
	return [2]any{}, malformedf("expected operand array, got %T", v)
}

// literalOf accepts the integer representations of the supported decoders.
// Floats are rejected even when integral, matching UnmarshalJSON; JSON input
// decoded into interface values needs json.Decoder.UseNumber.
func literalOf(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, ErrArithmeticOverflow
		}
		return int64(t), nil
	case json.Number:
		n, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return 0, malformedf("literal %q is not an int64", string(t))
		}
		return n, nil
	case float64:
		return 0, malformedf("literal %v is not an integer", t)
	}
	return 0, malformedf("literal of type %T", v)
}

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// MarshalJSON implements json.Marshaler.
func (e Expr) MarshalJSON() ([]byte, error) {
	return e.appendJSON(nil), nil
}

func (e Expr) appendJSON(b []byte) []byte {
	b = append(b, `{"`...)
	b = append(b, e.op.String()...)
	b = append(b, `":`...)
	if e.op == OpValue {
		b = strconv.AppendInt(b, e.val, 10)
		return append(b, '}')
	}
	b = append(b, '[')
	b = e.lhs.appendJSON(b)
	b = append(b, ',')
	b = e.rhs.appendJSON(b)
	return append(b, "]}"...)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Expr) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return malformedf("null expression")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) != 1 {
		return malformedf("expected exactly one tag, got %d", len(raw))
	}
	for tag, body := range raw {
		op, ok := opByTag[tag]
		if !ok {
			return malformedf("unknown tag %q", tag)
		}
		if op == OpValue {
			var n int64
			if err := json.Unmarshal(body, &n); err != nil {
				return malformedf("literal %s is not an int64", body)
			}
			*e = Int(n)
			return nil
		}
		var kids []Expr
		if err := json.Unmarshal(body, &kids); err != nil {
			if errors.Is(err, ErrMalformed) {
				return err
			}
			return malformedf("%s: %v", tag, err)
		}
		if len(kids) != 2 {
			return malformedf("%s: expected 2 operands, got %d", tag, len(kids))
		}
		*e = node(op, kids[0], kids[1])
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Expr) MarshalYAML() (any, error) {
	return e.Tagged(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return malformedf("line %d: expected single-key mapping", value.Line)
	}
	tag, body := value.Content[0].Value, value.Content[1]
	op, ok := opByTag[tag]
	if !ok {
		return malformedf("line %d: unknown tag %q", value.Line, tag)
	}
	if op == OpValue {
		if body.Kind != yaml.ScalarNode || body.ShortTag() != "!!int" {
			return malformedf("line %d: literal %q is not an integer", body.Line, body.Value)
		}
		var v any
		if err := body.Decode(&v); err != nil {
			return malformedf("line %d: literal %q: %v", body.Line, body.Value, err)
		}
		n, err := literalOf(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", body.Line, err)
		}
		*e = Int(n)
		return nil
	}
	if body.Kind != yaml.SequenceNode || len(body.Content) != 2 {
		return malformedf("line %d: %s expects 2 operands", body.Line, tag)
	}
	var l, r Expr
	if err := body.Content[0].Decode(&l); err != nil {
		return err
	}
	if err := body.Content[1].Decode(&r); err != nil {
		return err
	}
	*e = node(op, l, r)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (e *Expr) UnmarshalTOML(data any) error {
	x, err := FromTagged(data)
	if err != nil {
		return err
	}
	*e = x
	return nil
}
