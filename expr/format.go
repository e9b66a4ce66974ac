// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"strings"
)

// String renders e with every binary operation fully parenthesized,
// e.g. "((1 + 2) * (3 / 4))". Literals print as bare integers.
// The output is for humans; nothing parses it back.
// Complexity: O(n).
func (e Expr) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e Expr) writeTo(sb *strings.Builder) {
	if e.op == OpValue {
		sb.WriteString(strconv.FormatInt(e.val, 10))
		return
	}
	sb.WriteByte('(')
	e.lhs.writeTo(sb)
	sb.WriteByte(' ')
	sb.WriteString(e.op.Symbol())
	sb.WriteByte(' ')
	e.rhs.writeTo(sb)
	sb.WriteByte(')')
}
