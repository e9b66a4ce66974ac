// Package exact is a small library of exact scalar expressions and the
// fixed-size linear algebra built on top of them.
//
// 🚀 What is exact?
//
//	Arithmetic that builds a tree instead of rounding at every step:
//		• Scalars: expr.Expr, an immutable tree of integer leaves and
//		  + - * / % ^ nodes, evaluated to float64 only when asked
//		• Floats in: rational conversion by a fixed denominator and GCD
//		  reduction, so 0.1 becomes (1 / 10) and 3.2f becomes (16 / 5)
//		• Vectors: linear.Vec2, Vec3, Vec4 with dot, norm, normalize, cross
//		• Matrices: linear.Mat2, Mat3, Mat4 (row-major) with products,
//		  transpose and determinant
//		• Documents: codec reads and writes named scalars, vectors and
//		  matrices as JSON, YAML or TOML
//
// ✨ Why exact?
//
//   - Deferred rounding: chained operations round once, at Evaluate
//   - Deterministic trees: only literal identities (x*1, x*0, x/1, x^0, x^1, 0^x)
//     are folded, so the shape of a result is predictable
//   - Semantic equality: Equal compares evaluated values, Identical compares shape
//
// Packages:
//
//	expr/          : the expression tree, conversion, evaluation, encoding
//	linear/        : Vec2/3/4 and Mat2/3/4 over expr.Expr
//	codec/         : JSON / YAML / TOML documents of named entries
//	cmd/exact/     : command-line front end (convert, eval, vector, matrix)
//
// Quick example:
//
//	a := expr.Must(0.1)
//	s := a.Add(a).Add(a)   // (((1 / 10) + (1 / 10)) + (1 / 10))
//	s.Evaluate()           // 0.30000000000000004
//	s.Equal(expr.Must(0.3)) // false: values differ after rounding
//
//	go get github.com/katalvlaran/exact
package exact
