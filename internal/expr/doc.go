// Package expr builds deferred computation trees for field-like operands.
//
// Client code writes ordinary-looking algebra (Add, Mul, Dot, Sqrt, ...)
// over values that may or may not already be lazy; instead of computing,
// each call selects a construction rule and returns a new immutable
// Operand. The resulting tree is consumed by an external materializer
// that specializes it against a concrete evaluation context.
//
// This package is the foundational layer: it imports nothing internal,
// and every other internal package may import it.
//
// Key design constraints:
//   - Operand is a sealed tagged variant: Node, Leaf, Null. Nothing else
//     implements it.
//   - Rule dispatch is an explicit type-discriminated branch per operator,
//     with the null-sentinel cases listed textually before the generic
//     fallback, so priority is visible in code.
//   - Construction never inspects or evaluates wrapped raw values. The
//     single construction-time failure is division by the null sentinel.
//   - Trees are immutable after construction and safe for concurrent
//     reads; children may be shared between parents.
package expr
