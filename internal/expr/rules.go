package expr

// Construction rules.
//
// Every constructor follows the same dispatch order, written out
// explicitly so priority is visible in code rather than implied:
//
//  1. wrap raw operands (Wrap is identity on anything already lazy)
//  2. sentinel-specific overrides, null-vs-null first
//  3. generic fallback: allocate the operator node
//
// The sentinel cases must come before the generic case; they are what let
// callers skip building (and downstream consumers skip evaluating) terms
// known to vanish.

// Add builds a deferred sum.
//
// Sentinel algebra (additive identity):
//
//	null + null = null
//	x + null    = x
//	null + x    = +x (unary plus applied, not x verbatim)
func Add(a, b any) Operand {
	x, y := Wrap(a), Wrap(b)
	xn, yn := IsNull(x), IsNull(y)
	switch {
	case xn && yn:
		return NullOperand
	case yn:
		return x
	case xn:
		return Pos(y)
	}
	return newNode(Fn{Name: OpAdd, Kind: KindDirect}, x, y)
}

// Sub builds a deferred difference.
//
// Sentinel algebra (additive identity):
//
//	null - null = null
//	x - null    = x
//	null - x    = -x
func Sub(a, b any) Operand {
	x, y := Wrap(a), Wrap(b)
	xn, yn := IsNull(x), IsNull(y)
	switch {
	case xn && yn:
		return NullOperand
	case yn:
		return x
	case xn:
		return Neg(y)
	}
	return newNode(Fn{Name: OpSub, Kind: KindDirect}, x, y)
}

// Mul builds a deferred product. The sentinel absorbs: any product
// touching null is null, and no node is built.
func Mul(a, b any) Operand {
	x, y := Wrap(a), Wrap(b)
	if IsNull(x) || IsNull(y) {
		return NullOperand
	}
	return newNode(Fn{Name: OpMul, Kind: KindDirect}, x, y)
}

// Dot builds a deferred dot product. Same absorption as Mul.
func Dot(a, b any) Operand {
	x, y := Wrap(a), Wrap(b)
	if IsNull(x) || IsNull(y) {
		return NullOperand
	}
	return newNode(Fn{Name: OpDot, Kind: KindDirect}, x, y)
}

// Div builds a deferred quotient.
//
// Sentinel algebra (asymmetric, stricter than Mul):
//
//	null / null = null
//	x / null    = DivisionByNull error
//	null / x    = null
//
// The null/null case is checked before the strict rule.
func Div(a, b any) (Operand, error) {
	x, y := Wrap(a), Wrap(b)
	xn, yn := IsNull(x), IsNull(y)
	switch {
	case xn && yn:
		return NullOperand, nil
	case yn:
		return nil, NewDivisionByNullError()
	case xn:
		return NullOperand, nil
	}
	return newNode(Fn{Name: OpDiv, Kind: KindDirect}, x, y), nil
}

// Max builds a deferred elementwise maximum. Max has no sentinel
// override (ClassNone): a null operand is stored as an ordinary child and
// left to the materializer.
func Max(a, b any) Operand {
	return newNode(Fn{Name: OpMax, Kind: KindDirect}, Wrap(a), Wrap(b))
}

// Min builds a deferred elementwise minimum. Same dispatch as Max.
func Min(a, b any) Operand {
	return newNode(Fn{Name: OpMin, Kind: KindDirect}, Wrap(a), Wrap(b))
}

// unary is the shared rule for every unary operator: the sentinel absorbs
// (f(null) = null, no node built), anything else gets a node.
func unary(name string, a any) Operand {
	x := Wrap(a)
	if IsNull(x) {
		return NullOperand
	}
	return newNode(Fn{Name: name, Kind: KindDirect}, x)
}

// Pos builds a deferred unary plus.
func Pos(a any) Operand { return unary(OpPos, a) }

// Neg builds a deferred unary minus.
func Neg(a any) Operand { return unary(OpNeg, a) }

// Transpose builds a deferred transpose.
func Transpose(a any) Operand { return unary(OpTranspose, a) }

// Trace builds a deferred trace.
func Trace(a any) Operand { return unary(OpTrace, a) }

// Sqrt builds a deferred square root.
func Sqrt(a any) Operand { return unary(OpSqrt, a) }

// Abs builds a deferred absolute value.
func Abs(a any) Operand { return unary(OpAbs, a) }

// Tan builds a deferred tangent.
func Tan(a any) Operand { return unary(OpTan, a) }

// Sin builds a deferred sine.
func Sin(a any) Operand { return unary(OpSin, a) }

// Cos builds a deferred cosine.
func Cos(a any) Operand { return unary(OpCos, a) }

// Tanh builds a deferred hyperbolic tangent.
func Tanh(a any) Operand { return unary(OpTanh, a) }

// Sinh builds a deferred hyperbolic sine.
func Sinh(a any) Operand { return unary(OpSinh, a) }

// Cosh builds a deferred hyperbolic cosine.
func Cosh(a any) Operand { return unary(OpCosh, a) }

// Atan builds a deferred arctangent.
func Atan(a any) Operand { return unary(OpAtan, a) }

// Asin builds a deferred arcsine.
func Asin(a any) Operand { return unary(OpAsin, a) }

// Acos builds a deferred arccosine.
func Acos(a any) Operand { return unary(OpAcos, a) }

// Zero builds a deferred zero-of (a value shaped like its operand, filled
// with zeros; the shape semantics belong to the materializer).
func Zero(a any) Operand { return unary(OpZero, a) }

// Apply is the dynamic entry point used by front ends: it routes an
// operator name from the table to the corresponding construction rule.
// Unknown names and arity mismatches fail fast; no operand is ever
// coerced.
func Apply(name string, operands ...any) (Operand, error) {
	spec, ok := LookupOp(name)
	if !ok {
		return nil, NewUnknownOperatorError(name)
	}
	if len(operands) != spec.Arity {
		return nil, NewBadArityError(name, spec.Arity, len(operands))
	}
	if spec.Arity == 1 {
		return unary(name, operands[0]), nil
	}
	a, b := operands[0], operands[1]
	switch name {
	case OpAdd:
		return Add(a, b), nil
	case OpSub:
		return Sub(a, b), nil
	case OpMul:
		return Mul(a, b), nil
	case OpDot:
		return Dot(a, b), nil
	case OpDiv:
		return Div(a, b)
	case OpMax:
		return Max(a, b), nil
	case OpMin:
		return Min(a, b), nil
	}
	// Unreachable: every binary table entry is handled above.
	return nil, NewUnknownOperatorError(name)
}
