package expr

// Operator names. Node functions and the rule table refer to operators by
// these names; materializers map them back to numeric kernels.
const (
	OpMul       = "mul"
	OpDiv       = "div"
	OpAdd       = "add"
	OpSub       = "sub"
	OpMax       = "max"
	OpMin       = "min"
	OpDot       = "dot"
	OpPos       = "pos"
	OpNeg       = "neg"
	OpTranspose = "transpose"
	OpTrace     = "tr"
	OpSqrt      = "sqrt"
	OpAbs       = "abs"
	OpTan       = "tan"
	OpSin       = "sin"
	OpCos       = "cos"
	OpTanh      = "tanh"
	OpSinh      = "sinh"
	OpCosh      = "cosh"
	OpAtan      = "atan"
	OpAsin      = "asin"
	OpAcos      = "acos"
	OpZero      = "zero"
)

// NullClass categorizes how a binary operator interacts with the null
// sentinel.
type NullClass string

const (
	// ClassIdentity: the sentinel is the operator's neutral element.
	// x∘null = x, null∘x = unary(x), null∘null = null.
	ClassIdentity NullClass = "identity"

	// ClassAbsorbing: any application touching the sentinel collapses to
	// the sentinel without building a node.
	ClassAbsorbing NullClass = "absorbing"

	// ClassStrictDivide: the sentinel propagates through the numerator,
	// but dividing a non-sentinel by the sentinel is a construction-time
	// error.
	ClassStrictDivide NullClass = "strict-divide"

	// ClassNone: no sentinel override; the generic rule applies and the
	// sentinel is stored as an ordinary child.
	ClassNone NullClass = "none"
)

// OpSpec describes one supported operator: its name, arity, and sentinel
// behavior. The rule implementations and the exhaustiveness tests iterate
// this table; adding an operator means adding a row here.
type OpSpec struct {
	Name  string
	Arity int
	Class NullClass
}

// BinaryOps is the supported binary operator set in declaration order.
var BinaryOps = []OpSpec{
	{Name: OpMul, Arity: 2, Class: ClassAbsorbing},
	{Name: OpDiv, Arity: 2, Class: ClassStrictDivide},
	{Name: OpAdd, Arity: 2, Class: ClassIdentity},
	{Name: OpSub, Arity: 2, Class: ClassIdentity},
	{Name: OpMax, Arity: 2, Class: ClassNone},
	{Name: OpMin, Arity: 2, Class: ClassNone},
	{Name: OpDot, Arity: 2, Class: ClassAbsorbing},
}

// UnaryOps is the supported unary operator set in declaration order.
// Every unary operator absorbs the sentinel: f(null) = null.
var UnaryOps = []OpSpec{
	{Name: OpPos, Arity: 1, Class: ClassAbsorbing},
	{Name: OpNeg, Arity: 1, Class: ClassAbsorbing},
	{Name: OpTranspose, Arity: 1, Class: ClassAbsorbing},
	{Name: OpTrace, Arity: 1, Class: ClassAbsorbing},
	{Name: OpSqrt, Arity: 1, Class: ClassAbsorbing},
	{Name: OpAbs, Arity: 1, Class: ClassAbsorbing},
	{Name: OpTan, Arity: 1, Class: ClassAbsorbing},
	{Name: OpSin, Arity: 1, Class: ClassAbsorbing},
	{Name: OpCos, Arity: 1, Class: ClassAbsorbing},
	{Name: OpTanh, Arity: 1, Class: ClassAbsorbing},
	{Name: OpSinh, Arity: 1, Class: ClassAbsorbing},
	{Name: OpCosh, Arity: 1, Class: ClassAbsorbing},
	{Name: OpAtan, Arity: 1, Class: ClassAbsorbing},
	{Name: OpAsin, Arity: 1, Class: ClassAbsorbing},
	{Name: OpAcos, Arity: 1, Class: ClassAbsorbing},
	{Name: OpZero, Arity: 1, Class: ClassAbsorbing},
}

var opIndex = buildOpIndex()

func buildOpIndex() map[string]OpSpec {
	idx := make(map[string]OpSpec, len(BinaryOps)+len(UnaryOps))
	for _, spec := range BinaryOps {
		idx[spec.Name] = spec
	}
	for _, spec := range UnaryOps {
		idx[spec.Name] = spec
	}
	return idx
}

// LookupOp returns the table entry for an operator name.
func LookupOp(name string) (OpSpec, bool) {
	spec, ok := opIndex[name]
	return spec, ok
}
