package expr

// Operand is the sealed interface over everything that can participate in
// a deferred computation tree. Only Node, Leaf, and Null implement it.
type Operand interface {
	operand() // Sealed - only these types implement it
}

// FnKind discriminates what a Node's stored function means to a
// materializer.
type FnKind string

const (
	// KindDirect applies the named operator to the children's values.
	KindDirect FnKind = "direct"

	// KindBroadcast applies the named operator elementwise across the
	// children's values (an elementwise-lifted operator). Always a single
	// node regardless of element count; expansion is the materializer's
	// job at evaluation time.
	KindBroadcast FnKind = "broadcast"

	// KindCompose applies a captured plain Go function to the evaluated
	// argument tuple.
	KindCompose FnKind = "compose"

	// KindTuple groups its children's values into one tuple value.
	KindTuple FnKind = "tuple"
)

// Fn is the function reference stored on a Node.
type Fn struct {
	// Name is the operator name from the operator table, or the declared
	// name of a composed function.
	Name string

	// Kind tells the materializer how to apply Name (or Call).
	Kind FnKind

	// Call holds the captured Go function for KindCompose nodes. It is
	// opaque to this package; the materializer type-asserts it.
	Call any
}

// Node is an interior tree element: a function reference plus an ordered
// sequence of child operands. Order is significant - children are stored
// exactly as given even for mathematically commutative operators. A Node
// is never mutated after construction.
type Node struct {
	fn       Fn
	children []Operand
}

func (*Node) operand() {}

// Func returns the stored function reference.
func (n *Node) Func() Fn { return n.fn }

// Operands returns the ordered children. The slice is a copy; callers may
// modify it without affecting the node.
func (n *Node) Operands() []Operand {
	out := make([]Operand, len(n.children))
	copy(out, n.children)
	return out
}

// Arity returns the number of children.
func (n *Node) Arity() int { return len(n.children) }

func newNode(fn Fn, children ...Operand) *Node {
	return &Node{fn: fn, children: children}
}

// Leaf promotes a raw value into the operand hierarchy. It carries exactly
// one value of arbitrary type and never inspects it.
type Leaf struct {
	value any
}

func (Leaf) operand() {}

// Value returns the wrapped raw value.
func (l Leaf) Value() any { return l.value }

// Null is the stateless sentinel operand: additive identity,
// multiplicative absorber, and division special-case. It carries no
// payload; materializers treat it as "contributes nothing".
type Null struct{}

func (Null) operand() {}

// NullOperand is the canonical sentinel value. All construction rules
// return this value rather than allocating fresh Null instances.
var NullOperand = Null{}

// Wrap promotes a raw value into the hierarchy. Values that already
// satisfy Operand pass through unchanged, so double-wrapping is
// impossible.
func Wrap(v any) Operand {
	if o, ok := v.(Operand); ok {
		return o
	}
	return Leaf{value: v}
}

// IsNull reports whether o is the null sentinel.
func IsNull(o Operand) bool {
	_, ok := o.(Null)
	return ok
}
