package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperandSealed(t *testing.T) {
	// Verify all variants implement Operand (compile-time check via assignment)
	var _ Operand = &Node{}
	var _ Operand = Leaf{}
	var _ Operand = Null{}
	var _ Operand = NullOperand
}

func TestWrapRawValue(t *testing.T) {
	o := Wrap(3.5)

	leaf, ok := o.(Leaf)
	require.True(t, ok)
	assert.Equal(t, 3.5, leaf.Value())
}

func TestWrapIsIdentityOnOperands(t *testing.T) {
	leaf := Wrap(42)
	node := Mul(1.0, 2.0)

	// Wrapping an operand again must be a passthrough, never a
	// double-wrap.
	assert.Equal(t, leaf, Wrap(leaf))
	assert.Equal(t, node, Wrap(node))
	assert.Equal(t, NullOperand, Wrap(NullOperand))
}

func TestWrapTwiceCarriesSameValue(t *testing.T) {
	once := Wrap(7)
	twice := Wrap(Wrap(7))

	leaf1, ok := once.(Leaf)
	require.True(t, ok)
	leaf2, ok := twice.(Leaf)
	require.True(t, ok)
	assert.Equal(t, leaf1.Value(), leaf2.Value())
}

func TestNodeShapePreservesOperandOrder(t *testing.T) {
	a := Wrap("a")
	b := Wrap("b")

	o := Mul(a, b)

	n, ok := o.(*Node)
	require.True(t, ok)
	assert.Equal(t, OpMul, n.Func().Name)
	assert.Equal(t, KindDirect, n.Func().Kind)
	// Storage is not commutative even though * evaluates commutatively.
	require.Equal(t, 2, n.Arity())
	assert.Equal(t, []Operand{a, b}, n.Operands())
}

func TestNodeOperandsReturnsCopy(t *testing.T) {
	n := Mul(Wrap(1), Wrap(2)).(*Node)

	children := n.Operands()
	children[0] = NullOperand

	assert.Equal(t, Wrap(1), n.Operands()[0])
}

func TestBinaryConstructorsWrapRawOperands(t *testing.T) {
	n, ok := Add(1.0, Wrap(2.0)).(*Node)
	require.True(t, ok)

	for _, c := range n.Operands() {
		_, isLeaf := c.(Leaf)
		assert.True(t, isLeaf, "raw values must be wrapped before storage")
	}
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(NullOperand))
	assert.False(t, IsNull(Wrap(0.0)))
	assert.False(t, IsNull(Mul(1.0, 2.0)))
}
