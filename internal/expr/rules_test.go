package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nonNullOperands returns representative non-sentinel operands of every
// kind: raw-wrapped scalar, symbol leaf, and an interior node.
func nonNullOperands() map[string]Operand {
	return map[string]Operand{
		"leaf-number": Wrap(3.0),
		"leaf-symbol": Wrap("u"),
		"node":        Mul(Wrap(2.0), Wrap("v")),
	}
}

func TestAddNullIdentity(t *testing.T) {
	for name, a := range nonNullOperands() {
		t.Run(name, func(t *testing.T) {
			// x + null = x, unchanged
			assert.Equal(t, a, Add(a, NullOperand))

			// null + x = +x (unary plus applied, not x verbatim)
			o := Add(NullOperand, a)
			n, ok := o.(*Node)
			require.True(t, ok)
			assert.Equal(t, OpPos, n.Func().Name)
			assert.Equal(t, []Operand{a}, n.Operands())
		})
	}

	assert.Equal(t, Operand(NullOperand), Add(NullOperand, NullOperand))
}

func TestSubNullIdentity(t *testing.T) {
	for name, a := range nonNullOperands() {
		t.Run(name, func(t *testing.T) {
			// x - null = x, unchanged
			assert.Equal(t, a, Sub(a, NullOperand))

			// null - x = -x
			o := Sub(NullOperand, a)
			n, ok := o.(*Node)
			require.True(t, ok)
			assert.Equal(t, OpNeg, n.Func().Name)
			assert.Equal(t, []Operand{a}, n.Operands())
		})
	}

	assert.Equal(t, Operand(NullOperand), Sub(NullOperand, NullOperand))
}

func TestMulAndDotNullAbsorption(t *testing.T) {
	ops := map[string]func(a, b any) Operand{
		OpMul: Mul,
		OpDot: Dot,
	}
	for opName, build := range ops {
		t.Run(opName, func(t *testing.T) {
			for name, a := range nonNullOperands() {
				t.Run(name, func(t *testing.T) {
					assert.Equal(t, Operand(NullOperand), build(a, NullOperand))
					assert.Equal(t, Operand(NullOperand), build(NullOperand, a))
				})
			}
			assert.Equal(t, Operand(NullOperand), build(NullOperand, NullOperand))
		})
	}
}

func TestDivNullAsymmetry(t *testing.T) {
	for name, a := range nonNullOperands() {
		t.Run(name, func(t *testing.T) {
			// x / null must fail at construction time.
			o, err := Div(a, NullOperand)
			require.Error(t, err)
			assert.Nil(t, o)
			assert.True(t, IsDivisionByNull(err))

			// null / x propagates the sentinel.
			o, err = Div(NullOperand, a)
			require.NoError(t, err)
			assert.Equal(t, Operand(NullOperand), o)
		})
	}

	// null / null is checked before the strict rule and does not raise.
	o, err := Div(NullOperand, NullOperand)
	require.NoError(t, err)
	assert.Equal(t, Operand(NullOperand), o)
}

func TestDivBuildsNodeForNonNullOperands(t *testing.T) {
	o, err := Div(Wrap(1.0), Wrap(2.0))
	require.NoError(t, err)

	n, ok := o.(*Node)
	require.True(t, ok)
	assert.Equal(t, OpDiv, n.Func().Name)
}

func TestUnaryNullAbsorption(t *testing.T) {
	// Every unary operator in the table absorbs the sentinel.
	for _, spec := range UnaryOps {
		t.Run(spec.Name, func(t *testing.T) {
			o, err := Apply(spec.Name, NullOperand)
			require.NoError(t, err)
			assert.Equal(t, Operand(NullOperand), o)
		})
	}
}

func TestUnaryBuildsNodeForNonNullOperand(t *testing.T) {
	a := Wrap("u")
	for _, spec := range UnaryOps {
		t.Run(spec.Name, func(t *testing.T) {
			o, err := Apply(spec.Name, a)
			require.NoError(t, err)

			n, ok := o.(*Node)
			require.True(t, ok)
			assert.Equal(t, spec.Name, n.Func().Name)
			assert.Equal(t, []Operand{a}, n.Operands())
		})
	}
}

func TestMaxMinHaveNoNullOverride(t *testing.T) {
	// Max and Min are ClassNone: the sentinel is stored as an ordinary
	// child and left to the materializer.
	for _, build := range []func(a, b any) Operand{Max, Min} {
		o := build(Wrap(1.0), NullOperand)
		n, ok := o.(*Node)
		require.True(t, ok)
		assert.Equal(t, Operand(NullOperand), n.Operands()[1])
	}
}

func TestOpTableClasses(t *testing.T) {
	classes := map[string]NullClass{}
	for _, spec := range BinaryOps {
		classes[spec.Name] = spec.Class
	}

	assert.Equal(t, ClassIdentity, classes[OpAdd])
	assert.Equal(t, ClassIdentity, classes[OpSub])
	assert.Equal(t, ClassAbsorbing, classes[OpMul])
	assert.Equal(t, ClassAbsorbing, classes[OpDot])
	assert.Equal(t, ClassStrictDivide, classes[OpDiv])
	assert.Equal(t, ClassNone, classes[OpMax])
	assert.Equal(t, ClassNone, classes[OpMin])
}

func TestApplyCoversWholeTable(t *testing.T) {
	a, b := Wrap(1.0), Wrap(2.0)
	for _, spec := range BinaryOps {
		o, err := Apply(spec.Name, a, b)
		require.NoError(t, err, spec.Name)
		n, ok := o.(*Node)
		require.True(t, ok, spec.Name)
		assert.Equal(t, spec.Name, n.Func().Name)
	}
	for _, spec := range UnaryOps {
		o, err := Apply(spec.Name, a)
		require.NoError(t, err, spec.Name)
		n, ok := o.(*Node)
		require.True(t, ok, spec.Name)
		assert.Equal(t, spec.Name, n.Func().Name)
	}
}

func TestApplyRejectsUnknownOperator(t *testing.T) {
	o, err := Apply("cross", Wrap(1.0), Wrap(2.0))
	require.Error(t, err)
	assert.Nil(t, o)

	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrCodeUnknownOperator, be.Code)
}

func TestApplyRejectsBadArity(t *testing.T) {
	o, err := Apply(OpSin, Wrap(1.0), Wrap(2.0))
	require.Error(t, err)
	assert.Nil(t, o)

	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrCodeBadArity, be.Code)
}

func TestConstructionNeverInspectsRawValues(t *testing.T) {
	// A payload no materializer understands must still build fine;
	// type/shape errors surface only at evaluation time.
	type opaque struct{ blob []byte }

	o := Mul(opaque{blob: []byte{1}}, Wrap("u"))
	n, ok := o.(*Node)
	require.True(t, ok)

	leaf, ok := n.Operands()[0].(Leaf)
	require.True(t, ok)
	assert.IsType(t, opaque{}, leaf.Value())
}

func TestShortCircuitElidesSubtreeAtConstruction(t *testing.T) {
	// (x + null) * y collapses the +null term while building; the result
	// has the exact shape of x * y.
	y := Wrap("y")
	o := Mul(Add(3.0, NullOperand), y)

	n, ok := o.(*Node)
	require.True(t, ok)
	assert.Equal(t, OpMul, n.Func().Name)
	require.Equal(t, 2, n.Arity())
	assert.Equal(t, Wrap(3.0), n.Operands()[0])
	assert.Equal(t, y, n.Operands()[1])
}

func TestSentinelPropagatesWithoutBuildingDenominator(t *testing.T) {
	// null / (a - a) is null regardless of the denominator, which is
	// never evaluated.
	a := Wrap("a")
	o, err := Div(NullOperand, Sub(a, a))
	require.NoError(t, err)
	assert.Equal(t, Operand(NullOperand), o)
}
