package canon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

func TestMarshalNull(t *testing.T) {
	data, err := Marshal(expr.NullOperand)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"null"}`, string(data))
}

func TestMarshalLeaf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"float", 3.5, `{"kind":"leaf","value":3.5}`},
		{"int", 7, `{"kind":"leaf","value":7}`},
		{"string", "u", `{"kind":"leaf","value":"u"}`},
		{"bool", true, `{"kind":"leaf","value":true}`},
		{"vector", []float64{1, 2.5}, `{"kind":"leaf","value":[1,2.5]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(expr.Wrap(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMarshalNode(t *testing.T) {
	o := expr.Mul(expr.Wrap("x"), expr.Wrap("y"))

	data, err := Marshal(o)
	require.NoError(t, err)
	assert.Equal(t,
		`{"children":[{"kind":"leaf","value":"x"},{"kind":"leaf","value":"y"}],"fn":{"kind":"direct","name":"mul"},"kind":"node"}`,
		string(data))
}

func TestMarshalIsDeterministic(t *testing.T) {
	o := expr.Add(expr.Mul(expr.Wrap("a"), 2.0), expr.Sqrt(expr.Wrap("b")))

	first, err := Marshal(o)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(o)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestMarshalNFCNormalizesStrings(t *testing.T) {
	// "é" composed (U+00E9) vs decomposed (e + U+0301) must serialize
	// identically.
	composed := expr.Wrap("café")
	decomposed := expr.Wrap("café")

	a, err := Marshal(composed)
	require.NoError(t, err)
	b, err := Marshal(decomposed)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestMarshalNoHTMLEscaping(t *testing.T) {
	data, err := Marshal(expr.Wrap("a<b&c>d"))
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"leaf","value":"a<b&c>d"}`, string(data))
}

func TestMarshalRejectsUnsupportedPayload(t *testing.T) {
	type opaque struct{}
	_, err := Marshal(expr.Wrap(opaque{}))
	assert.Error(t, err)
}

func TestMarshalRejectsNonFiniteFloats(t *testing.T) {
	_, err := Marshal(expr.Wrap(math.Inf(1)))
	assert.Error(t, err)

	_, err = Marshal(expr.Wrap(math.NaN()))
	assert.Error(t, err)
}

func TestMarshalBroadcastNodeKind(t *testing.T) {
	o, err := expr.Broadcast(expr.OpMul, 2.0, expr.Wrap("b"))
	require.NoError(t, err)

	data, err := Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fn":{"kind":"broadcast","name":"mul"}`)
}
