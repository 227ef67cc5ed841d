package eval

import (
	"math"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// Binding maps symbol names (string leaves) to concrete values.
type Binding map[string]float64

// Result is the outcome of materializing one operand.
//
// Skip marks the null sentinel: the operand contributes nothing and
// carries no values. Otherwise Values holds one element for scalars or
// several for tuple/vector results.
type Result struct {
	Skip   bool
	Values []float64
}

func scalar(f float64) Result { return Result{Values: []float64{f}} }

var skipped = Result{Skip: true}

// Scalar returns the single value of a scalar result.
func (r Result) Scalar() (float64, bool) {
	if r.Skip || len(r.Values) != 1 {
		return 0, false
	}
	return r.Values[0], true
}

// Eval recursively materializes o against b.
//
// Leaf payloads understood here: float64/float32, signed integers,
// []float64, and string (resolved through the binding). A skipped child
// skips the enclosing application.
func Eval(o expr.Operand, b Binding) (Result, error) {
	switch v := o.(type) {
	case expr.Null:
		return skipped, nil
	case expr.Leaf:
		return evalLeaf(v, b)
	case *expr.Node:
		return evalNode(v, b)
	}
	return Result{}, newError(ErrCodeUnsupportedLeaf, "", "unknown operand type %T", o)
}

func evalLeaf(l expr.Leaf, b Binding) (Result, error) {
	switch val := l.Value().(type) {
	case float64:
		return scalar(val), nil
	case float32:
		return scalar(float64(val)), nil
	case int:
		return scalar(float64(val)), nil
	case int32:
		return scalar(float64(val)), nil
	case int64:
		return scalar(float64(val)), nil
	case []float64:
		vs := make([]float64, len(val))
		copy(vs, val)
		return Result{Values: vs}, nil
	case string:
		f, ok := b[val]
		if !ok {
			return Result{}, newError(ErrCodeUnboundSymbol, val, "no binding for symbol %q", val)
		}
		return scalar(f), nil
	}
	return Result{}, newError(ErrCodeUnsupportedLeaf, "", "cannot materialize leaf payload %T", l.Value())
}

func evalNode(n *expr.Node, b Binding) (Result, error) {
	children := n.Operands()
	results := make([]Result, len(children))
	for i, c := range children {
		r, err := Eval(c, b)
		if err != nil {
			return Result{}, err
		}
		if r.Skip {
			return skipped, nil
		}
		results[i] = r
	}

	fn := n.Func()
	switch fn.Kind {
	case expr.KindTuple:
		return evalTuple(results), nil
	case expr.KindCompose:
		return evalCompose(fn, results)
	case expr.KindBroadcast:
		return evalBroadcast(fn.Name, results)
	}
	return evalDirect(fn.Name, results)
}

func evalTuple(results []Result) Result {
	var vs []float64
	for _, r := range results {
		vs = append(vs, r.Values...)
	}
	return Result{Values: vs}
}

func evalCompose(fn expr.Fn, results []Result) (Result, error) {
	call, ok := fn.Call.(func(...float64) float64)
	if !ok {
		return Result{}, newError(ErrCodeBadFunction, fn.Name,
			"composed function must be func(...float64) float64, got %T", fn.Call)
	}
	var args []float64
	for _, r := range results {
		args = append(args, r.Values...)
	}
	return scalar(call(args...)), nil
}

func evalDirect(name string, results []Result) (Result, error) {
	spec, ok := expr.LookupOp(name)
	if !ok {
		return Result{}, newError(ErrCodeUnknownOperator, name, "operator not in table")
	}
	if len(results) != spec.Arity {
		return Result{}, newError(ErrCodeShapeMismatch, name,
			"operator takes %d operand(s), node has %d", spec.Arity, len(results))
	}
	if spec.Arity == 1 {
		return applyUnary(name, results[0])
	}
	return applyBinary(name, results[0], results[1])
}

// evalBroadcast lifts the operator elementwise: scalars extend to the
// longest operand, vectors must agree on length.
func evalBroadcast(name string, results []Result) (Result, error) {
	spec, ok := expr.LookupOp(name)
	if !ok {
		return Result{}, newError(ErrCodeUnknownOperator, name, "operator not in table")
	}
	if len(results) != spec.Arity {
		return Result{}, newError(ErrCodeShapeMismatch, name,
			"broadcast of %q takes %d operand(s), node has %d", name, spec.Arity, len(results))
	}
	width := 1
	for _, r := range results {
		if len(r.Values) == 1 {
			continue
		}
		if width != 1 && len(r.Values) != width {
			return Result{}, newError(ErrCodeShapeMismatch, name,
				"broadcast operands have lengths %d and %d", width, len(r.Values))
		}
		width = len(r.Values)
	}
	out := make([]float64, width)
	for i := range out {
		if spec.Arity == 1 {
			r, err := applyUnary(name, scalar(at(results[0], i)))
			if err != nil {
				return Result{}, err
			}
			out[i] = r.Values[0]
			continue
		}
		r, err := applyBinary(name, scalar(at(results[0], i)), scalar(at(results[1], i)))
		if err != nil {
			return Result{}, err
		}
		out[i] = r.Values[0]
	}
	return Result{Values: out}, nil
}

// at indexes a broadcast operand, extending scalars.
func at(r Result, i int) float64 {
	if len(r.Values) == 1 {
		return r.Values[0]
	}
	return r.Values[i]
}

var unaryKernels = map[string]func(float64) float64{
	expr.OpPos:  func(f float64) float64 { return f },
	expr.OpNeg:  func(f float64) float64 { return -f },
	expr.OpSqrt: math.Sqrt,
	expr.OpAbs:  math.Abs,
	expr.OpTan:  math.Tan,
	expr.OpSin:  math.Sin,
	expr.OpCos:  math.Cos,
	expr.OpTanh: math.Tanh,
	expr.OpSinh: math.Sinh,
	expr.OpCosh: math.Cosh,
	expr.OpAtan: math.Atan,
	expr.OpAsin: math.Asin,
	expr.OpAcos: math.Acos,
	expr.OpZero: func(float64) float64 { return 0 },
}

func applyUnary(name string, r Result) (Result, error) {
	switch name {
	case expr.OpTranspose:
		// Shape semantics belong to real materializers; on flat values
		// transpose is the identity.
		return r, nil
	case expr.OpTrace:
		sum := 0.0
		for _, f := range r.Values {
			sum += f
		}
		return scalar(sum), nil
	}
	k, ok := unaryKernels[name]
	if !ok {
		return Result{}, newError(ErrCodeUnknownOperator, name, "no unary kernel")
	}
	out := make([]float64, len(r.Values))
	for i, f := range r.Values {
		out[i] = k(f)
	}
	return Result{Values: out}, nil
}

var binaryKernels = map[string]func(a, b float64) float64{
	expr.OpMul: func(a, b float64) float64 { return a * b },
	expr.OpDiv: func(a, b float64) float64 { return a / b },
	expr.OpAdd: func(a, b float64) float64 { return a + b },
	expr.OpSub: func(a, b float64) float64 { return a - b },
	expr.OpMax: math.Max,
	expr.OpMin: math.Min,
}

func applyBinary(name string, a, b Result) (Result, error) {
	if name == expr.OpDot {
		if len(a.Values) != len(b.Values) {
			return Result{}, newError(ErrCodeShapeMismatch, name,
				"dot operands have lengths %d and %d", len(a.Values), len(b.Values))
		}
		sum := 0.0
		for i := range a.Values {
			sum += a.Values[i] * b.Values[i]
		}
		return scalar(sum), nil
	}
	k, ok := binaryKernels[name]
	if !ok {
		return Result{}, newError(ErrCodeUnknownOperator, name, "no binary kernel")
	}
	if len(a.Values) != len(b.Values) {
		return Result{}, newError(ErrCodeShapeMismatch, name,
			"operands have lengths %d and %d", len(a.Values), len(b.Values))
	}
	out := make([]float64, len(a.Values))
	for i := range out {
		out[i] = k(a.Values[i], b.Values[i])
	}
	return Result{Values: out}, nil
}
