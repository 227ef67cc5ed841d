package expr

// Broadcast builds one node applying the named operator elementwise over
// the given operands (elementwise-lifted application). Raw operands are
// wrapped; the trigger decision - at least one operand already lazy -
// belongs to the caller, since a fully-raw sequence should be applied
// eagerly instead.
//
// The fusion is a single node regardless of element count. Expanding to
// per-element applications, when needed, is the materializer's job at
// evaluation time, not the tree's.
func Broadcast(name string, operands ...any) (Operand, error) {
	if _, ok := LookupOp(name); !ok {
		return nil, NewUnknownOperatorError(name)
	}
	children := make([]Operand, len(operands))
	for i, a := range operands {
		children[i] = Wrap(a)
	}
	return newNode(Fn{Name: name, Kind: KindBroadcast}, children...), nil
}

// Tuple groups operands into one node whose value is the tuple of its
// children's values. Used to carry nested argument tuples into composed
// functions.
func Tuple(operands ...any) Operand {
	children := make([]Operand, len(operands))
	for i, a := range operands {
		children[i] = Wrap(a)
	}
	return newNode(Fn{Name: "tuple", Kind: KindTuple}, children...)
}

// ComposeTriggers reports whether applying a plain function to args must
// be deferred. The trigger is deliberately narrow and asymmetric: it
// fires only when the FIRST argument is lazy, or the first argument is a
// tuple ([]any) whose own first element is lazy - one level of nesting,
// no deeper, and never for a lazy value in a later position. Callers must
// apply eagerly when this returns false.
func ComposeTriggers(args []any) bool {
	if len(args) == 0 {
		return false
	}
	switch first := args[0].(type) {
	case Operand:
		return true
	case []any:
		if len(first) > 0 {
			_, ok := first[0].(Operand)
			return ok
		}
	}
	return false
}

// Compose builds a deferred application of the plain function call to
// args, when the composition trigger fires. name is the declared name of
// the function (used for rendering and canonical serialization; the
// function value itself cannot be serialized).
//
// Returns (nil, false) when the trigger does not fire; the caller then
// applies the function eagerly with ordinary semantics. Tuple arguments
// ([]any) become tuple nodes so the materializer can rebuild the argument
// shape.
func Compose(name string, call any, args ...any) (Operand, bool) {
	if !ComposeTriggers(args) {
		return nil, false
	}
	children := make([]Operand, len(args))
	for i, a := range args {
		if tup, ok := a.([]any); ok {
			children[i] = Tuple(tup...)
			continue
		}
		children[i] = Wrap(a)
	}
	return newNode(Fn{Name: name, Kind: KindCompose, Call: call}, children...), true
}
