package expr

import (
	"fmt"
	"strings"
)

// String renders the node as name(child, ...). Broadcast nodes use the
// Julia-style dotted form name.(child, ...), compose nodes a leading @.
func (n *Node) String() string {
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = OperandString(c)
	}
	args := strings.Join(parts, ", ")
	switch n.fn.Kind {
	case KindBroadcast:
		return fmt.Sprintf("%s.(%s)", n.fn.Name, args)
	case KindCompose:
		return fmt.Sprintf("@%s(%s)", n.fn.Name, args)
	case KindTuple:
		return fmt.Sprintf("(%s)", args)
	}
	return fmt.Sprintf("%s(%s)", n.fn.Name, args)
}

// String renders the wrapped value with %v.
func (l Leaf) String() string { return fmt.Sprintf("%v", l.value) }

// String renders the sentinel.
func (Null) String() string { return "null" }

// OperandString renders any operand. Exists because Operand itself does
// not require fmt.Stringer; the sealed variants all provide it.
func OperandString(o Operand) string {
	switch v := o.(type) {
	case *Node:
		return v.String()
	case Leaf:
		return v.String()
	case Null:
		return v.String()
	}
	return fmt.Sprintf("%v", o)
}
