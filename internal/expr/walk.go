package expr

// Walk visits o and every operand reachable from it in pre-order,
// children left to right. Visiting stops early when visit returns false.
// Shared children are visited once per reference; deduplication, if a
// consumer needs it, is the consumer's concern.
func Walk(o Operand, visit func(Operand) bool) {
	walk(o, visit)
}

func walk(o Operand, visit func(Operand) bool) bool {
	if !visit(o) {
		return false
	}
	if n, ok := o.(*Node); ok {
		for _, c := range n.children {
			if !walk(c, visit) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of operand references in the tree rooted at o,
// counting the root itself.
func Count(o Operand) int {
	total := 0
	Walk(o, func(Operand) bool {
		total++
		return true
	})
	return total
}
