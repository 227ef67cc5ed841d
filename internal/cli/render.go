package cli

import (
	"fmt"
	"strings"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// renderTree writes an indented one-node-per-line dump of the tree.
func renderTree(o expr.Operand) string {
	var sb strings.Builder
	writeTree(&sb, o, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, o expr.Operand, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := o.(type) {
	case expr.Null:
		fmt.Fprintf(sb, "%snull\n", pad)
	case expr.Leaf:
		fmt.Fprintf(sb, "%sleaf %v\n", pad, v.Value())
	case *expr.Node:
		fn := v.Func()
		if fn.Kind == expr.KindDirect {
			fmt.Fprintf(sb, "%snode %s\n", pad, fn.Name)
		} else {
			fmt.Fprintf(sb, "%snode %s %s\n", pad, fn.Kind, fn.Name)
		}
		for _, c := range v.Operands() {
			writeTree(sb, c, depth+1)
		}
	}
}

// dumpOperand converts a tree to nested maps for json/yaml encoding.
func dumpOperand(o expr.Operand) any {
	switch v := o.(type) {
	case expr.Null:
		return map[string]any{"kind": "null"}
	case expr.Leaf:
		return map[string]any{"kind": "leaf", "value": v.Value()}
	case *expr.Node:
		fn := v.Func()
		children := make([]any, 0, v.Arity())
		for _, c := range v.Operands() {
			children = append(children, dumpOperand(c))
		}
		return map[string]any{
			"kind":     "node",
			"fn":       map[string]any{"name": fn.Name, "kind": string(fn.Kind)},
			"children": children,
		}
	}
	return nil
}
