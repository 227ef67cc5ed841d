// Package parse turns infix expression text into deferred computation
// trees.
//
// The grammar is a small calculator surface over the operator table:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := ('+'|'-') unary | primary
//	primary := NUMBER | IDENT | 'null' | IDENT '(' args ')'
//	         | IDENT '.(' args ')' | '(' expr ')'
//
// Numbers become float64 leaves, identifiers become symbol leaves bound
// at materialization time, and the null keyword produces the sentinel.
// Calls route through the operator table (sin(x), dot(a,b), max(a,b));
// the dotted call form name.(args) builds an elementwise-broadcast node.
//
// The parser builds through the construction rules, so algebraic
// short-circuits happen while parsing: "(x + null) * y" yields the same
// tree as "x * y", and "x / null" fails with a DivisionByNull error
// before anything is evaluated.
package parse
