package peg

import "fmt"

// Compile normalizes a heterogeneous user rule input into a compiled
// rule-algebra node, per spec.md §4.3:
//
//   - a Rule compiles to itself;
//   - a string compiles to a Literal;
//   - a *Symbol compiles to itself (a late-bound reference);
//   - a []any compiles to a Sequence, scanning left to right and allowing
//     at most one Reducer, only as the last element;
//   - anything else is a compile-time error.
func Compile(x any) Rule {
	switch v := x.(type) {
	case Rule:
		// Covers both already-compiled nodes and *Symbol, a late-bound
		// reference that is itself a Rule.
		return v
	case string:
		return &literal{s: v}
	case []any:
		return compileSequence(v)
	default:
		panic(&CompileError{Msg: fmt.Sprintf("peg: cannot compile value of type %T into a rule", x)})
	}
}
