// Package arith is a small arithmetic-expression grammar built on the peg
// engine: + - * / with standard precedence, parentheses, and unary minus.
// It is grounded on _examples/tef-ez/infix/infix.go's expression/number
// rule shapes, rebuilt on the real peg combinator API and restructured
// into precedence-layered symbols (sum over product over unary over atom)
// since infix.go's own left-recursion combinators (Corner/Recur/Stump)
// were never implemented anywhere in the pack.
package arith

import (
	"fmt"
	"strconv"

	"github.com/outpeg/peg"
)

var grammar = peg.NewGrammar()

var (
	sum     = grammar.Sym("sum")
	product = grammar.Sym("product")
	unary   = grammar.Sym("unary")
	atom    = grammar.Sym("atom")
	number  = grammar.Sym("number")
)

// foldLeft combines a leading operand with a flat list of (operator,
// operand) pairs into a left-associative chain of binary nodes. PEG has no
// left recursion (spec.md §8's boundary behaviors rule it out), so this is
// the standard way to get left-associative binary operators: parse
// "operand (op operand)*" and fold afterward instead of recursing left.
func foldLeft(v ...any) any {
	result := v[0]
	for _, p := range v[1].([]any) {
		pair := p.([2]any)
		result = []any{pair[0].(string), result, pair[1]}
	}
	return result
}

func init() {
	number.Def(peg.TEXT(peg.LEX("number", peg.SEQ(
		peg.MANY(peg.CHAR("0123456789")),
		peg.MAYBE(peg.SEQ(".", peg.MANY(peg.CHAR("0123456789")))),
	)), parseNumber))

	atom.Def(peg.OR(
		number,
		peg.SEQ("(", sum, ")"),
	))

	unary.Def(peg.OR(
		peg.SEQ("-", unary, peg.Reducer(func(v ...any) any { return []any{"neg", v[0]} })),
		atom,
	))

	mulOp := peg.TEXT(peg.OR("*", "/"))
	product.Def(peg.SEQ(unary, peg.MANY0(peg.SEQ(mulOp, unary, peg.Reducer(func(v ...any) any {
		return [2]any{v[0], v[1]}
	}))), peg.Reducer(foldLeft)))

	addOp := peg.TEXT(peg.OR("+", "-"))
	sum.Def(peg.SEQ(product, peg.MANY0(peg.SEQ(addOp, product, peg.Reducer(func(v ...any) any {
		return [2]any{v[0], v[1]}
	}))), peg.Reducer(foldLeft)))
}

// Parse parses an arithmetic expression into a tagged-slice AST, e.g.
// ["+", 1.0, ["*", 2.0, 3.0]].
func Parse(text string) (any, error) {
	return grammar.Parse(sum, text)
}

// Eval evaluates an AST produced by Parse.
func Eval(ast any) (float64, error) {
	switch v := ast.(type) {
	case float64:
		return v, nil
	case []any:
		if len(v) == 2 && v[0] == "neg" {
			x, err := Eval(v[1])
			return -x, err
		}
		if len(v) != 3 {
			return 0, fmt.Errorf("arith: malformed node %#v", v)
		}
		op, ok := v[0].(string)
		if !ok {
			return 0, fmt.Errorf("arith: malformed node %#v", v)
		}
		left, err := Eval(v[1])
		if err != nil {
			return 0, err
		}
		right, err := Eval(v[2])
		if err != nil {
			return 0, err
		}
		switch op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, fmt.Errorf("arith: division by zero")
			}
			return left / right, nil
		default:
			return 0, fmt.Errorf("arith: unknown operator %q", op)
		}
	default:
		return 0, fmt.Errorf("arith: unexpected AST node %#v", ast)
	}
}

func parseNumber(text string, start, end int) any {
	f, err := strconv.ParseFloat(text[start:end], 64)
	if err != nil {
		panic(fmt.Sprintf("arith: invalid number literal %q: %v", text[start:end], err))
	}
	return f
}
