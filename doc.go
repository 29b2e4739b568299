/*
Package peg is a parsing expression grammar (PEG) engine.

A grammar is a set of named Symbols plus a distinguished root rule. Rules are
built from a small closed set of combinators — SEQ, OR, MANY, MAYBE, TEXT,
TAG, LEX, AT, NOT, MEMO and a handful of terminals — and composed into a
recursive grammar that may be cyclic through Symbol references.

	g := peg.NewGrammar()
	digit := peg.CHAR("0123456789")
	number := peg.TEXT(peg.MANY(digit))
	sum := peg.TAG("+", peg.SEQ(number, "+", number))
	ast, err := g.Parse(sum, "7 + 8")

Rules either generate a value that becomes part of the resulting AST, or
contribute nothing (punctuation, whitespace, lookahead). A Sequence's value
shape is derived automatically from how many of its subrules generate a
value, unless a reducer is supplied as the sequence's last element.

Parsing is single-threaded and synchronous over one input string. Failures
are tracked at the furthest position reached during the attempt (packrat
"furthest-failure" diagnosis); on failure Parse returns a *Diagnostic
describing that position. An ERROR rule, or reaching an undefined symbol,
aborts the whole parse with a *ParseAbort instead of participating in
ordered choice.
*/
package peg
