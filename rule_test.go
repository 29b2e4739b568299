package peg

import (
	"reflect"
	"strings"
	"testing"
)

// TestSequenceOfLiterals covers spec.md §8 scenario 1: S = "a" "b".
func TestSequenceOfLiterals(t *testing.T) {
	g := NewGrammar()
	s := SEQ("a", "b")

	ast, err := g.Parse(s, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ast != nil {
		t.Errorf("expected nil value for two non-generating literals, got %#v", ast)
	}

	_, err = g.Parse(s, "ac")
	if err == nil {
		t.Fatal("expected a diagnostic, got success")
	}
	diag, ok := err.(*Diagnostic)
	if !ok {
		t.Fatalf("expected *Diagnostic, got %T: %v", err, err)
	}
	if diag.Pos != 1 {
		t.Errorf("expected furthest failure at pos 1, got %d", diag.Pos)
	}
	if len(diag.Expected) != 1 || diag.Expected[0] != "'b'" {
		t.Errorf("expected [%q], got %v", "'b'", diag.Expected)
	}
}

// TestTextNumber covers spec.md §8 scenario 2.
func TestTextNumber(t *testing.T) {
	g := NewGrammar()
	digit := CHAR("0123456789")
	n := TEXT(MANY(digit))

	ast, err := g.Parse(n, " 42 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ast != "42" {
		t.Errorf("expected %q, got %#v", "42", ast)
	}
}

// TestList covers spec.md §8 scenario 3.
func TestList(t *testing.T) {
	g := NewGrammar()
	digit := CHAR("0123456789")
	n := TEXT(MANY(digit))
	list := SEQ("[", MANY(n, ","), "]")

	ast, err := g.Parse(list, "[1,2,3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"1", "2", "3"}
	if !reflect.DeepEqual(ast, want) {
		t.Errorf("expected %#v, got %#v", want, ast)
	}
}

// TestReducer covers spec.md §8 scenario 4.
func TestReducer(t *testing.T) {
	g := NewGrammar()
	digit := CHAR("0123456789")
	n := TEXT(MANY(digit))
	e := SEQ(n, "+", n, Reducer(func(values ...any) any {
		return []any{"+", values[0], values[1]}
	}))

	ast, err := g.Parse(e, "7 + 8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"+", "7", "8"}
	if !reflect.DeepEqual(ast, want) {
		t.Errorf("expected %#v, got %#v", want, ast)
	}
}

// TestLookaheadNonConsumption covers spec.md §8 scenario 5's first half: a
// successful AT does not advance the position it guards.
func TestLookaheadNonConsumption(t *testing.T) {
	g := NewGrammar()
	s := SEQ(AT("xy"), "xyz")

	ast, err := g.Parse(s, "xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ast != nil {
		t.Errorf("expected nil value, got %#v", ast)
	}
}

// TestLookaheadSilentInDiagnostics covers spec.md §8 scenario 5's second
// half: a failing lookahead never contributes its own expectable
// description to the furthest-failure diagnostic, even though a sibling
// alternative attempted at the same position does.
func TestLookaheadSilentInDiagnostics(t *testing.T) {
	g := NewGrammar()
	s := OR(AT("q"), "r")

	_, err := g.Parse(s, "z")
	diag, ok := err.(*Diagnostic)
	if !ok {
		t.Fatalf("expected *Diagnostic, got %T: %v", err, err)
	}
	if diag.Pos != 0 {
		t.Errorf("expected furthest failure at pos 0, got %d", diag.Pos)
	}
	if len(diag.Expected) != 1 || diag.Expected[0] != "'r'" {
		t.Errorf("expected only the literal's description, got %v", diag.Expected)
	}
}

func TestOptionalValueShapes(t *testing.T) {
	g := NewGrammar()

	// Generating inner: maps to the value or nil.
	gen := MAYBE(TEXT(CHAR("a")))
	if ast, err := g.Parse(gen, "a"); err != nil || ast != "a" {
		t.Errorf("want %q, got %#v, err %v", "a", ast, err)
	}
	if ast, err := g.Parse(gen, ""); err != nil || ast != nil {
		t.Errorf("want nil, got %#v, err %v", ast, err)
	}

	// Non-generating inner: maps to true or false.
	nonGen := MAYBE("a")
	if ast, err := g.Parse(nonGen, "a"); err != nil || ast != true {
		t.Errorf("want true, got %#v, err %v", ast, err)
	}
	if ast, err := g.Parse(nonGen, ""); err != nil || ast != false {
		t.Errorf("want false, got %#v, err %v", ast, err)
	}
}

func TestRepeatSeparatorDiscipline(t *testing.T) {
	g := NewGrammar()
	item := TEXT(CHAR("abc"))
	list := MANY0(item, ",")

	ast, err := g.Parse(SEQ(list, END()), "a,b,c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(ast, want) {
		t.Errorf("want %#v, got %#v", want, ast)
	}

	// A trailing separator must not be consumed, so "a," should fail to
	// reach end of input as a single MANY0 match.
	_, err = g.Parse(SEQ(list, END()), "a,")
	if err == nil {
		t.Fatal("expected a diagnostic for unconsumed trailing separator")
	}
}

func TestMinZeroMatchesEmpty(t *testing.T) {
	g := NewGrammar()
	list := MANY0(CHAR("a"))
	ast, err := g.Parse(TEXT(list), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ast != "" {
		t.Errorf("expected empty text, got %#v", ast)
	}
}

func TestMinOneFailsOnEmpty(t *testing.T) {
	g := NewGrammar()
	list := MANY(CHAR("a"))
	_, err := g.Parse(list, "")
	if err == nil {
		t.Fatal("expected MANY with min 1 to fail on empty input")
	}
}

func TestEndOfInput(t *testing.T) {
	g := NewGrammar()
	if _, err := g.Parse(END(), ""); err != nil {
		t.Errorf("END should succeed on empty input: %v", err)
	}
	if _, err := g.Parse("x", ""); err == nil {
		t.Error("a literal should fail to match empty input")
	}
}

func TestErrorRuleAborts(t *testing.T) {
	g := NewGrammar()
	s := OR(ERROR("boom"), "x")

	_, err := g.Parse(s, "x")
	if err == nil {
		t.Fatal("expected ERROR to abort even though a later alternative would match")
	}
	abort, ok := err.(*ParseAbort)
	if !ok {
		t.Fatalf("expected *ParseAbort, got %T: %v", err, err)
	}
	if !strings.Contains(abort.Msg, "boom") {
		t.Errorf("expected message to contain %q, got %q", "boom", abort.Msg)
	}
}

func TestUndefinedSymbolAborts(t *testing.T) {
	g := NewGrammar()
	undefined := g.Sym("missing")

	_, err := g.Parse(undefined, "x")
	if _, ok := err.(*ParseAbort); !ok {
		t.Fatalf("expected *ParseAbort for undefined symbol, got %T: %v", err, err)
	}
}

func TestSymbolRedefinitionPanics(t *testing.T) {
	g := NewGrammar()
	s := g.Sym("expr")
	s.Def(&literal{s: "a"})

	defer func() {
		if recover() == nil {
			t.Error("expected a panic redefining an already-defined symbol")
		}
	}()
	s.Def(&literal{s: "b"})
}

func TestTrailingInputDiagnostic(t *testing.T) {
	g := NewGrammar()
	_, err := g.Parse("a", "ab")
	diag, ok := err.(*Diagnostic)
	if !ok {
		t.Fatalf("expected *Diagnostic, got %T: %v", err, err)
	}
	if diag.Pos != 1 {
		t.Errorf("expected trailing-input diagnostic anchored at pos 1, got %d", diag.Pos)
	}
	if len(diag.Expected) != 0 {
		t.Errorf("expected an empty expected set (end of file), got %v", diag.Expected)
	}
}

func TestWhitespaceIdempotence(t *testing.T) {
	g := NewGrammar()
	rule := SEQ("a", "b")

	if _, err := g.Parse(rule, "ab"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Parse(rule, "  ab  "); err != nil {
		t.Errorf("surrounding whitespace should not affect the result: %v", err)
	}
}

func TestLexicalSuppressesInternalWhitespace(t *testing.T) {
	g := NewGrammar()
	token := LEX("keyword", SEQ("f", "o", "o"))

	if _, err := g.Parse(token, "foo"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := g.Parse(token, "f o o"); err == nil {
		t.Error("whitespace inside a Lexical token should not be skipped")
	}
}
