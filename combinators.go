package peg

import "fmt"

// CHAR builds a character-class rule from the distinct code points of
// chars: a [lo, hi] code point range plus a presence flag per spec.md §6.
// It matches a single code point and never generates a value.
func CHAR(chars string) Rule {
	return &charPredicate{pred: charClass(chars), name: "char class"}
}

// CHARCODE builds a character rule from either a single code point or an
// arbitrary predicate over one.
func CHARCODE(x any) Rule {
	switch v := x.(type) {
	case int:
		r := rune(v)
		return &charPredicate{pred: func(c rune) bool { return c == r }}
	case rune:
		return &charPredicate{pred: func(c rune) bool { return c == v }}
	case func(rune) bool:
		return &charPredicate{pred: v}
	default:
		panic(&CompileError{Msg: fmt.Sprintf("peg: CHARCODE wants an int, rune or func(rune) bool, got %T", x)})
	}
}

// END matches only at the end of input.
func END() Rule { return endOfInput{} }

// ERROR aborts the whole parse with msg when entered.
func ERROR(msg string) Rule { return &errorRule{msg: msg} }

// AT is positive lookahead: it succeeds iff rule matches, without
// consuming input.
func AT(rule any) Rule { return &lookahead{inner: Compile(rule)} }

// NOT is negative lookahead: it succeeds iff rule does not match, without
// consuming input.
func NOT(rule any) Rule { return &lookahead{inner: Compile(rule), negative: true} }

// SKIP matches rule but discards its value.
func SKIP(rule any) Rule { return &skip{inner: Compile(rule)} }

// LEX matches rule in whitespace-suppressed mode. If name is non-empty the
// resulting rule is expectable by that name in diagnostics.
func LEX(name string, rule any) Rule { return &lexical{name: name, inner: Compile(rule)} }

// TEXT matches rule and forces a value. With no extractor the value is the
// matched substring; otherwise it is extractor applied to the matched span.
func TEXT(rule any, extractor ...Extractor) Rule {
	ex := defaultExtractor
	if len(extractor) > 0 {
		ex = extractor[0]
	}
	return &textValue{inner: Compile(rule), extractor: ex}
}

// MAYBE matches rule or nothing.
func MAYBE(rule any) Rule { return &optional{inner: Compile(rule)} }

// MANY matches rule one-or-more times, with an optional separator between
// repetitions.
func MANY(rule any, sep ...any) Rule {
	return newRepeat(rule, sep, 1)
}

// MANY0 matches rule zero-or-more times, with an optional separator
// between repetitions.
func MANY0(rule any, sep ...any) Rule {
	return newRepeat(rule, sep, 0)
}

func newRepeat(rule any, sep []any, min int) Rule {
	if min != 0 && min != 1 {
		panic(&CompileError{Msg: "peg: MANY's min must be 0 or 1"})
	}
	r := &repeat{inner: Compile(rule), min: min}
	if len(sep) > 0 {
		r.sep = Compile(sep[0])
	}
	return r
}

// OR builds an ordered choice over alternatives, trying each in turn and
// committing to the first that matches.
func OR(alternatives ...any) Rule {
	c := &choice{alternatives: make([]Rule, len(alternatives))}
	for i, alt := range alternatives {
		c.alternatives[i] = Compile(alt)
	}
	return c
}

// SEQ compiles parts as a Sequence: the same compilation spec.md §4.3
// applies to a literal []any, made available as a direct constructor so
// Go call sites don't need to spell out a slice literal.
func SEQ(parts ...any) Rule {
	return compileSequence(parts)
}

// MEMO wraps rule with packrat memoization, keyed by position within the
// current parse.
func MEMO(rule any) Rule { return &Memo{inner: Compile(rule)} }

// TAG wraps rule in a sequence whose reducer produces []any{tag, ast},
// where ast is rule's own value (nil if rule does not generate one).
func TAG(tag string, rule any) Rule {
	return &sequence{
		rules:   []Rule{Compile(rule)},
		reducer: func(values ...any) any {
			var ast any
			if len(values) > 0 {
				ast = values[0]
			}
			return []any{tag, ast}
		},
	}
}
