// Package jsongrammar is a JSON value grammar built on the peg engine. It
// is grounded on _examples/tef-ez/json/json.go's document/value/list/
// object/string/number rule shapes, rebuilt on the real peg combinator
// API (SEQ/OR/MANY0/TEXT/LEX) instead of that file's aspirational,
// never-implemented one.
package jsongrammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/outpeg/peg"
)

var grammar = peg.NewGrammar()

var (
	value  = grammar.Sym("value")
	object = grammar.Sym("object")
	list   = grammar.Sym("list")
	str    = grammar.Sym("string")
	number = grammar.Sym("number")
)

func init() {
	// TEXT sits outside LEX because Lexical never generates a value
	// (spec.md's Rule algebra table) — it only suppresses whitespace
	// skipping for its duration. TEXT then captures the whole quoted
	// span, quotes included, and unescapeJSON strips them.
	str.Def(peg.TEXT(peg.LEX("string", peg.SEQ(
		`"`,
		peg.MANY0(peg.OR(
			peg.SEQ(`\`, peg.CHARCODE(func(rune) bool { return true })),
			peg.CHARCODE(func(r rune) bool { return r != '"' && r != '\\' }),
		)),
		`"`,
	)), unescapeJSON))

	number.Def(peg.TEXT(peg.LEX("number", peg.SEQ(
		peg.MAYBE("-"),
		peg.OR(
			"0",
			peg.SEQ(peg.CHAR("123456789"), peg.MANY0(peg.CHAR("0123456789"))),
		),
		peg.MAYBE(peg.SEQ(".", peg.MANY(peg.CHAR("0123456789")))),
		peg.MAYBE(peg.SEQ(peg.OR("e", "E"), peg.MAYBE(peg.OR("+", "-")), peg.MANY(peg.CHAR("0123456789")))),
	)), parseNumber))

	pair := peg.SEQ(str, ":", value, peg.Reducer(func(v ...any) any {
		return [2]any{v[0], v[1]}
	}))

	object.Def(peg.SEQ("{", peg.MANY0(pair, ","), "}", peg.Reducer(func(v ...any) any {
		m := map[string]any{}
		if len(v) > 0 {
			for _, p := range v[0].([]any) {
				kv := p.([2]any)
				m[kv[0].(string)] = kv[1]
			}
		}
		return m
	})))

	list.Def(peg.SEQ("[", peg.MANY0(value, ","), "]", peg.Reducer(func(v ...any) any {
		if len(v) == 0 {
			return []any{}
		}
		return v[0]
	})))

	value.Def(peg.OR(
		object,
		list,
		str,
		number,
		peg.SEQ("true", peg.Reducer(func(...any) any { return true })),
		peg.SEQ("false", peg.Reducer(func(...any) any { return false })),
		peg.SEQ("null", peg.Reducer(func(...any) any { return nil })),
	))
}

// Parse parses a single JSON value from text, returning a plain Go value
// built from map[string]any, []any, string, float64, bool and nil.
func Parse(text string) (any, error) {
	return grammar.Parse(value, text)
}

func parseNumber(text string, start, end int) any {
	f, err := strconv.ParseFloat(text[start:end], 64)
	if err != nil {
		// unreachable for any span the number rule can produce
		panic(fmt.Sprintf("jsongrammar: invalid number literal %q: %v", text[start:end], err))
	}
	return f
}

func unescapeJSON(text string, start, end int) any {
	raw := text[start+1 : end-1] // strip the surrounding quotes
	if !strings.Contains(raw, `\`) {
		return raw
	}

	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 < len(raw) {
				if code, err := strconv.ParseUint(raw[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(code))
					i += 4
					break
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
