package peg

import "sort"

// Grammar is a named-symbol registry. It owns its symbols and the
// whitespace rule; it is read-only during parsing once all definitions are
// fixed, so independent parses against the same Grammar (each with its own
// State) may run on independent goroutines.
type Grammar struct {
	symbols map[string]*Symbol
	order   []string

	// Whitespace is matched in a loop between atomic matches outside of
	// Lexical-suppressed regions. Set it to nil to disable whitespace
	// skipping entirely.
	Whitespace Rule

	// LogFunc, if set, receives non-fatal warnings raised while checking
	// a grammar at the start of each Parse: one per symbol that was
	// referenced but never defined. Unused symbols are not reported.
	// Mirrors tef-ez's Grammar.LogFunc/Warn hook.
	LogFunc func(format string, args ...any)
}

// NewGrammar constructs an empty grammar with the default whitespace rule
// [ \t\r\n].
func NewGrammar() *Grammar {
	return &Grammar{
		symbols:    make(map[string]*Symbol),
		Whitespace: defaultWhitespace(),
	}
}

func defaultWhitespace() Rule {
	return &charPredicate{pred: charClass(" \t\r\n"), name: "whitespace"}
}

// Sym returns the named symbol, creating an undefined placeholder for it on
// first reference. This is how grammars written as mutually-recursive Go
// closures close their cycles: a symbol may be referenced before it is
// defined.
func (g *Grammar) Sym(name string) *Symbol {
	if s, ok := g.symbols[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	g.symbols[name] = s
	g.order = append(g.order, name)
	return s
}

func (g *Grammar) warnf(format string, args ...any) {
	if g.LogFunc != nil {
		g.LogFunc(format, args...)
	}
}

// undefinedSymbols returns the names of every registered symbol that was
// referenced but never given a definition via Symbol.Def.
func (g *Grammar) undefinedSymbols() []string {
	var names []string
	for _, name := range g.order {
		if g.symbols[name].def == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Parse compiles root, matches it against text from position 0, and skips
// trailing whitespace. On success it returns the resulting AST. On
// failure, or on unconsumed trailing input, it returns a *Diagnostic
// describing the furthest position reached. An ERROR rule or an undefined
// symbol reached mid-parse instead aborts the whole parse, returned as a
// *ParseAbort.
func (g *Grammar) Parse(root any, text string) (ast any, err error) {
	for _, name := range g.undefinedSymbols() {
		g.warnf("peg: symbol %q is referenced but never defined", name)
	}

	rootRule := Compile(root)
	st := newState(g, text)

	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(*abortSignal); ok {
				ast, err = nil, sig.err
				return
			}
			panic(r)
		}
	}()

	pos, val, ok := match(rootRule, st, 0)
	if !ok {
		return nil, buildDiagnostic(st)
	}

	endPos := skipWhitespace(st, pos)
	if endPos != st.end {
		st.anchorAt(endPos)
		return nil, buildDiagnostic(st)
	}

	return val, nil
}

// abortSignal carries a *ParseAbort across a panic/recover boundary,
// distinguishing a fatal parse abort from an ordinary Go panic. Grounded on
// other_examples/jba-parco__parco.go's failure{err}/recover() idiom.
type abortSignal struct {
	err error
}
