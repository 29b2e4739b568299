package peg

import "fmt"

// Symbol is a named, late-bound rule. Symbols close cycles in the rule
// graph; they are the only ownership back-edges, owned by a Grammar's
// registry rather than by whoever references them.
type Symbol struct {
	name string
	def  Rule
}

// Def assigns the symbol's definition. Calling it twice on the same symbol
// is a programmer error and panics immediately, mirroring how the rest of
// this corpus treats malformed grammar construction (see
// other_examples/lab47-peggysue__peggysue.go's "rule already set" panic).
func (s *Symbol) Def(r Rule) {
	if s.def != nil {
		panic(&CompileError{Msg: fmt.Sprintf("peg: symbol %q already defined", s.name)})
	}
	s.def = r
}

func (s *Symbol) Name() string { return s.name }

func (s *Symbol) doMatch(st *State, pos int) (int, any, bool) {
	if s.def == nil {
		panic(&abortSignal{err: &ParseAbort{Msg: fmt.Sprintf("undefined symbol %q", s.name)}})
	}
	return match(s.def, st, pos)
}

func (s *Symbol) generatesValue() bool { return true }
func (s *Symbol) expectable() string   { return "" }
