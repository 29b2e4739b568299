package peg

// Reducer is the type for a sequence's optional value combinator: it is
// applied to the collected values of whichever subrules generate one.
type Reducer func(values ...any) any

// sequence matches rules in order. Its value shape is derived statically
// from how many of its subrules generate a value (see spec.md §4.1):
// no reducer and 0 generating subrules -> nil; no reducer and exactly one
// -> that value; no reducer and two or more -> the ordered list of values;
// a reducer, present or not, always wins when supplied.
type sequence struct {
	rules      []Rule
	valueCount int
	reducer    Reducer
}

func (s *sequence) doMatch(st *State, pos int) (int, any, bool) {
	values := make([]any, 0, s.valueCount)
	for _, r := range s.rules {
		newPos, val, ok := match(r, st, pos)
		if !ok {
			return pos, nil, false
		}
		pos = newPos
		if r.generatesValue() {
			values = append(values, val)
		}
	}

	if s.reducer != nil {
		return pos, s.reducer(values...), true
	}
	switch len(values) {
	case 0:
		return pos, nil, true
	case 1:
		return pos, values[0], true
	default:
		return pos, values, true
	}
}

func (s *sequence) generatesValue() bool { return s.reducer != nil || s.valueCount > 0 }
func (s *sequence) expectable() string   { return "" }

// compileSequence turns a user-supplied list into a sequence node per
// spec.md §4.3: every non-function element is compiled and contributes to
// valueCount if value-generating; at most one Reducer may appear, and only
// as the last element.
func compileSequence(parts []any) *sequence {
	s := &sequence{}
	for i, p := range parts {
		if fn, ok := p.(Reducer); ok {
			if i != len(parts)-1 {
				panic(&CompileError{Msg: "peg: a reducer may appear only as the last element of a sequence"})
			}
			s.reducer = fn
			continue
		}
		if fn, ok := p.(func(values ...any) any); ok {
			if i != len(parts)-1 {
				panic(&CompileError{Msg: "peg: a reducer may appear only as the last element of a sequence"})
			}
			s.reducer = fn
			continue
		}
		r := Compile(p)
		s.rules = append(s.rules, r)
		if r.generatesValue() {
			s.valueCount++
		}
	}
	return s
}
