package peg

// lookahead succeeds iff inner matches, without consuming input. It raises
// the state's inhibit depth for the whole attempt of inner, so neither inner
// nor anything it reaches takes part in expected-set tracking, which is why
// a failing AT/NOT never pollutes a furthest-failure diagnostic with the
// tokens it peeked at.
type lookahead struct {
	inner    Rule
	negative bool
}

func (l *lookahead) doMatch(st *State, pos int) (int, any, bool) {
	st.inhibitDepth++
	_, _, ok := match(l.inner, st, pos)
	st.inhibitDepth--

	if l.negative {
		ok = !ok
	}
	if !ok {
		return pos, nil, false
	}
	return pos, nil, true
}

func (l *lookahead) generatesValue() bool { return false }
func (l *lookahead) expectable() string   { return "" }
