package peg

// Rule is the common contract for every rule-algebra variant. A rule is
// asked to match at a position and either reports failure or returns a new
// position and a value.
//
// doMatch assumes whitespace has already been skipped as appropriate for
// the current mode; callers reach it only through match or matchAfterWS.
type Rule interface {
	doMatch(st *State, pos int) (newPos int, value any, ok bool)

	// generatesValue reports whether a successful match of this rule
	// contributes a value to its enclosing context.
	generatesValue() bool

	// expectable returns the description used in furthest-failure
	// diagnostics, or "" if this rule is silent (the common case).
	expectable() string
}

// match is the normal entry point: it skips whitespace unless the state is
// already in whitespace-suppressed mode, then delegates to matchAfterWS.
func match(r Rule, st *State, pos int) (int, any, bool) {
	if !st.inWhitespaceMode {
		pos = skipWhitespace(st, pos)
	}
	return matchAfterWS(r, st, pos)
}

// matchAfterWS is entered once the caller has already skipped whitespace at
// pos. It performs expected-set tracking and then delegates to the variant.
func matchAfterWS(r Rule, st *State, pos int) (int, any, bool) {
	if st.inhibitDepth == 0 {
		st.trackExpected(r, pos)
	}
	return r.doMatch(st, pos)
}

// skipWhitespace repeatedly matches the grammar's whitespace rule at pos
// until it no longer matches or stops advancing. It is a no-op when the
// grammar has no whitespace rule.
func skipWhitespace(st *State, pos int) int {
	ws := st.grammar.Whitespace
	if ws == nil {
		return pos
	}

	prevMode := st.inWhitespaceMode
	st.inWhitespaceMode = true
	st.inhibitDepth++
	defer func() {
		st.inWhitespaceMode = prevMode
		st.inhibitDepth--
	}()

	for {
		newPos, _, ok := match(ws, st, pos)
		if !ok || newPos == pos {
			return pos
		}
		pos = newPos
	}
}
