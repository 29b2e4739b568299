package peg

// choice tries alternatives in listed order and commits to the first
// success: PEG ordered choice, not ambiguous backtracking. choice itself is
// silent in diagnostics; whichever alternative was attempted contributes to
// the expected set on its own account.
type choice struct {
	alternatives []Rule
}

func (c *choice) doMatch(st *State, pos int) (int, any, bool) {
	for _, alt := range c.alternatives {
		if newPos, val, ok := match(alt, st, pos); ok {
			return newPos, val, true
		}
	}
	return pos, nil, false
}

// generatesValue always reports true: a Choice forwards whatever its
// winning alternative returns, and a well-formed grammar keeps the
// alternatives' value shapes consistent with each other. The source this
// engine is modeled on has commented-out code for substituting a declared
// default value when an alternative matches without generating one; that
// path was never enabled, so it is not implemented here either (spec.md
// §9, first open question).
func (c *choice) generatesValue() bool { return true }
func (c *choice) expectable() string   { return "" }
