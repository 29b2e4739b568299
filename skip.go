package peg

// skip matches inner and discards its value.
type skip struct {
	inner Rule
}

func (s *skip) doMatch(st *State, pos int) (int, any, bool) {
	newPos, _, ok := match(s.inner, st, pos)
	if !ok {
		return pos, nil, false
	}
	return newPos, nil, true
}

func (s *skip) generatesValue() bool { return false }
func (s *skip) expectable() string   { return "" }
