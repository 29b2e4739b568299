package peg

// Extractor computes a TextValue's value from the matched span.
type Extractor func(text string, start, end int) any

func defaultExtractor(text string, start, end int) any {
	return text[start:end]
}

// textValue matches inner and forces a value: the matched substring by
// default, or extractor's transformation of it.
type textValue struct {
	inner     Rule
	extractor Extractor
}

func (t *textValue) doMatch(st *State, pos int) (int, any, bool) {
	newPos, _, ok := match(t.inner, st, pos)
	if !ok {
		return pos, nil, false
	}
	return newPos, t.extractor(st.text, pos, newPos), true
}

func (t *textValue) generatesValue() bool { return true }
func (t *textValue) expectable() string   { return "" }
