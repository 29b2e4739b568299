package peg

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Diagnostic describes the furthest failure reached during a parse:
// the union of descriptions of every expectable rule attempted at that
// position, the character found there (or end of file), and the
// offending source line with a caret pointing at the column.
type Diagnostic struct {
	Pos      int
	Expected []string
	Found    string
	Line     string
	Column   int
}

func (d *Diagnostic) Error() string {
	expected := "end of file"
	if len(d.Expected) > 0 {
		expected = strings.Join(d.Expected, " or ")
	}
	indicator := strings.Repeat(" ", d.Column) + "^"
	return fmt.Sprintf("Expected %s but found %s\n%s\n%s", expected, d.Found, d.Line, indicator)
}

// buildDiagnostic implements spec.md §4.5 exactly: the expected list sorts
// non-quoted (symbol/lexical) descriptions before quoted (literal) ones,
// lexicographically within each class, and the caret is emitted even when
// the furthest position is end of file.
func buildDiagnostic(st *State) *Diagnostic {
	pos := st.maxPos

	seen := make(map[string]bool)
	var expected []string
	for r := range st.maxRule {
		desc := r.expectable()
		if desc == "" || seen[desc] {
			continue
		}
		seen[desc] = true
		expected = append(expected, desc)
	}
	sort.Slice(expected, func(i, j int) bool {
		iQuoted, jQuoted := isQuoted(expected[i]), isQuoted(expected[j])
		if iQuoted != jQuoted {
			return !iQuoted
		}
		return expected[i] < expected[j]
	})

	found := "end of file"
	if pos < st.end {
		r, _ := utf8.DecodeRuneInString(st.text[pos:])
		found = "'" + string(r) + "'"
	}

	line, lineStart := lineAround(st.text, pos)

	return &Diagnostic{
		Pos:      pos,
		Expected: expected,
		Found:    found,
		Line:     line,
		Column:   pos - lineStart,
	}
}

func isQuoted(s string) bool {
	return strings.HasPrefix(s, "'")
}
