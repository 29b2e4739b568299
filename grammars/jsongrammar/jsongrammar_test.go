package jsongrammar

import (
	"reflect"
	"testing"
)

func TestParsePrimitives(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
		{"42", 42.0},
		{"-3.5", -3.5},
		{`"hi"`, "hi"},
		{`"a\nb"`, "a\nb"},
		{`"quote: \""`, `quote: "`},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestParseArray(t *testing.T) {
	got, err := Parse(`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{1.0, 2.0, 3.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	got, err = Parse(`[]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l, ok := got.([]any); !ok || len(l) != 0 {
		t.Errorf("want an empty list, got %#v", got)
	}
}

func TestParseObject(t *testing.T) {
	got, err := Parse(`{"a": 1, "b": [true, null], "c": {"d": "e"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"a": 1.0,
		"b": []any{true, nil},
		"c": map[string]any{"d": "e"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse(`{"a": }`); err == nil {
		t.Error("expected an error for a malformed object")
	}
	if _, err := Parse(`[1, 2,]`); err == nil {
		t.Error("expected an error for a trailing comma in an array")
	}
}
