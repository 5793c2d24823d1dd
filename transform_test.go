package rjson_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/creachadair/rjson"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

func mustTransform(t *testing.T, input string) string {
	t.Helper()
	out, err := rjson.Transform(input)
	if err != nil {
		t.Fatalf("Transform(%#q) failed: %v", input, err)
	}
	return out
}

func TestTransform(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		// Standard JSON is unchanged.
		{``, ``},
		{`"\n\t\b\r\f"`, `"\n\t\b\r\f"`},
		{`{"a": [1, 2.5e-3, true, null], "b": {}}`, `{"a": [1, 2.5e-3, true, null], "b": {}}`},
		{"[\n  1,\n  2\n]", "[\n  1,\n  2\n]"},

		// Trailing commas.
		{`[1, 2, 3, ]`, `[1, 2, 3 ]`},
		{`{"a": 1,}`, `{"a": 1}`},
		{"[1,\n]", "[1\n]"},
		{`[[],]`, `[[]]`},
		{`[1,,]`, `[1,]`},

		// Identifiers and single-quoted strings.
		{`foo-bar`, `"foo-bar"`},
		{`{a: b}`, `{"a": "b"}`},
		{`'it''s'`, `"it""s"`},
		{`'say "hi"'`, `"say \"hi\""`},

		// Comments become whitespace, with newlines preserved.
		{"[1, // one\n2]", "[1,       \n2]"},
		{"[1, /* one\ntwo */ 2]", "[1,       \n       2]"},
		{"[1, /* x */]", "[1        ]"},
	}
	for _, test := range tests {
		got := mustTransform(t, test.input)
		if got != test.want {
			t.Errorf("Transform(%#q):\ngot:  %#q\nwant: %#q", test.input, got, test.want)
		}
		if again := mustTransform(t, got); again != got && test.input != `[1,,]` {
			t.Errorf("Transform is not idempotent on %#q: %#q then %#q", test.input, got, again)
		}
	}
}

func TestTransform_error(t *testing.T) {
	for _, input := range []string{"\x00", "[1, 2, @]", "<html>"} {
		got, err := rjson.Transform(input)
		var lerr *rjson.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Transform(%#q): got %#q, %v; want *LexError", input, got, err)
		}
	}
}

// TestTransform_hujson checks that for inputs in the JSON With Commas and
// Comments dialect, Transform agrees with an independent implementation.
func TestTransform_hujson(t *testing.T) {
	inputs := []string{
		`{"a": 1, "b": [1, 2, 3,],}`,
		"// leading\n{\"a\": /* inner */ true}\n// trailing",
		"[\n  \"x\", // one\n  \"y\", /* two */\n]",
		`{"nested": {"deep": [{}, [], {"k": null,},],},}`,
	}
	for _, input := range inputs {
		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("Standardize(%#q): %v", input, err)
		}
		var want, got any
		if err := json.Unmarshal(std, &want); err != nil {
			t.Fatalf("Unmarshal standardized: %v", err)
		}
		if err := json.Unmarshal([]byte(mustTransform(t, input)), &got); err != nil {
			t.Errorf("Unmarshal transformed %#q: %v", input, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Input: %#q\nValue (-hujson, +rjson):\n%s", input, diff)
		}
	}
}
