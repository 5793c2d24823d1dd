// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/rjson/ast"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi" \o/`), `"say \"hi\" \\o/"`},
		{ast.String("\x00\x1f"), `"\u0000\u001f"`},

		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},
		{ast.Number(1e21), `1e+21`},
		{ast.Number(1e-7), `1e-7`},
		{ast.Number(123456789), `123456789`},
		{ast.Number(math.Inf(1)), `null`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Number(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null{}),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Number(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Number(5),
				ast.Number(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Number(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestNumberMatchesEncoder(t *testing.T) {
	for _, f := range []float64{
		0, 1, -1, 0.1, 1.5e-6, 9.99e-7, 1e20, 1e21, 123.456, -7e-10, math.MaxFloat64,
		math.SmallestNonzeroFloat64,
	} {
		want, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("Marshal %v: %v", f, err)
		}
		if got := ast.Number(f).JSON(); got != string(want) {
			t.Errorf("Number(%v): got %s, want %s", f, got, want)
		}
	}
}

func TestObject(t *testing.T) {
	var o ast.Object
	o.Set("a", ast.Number(1))
	o.Set("b", ast.Number(2))
	o.Set("a", ast.Number(3)) // replaces in place

	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if got, want := o.JSON(), `{"a":3,"b":2}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
	if m := o.Find("c"); m != nil {
		t.Errorf("Find(c): got %+v, want nil", m)
	}
	if !o.Delete("a") {
		t.Error("Delete(a) reported false")
	}
	if o.Delete("a") {
		t.Error("Delete(a) twice reported true")
	}
	if got, want := o.JSON(), `{"b":2}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}

func TestPlain(t *testing.T) {
	v := ast.Object{
		ast.Field("xs", ast.Array{ast.Number(1), ast.Null{}, ast.Bool(true)}),
		ast.Field("s", ast.String("ok")),
	}
	want := map[string]any{
		"xs": []any{1.0, nil, true},
		"s":  "ok",
	}
	if diff := cmp.Diff(want, ast.Plain(v)); diff != "" {
		t.Errorf("Plain (-want, +got):\n%s", diff)
	}

	var std any
	if err := json.Unmarshal([]byte(v.JSON()), &std); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(std, ast.Plain(v)); diff != "" {
		t.Errorf("Plain vs encoding/json (-want, +got):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	v := ast.Array{
		ast.Object{
			ast.Field("a", ast.Number(1)),
			ast.Field("b", ast.Number(2)),
		},
		ast.Object{
			ast.Field("c", ast.Object{ast.Field("d", ast.Bool(true))}),
			ast.Field("e", ast.Bool(false)),
		},
	}
	tests := []struct {
		path []any
		want ast.Value
		fail bool
	}{
		{nil, v, false},
		{[]any{1, "c", "d"}, ast.Bool(true), false},
		{[]any{0, "b"}, ast.Number(2), false},
		{[]any{-1, "e"}, ast.Bool(false), false},
		{[]any{2}, v, true},
		{[]any{"a"}, v, true},
		{[]any{0, "z"}, v, true},
		{[]any{0, 1}, v, true},
		{[]any{1.5}, v, true},
	}
	for _, tc := range tests {
		got, err := ast.Path(v, tc.path...)
		if (err != nil) != tc.fail {
			t.Errorf("Path %v: got err=%v, want failure=%v", tc.path, err, tc.fail)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Path %v (-want, +got):\n%s", tc.path, diff)
		}
	}

	mtest.MustPanic(t, func() { ast.MustPath(v, "nonesuch") })
	if got := ast.MustPath(v, 0, "a"); got != ast.Number(1) {
		t.Errorf("MustPath: got %v, want 1", got)
	}
}
