package rjson

import (
	"strconv"

	"github.com/creachadair/rjson/ast"
)

// revive applies f to the parsed value v, and returns the result.
func revive(f Reviver, v ast.Value) ast.Value { return internalize(f, "", v) }

// internalize applies f to the descendants of v, children before parents,
// and then to v itself under the given key. Elements are visited in order,
// so f sees the same sequence of calls that a standard JSON parser makes.
func internalize(f Reviver, key string, v ast.Value) ast.Value {
	switch t := v.(type) {
	case ast.Array:
		for i, elt := range t {
			nv := internalize(f, strconv.Itoa(i), elt)
			if nv == nil {
				nv = ast.Null{}
			}
			t[i] = nv
		}
	case ast.Object:
		keep := t[:0]
		for _, m := range t {
			if nv := internalize(f, m.Key, m.Value); nv != nil {
				m.Value = nv
				keep = append(keep, m)
			}
		}
		clear(t[len(keep):])
		v = keep
	}
	return f(key, v)
}
