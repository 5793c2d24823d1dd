package ast

import "fmt"

// Plain converts v into plain Go values of the kinds produced by
// encoding/json when decoding into an empty interface: nil, bool, float64,
// string, []any, and map[string]any. Member order is lost in the conversion.
func Plain(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Plain(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = Plain(m.Value)
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
