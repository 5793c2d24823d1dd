package rjson

import (
	"fmt"

	"github.com/creachadair/rjson/ast"
	"github.com/go-viper/mapstructure/v2"
)

// A Reviver is called for each key and value of a parsed result, children
// before their parents, and its return value replaces the original value.
// Array elements are keyed by their decimal index, and the root value is
// keyed by "". If a Reviver returns nil, the value is omitted: an object
// member is deleted, an array element becomes null, and an omitted root
// makes the parse result nil.
type Reviver func(key string, value ast.Value) ast.Value

// Options control the behavior of a Parser. The zero value is ready for use
// and provides the default behavior: relaxed syntax, no tolerance, and
// last-wins handling of duplicate keys.
type Options struct {
	// Strict disables the relaxed syntax, so that only standard JSON tokens
	// are accepted and trailing commas are not removed.
	Strict bool

	// Tolerant enables recovery from grammar violations. Each violation is
	// recorded as a Warning and parsing continues; if any warnings occur,
	// Parse reports a *ToleranceError holding the recovered value.
	Tolerant bool

	// Duplicate makes a repeated object key a violation. Otherwise the last
	// value for a key replaces any earlier one.
	Duplicate bool

	// If set, Reviver is applied to the parsed value.
	Reviver Reviver
}

// optionMap is the shape of options given as a generic map.
type optionMap struct {
	Relaxed   *bool `mapstructure:"relaxed"`
	Tolerant  bool  `mapstructure:"tolerant"`
	Duplicate bool  `mapstructure:"duplicate"`

	// Warnings requests diagnostics without tolerance. The parser always
	// reports the first violation in that case, so the flag has no effect.
	Warnings bool `mapstructure:"warnings"`
}

// DecodeOptions converts v into Options. It accepts nil (defaults), a
// Reviver or a function of the same signature (defaults with that reviver),
// an Options or *Options value, or a map[string]any with any of the keys
// "relaxed", "tolerant", "duplicate", "warnings" (bool) and "reviver". Any
// other input reports an error wrapping ErrBadOptions.
func DecodeOptions(v any) (Options, error) {
	switch t := v.(type) {
	case nil:
		return Options{}, nil
	case Reviver:
		return Options{Reviver: t}, nil
	case func(string, ast.Value) ast.Value:
		return Options{Reviver: t}, nil
	case Options:
		return t, nil
	case *Options:
		if t == nil {
			return Options{}, nil
		}
		return *t, nil
	case map[string]any:
		return decodeOptionMap(t)
	default:
		return Options{}, fmt.Errorf("%w: unsupported type %T", ErrBadOptions, v)
	}
}

func decodeOptionMap(m map[string]any) (Options, error) {
	var opts Options
	flags := make(map[string]any, len(m))
	for key, val := range m {
		if key != "reviver" {
			flags[key] = val
			continue
		}
		switch f := val.(type) {
		case nil:
		case Reviver:
			opts.Reviver = f
		case func(string, ast.Value) ast.Value:
			opts.Reviver = f
		default:
			return Options{}, fmt.Errorf("%w: reviver has type %T", ErrBadOptions, val)
		}
	}

	var om optionMap
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &om,
		ErrorUnused: true,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(flags); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrBadOptions, err)
	}
	opts.Strict = om.Relaxed != nil && !*om.Relaxed
	opts.Tolerant = om.Tolerant
	opts.Duplicate = om.Duplicate
	return opts, nil
}
