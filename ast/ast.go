// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value tree produced by the rjson parser.
//
// A Value is one of Null, Bool, Number, String, Array, or Object. Objects
// preserve the insertion order of their members. Every Value can render
// itself as canonical JSON text via its JSON method.
package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/rjson/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A Number is a numeric value. Numbers are represented as 64-bit floats.
type Number float64

// JSON satisfies the Value interface. Non-finite values are rendered as
// null, since JSON has no representation for them.
func (n Number) JSON() string { return string(appendNumber(nil, float64(n))) }

// A String is a string value. The value is stored unescaped.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	writeJSON(&sb, a)
	return sb.String()
}

// An Object is a collection of key-value members.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	writeJSON(&sb, o)
	return sb.String()
}

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Set sets the value of key to v. If key is already present, its value is
// replaced in its original position; otherwise a new member is appended.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	*o = append(*o, Field(key, v))
}

// Delete removes the member with the given key, if present, and reports
// whether it did so.
func (o *Object) Delete(key string) bool {
	for i, m := range *o {
		if m.Key == key {
			*o = append((*o)[:i], (*o)[i+1:]...)
			return true
		}
	}
	return false
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

func writeJSON(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("null")
	case Array:
		sb.WriteByte('[')
		for i, elt := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, elt)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.Write(escape.Quote(mem.S(m.Key)))
			sb.WriteByte(':')
			writeJSON(sb, m.Value)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(v.JSON())
	}
}

// appendNumber formats f the way a standard JSON encoder does: the shortest
// representation that round-trips, using exponent notation only for very
// small or very large magnitudes.
func appendNumber(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	buf = strconv.AppendFloat(buf, f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9.
		if n := len(buf); n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	return buf
}
