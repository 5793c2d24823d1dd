// Package testutil defines support code for unit tests.
package testutil

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/creachadair/rjson/ast"
)

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }

// stringRunes are the runes from which random strings are drawn. They include
// characters that must be escaped in JSON, and multi-byte runes.
var stringRunes = []rune("abcXYZ019 _-/\\\"'\t\n\x01{}[],:éü世界 😀")

// RandomString returns a random string of up to n runes.
func RandomString(r *rand.Rand, n int) string {
	var sb strings.Builder
	for range r.IntN(n + 1) {
		sb.WriteRune(stringRunes[r.IntN(len(stringRunes))])
	}
	return sb.String()
}

// RandomNumber returns a random finite number, sometimes integral and
// sometimes of very small or large magnitude.
func RandomNumber(r *rand.Rand) ast.Number {
	switch r.IntN(4) {
	case 0:
		return ast.Number(r.IntN(2000) - 1000)
	case 1:
		return ast.Number(r.NormFloat64() * 1e3)
	case 2:
		f, _ := strconv.ParseFloat(strconv.Itoa(r.IntN(100))+"e"+strconv.Itoa(r.IntN(60)-30), 64)
		return ast.Number(f)
	default:
		return ast.Number(r.Float64())
	}
}

// RandomValue returns a random JSON value nested at most depth levels.
// Object keys within each object are distinct.
func RandomValue(r *rand.Rand, depth int) ast.Value {
	n := 6
	if depth <= 0 {
		n = 4 // scalars only
	}
	switch r.IntN(n) {
	case 0:
		return ast.Null{}
	case 1:
		return ast.Bool(r.IntN(2) == 1)
	case 2:
		return RandomNumber(r)
	case 3:
		return ast.String(RandomString(r, 12))
	case 4:
		arr := ast.Array{}
		for range r.IntN(5) {
			arr = append(arr, RandomValue(r, depth-1))
		}
		return arr
	default:
		obj := ast.Object{}
		for range r.IntN(5) {
			key := RandomString(r, 6)
			if obj.Find(key) == nil {
				obj = append(obj, ast.Field(key, RandomValue(r, depth-1)))
			}
		}
		return obj
	}
}
