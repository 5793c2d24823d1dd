package rjson

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/rjson/ast"
	"github.com/creachadair/rjson/internal/escape"
	"go4.org/mem"
)

// A Rule is a single entry in a lexer table. Pattern must be anchored at the
// start of input (^). When Pattern matches, Make is called with the submatches
// of the pattern (m[0] is the complete match) to construct the token. The
// lexer fills in the Line and Span of the token.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Make    func(m []string) (Token, error)
}

// The lexer tables are evaluated in order, and the first rule that matches
// wins. The order is significant: the keyword rule must precede the rule for
// bare identifiers, or true, false, and null would be read as strings.
var (
	strictRules = []Rule{
		simple("whitespace", `^[ \t\n\r]+`, Whitespace),
		simple("lbrace", `^\{`, LBrace),
		simple("rbrace", `^\}`, RBrace),
		simple("lsquare", `^\[`, LSquare),
		simple("rsquare", `^\]`, RSquare),
		simple("comma", `^,`, Comma),
		simple("colon", `^:`, Colon),
		{"keyword", regexp.MustCompile(`^(?:true|false|null)`), makeAtom},
		{"number", regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?`), makeNumber},
		{"string", regexp.MustCompile(`^"((?:[^"\\\x00-\x1f]|\\["\\/bfnrt]|\\u[0-9a-fA-F]{4})*)"`), makeString},
	}

	relaxedRules = []Rule{
		simple("whitespace", `^[\s\v\x{00a0}\x{feff}\x{2028}\x{2029}\p{Zs}]+`, Whitespace),
		simple("lbrace", `^\{`, LBrace),
		simple("rbrace", `^\}`, RBrace),
		simple("lsquare", `^\[`, LSquare),
		simple("rsquare", `^\]`, RSquare),
		simple("comma", `^,`, Comma),
		simple("colon", `^:`, Colon),
		{"keyword", regexp.MustCompile(`^(?:true|false|null)`), makeAtom},
		{"number", regexp.MustCompile(`^-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`), makeNumber},
		{"string", regexp.MustCompile(`^"((?:[^"\\\x00-\x1f]|\\["\\/bfnrt]|\\u[0-9a-fA-F]{4})*)"`), makeString},

		// Extensions.
		{"single-quoted string", regexp.MustCompile(`^'((?:[^'\\\x00-\x1f]|\\['"\\/bfnrt]|\\u[0-9a-fA-F]{4})*)'`), makeSingleString},
		{"line comment", regexp.MustCompile(`^//[^\n]*\n?`), makeComment},
		{"block comment", regexp.MustCompile(`(?s)^/\*.*?\*/`), makeComment},

		// This must be last, since it matches a superset of keywords and numbers.
		{"identifier", regexp.MustCompile(`^[a-zA-Z0-9_\-+.*?!|&%^/#\\]+`), makeIdentifier},
	}
)

// StrictRules returns a copy of the lexer table for standard JSON.
func StrictRules() []Rule { return append([]Rule(nil), strictRules...) }

// RelaxedRules returns a copy of the lexer table for relaxed JSON. It accepts
// everything StrictRules does, as well as single-quoted strings, bare
// identifiers (read as strings), line comments, and block comments.
func RelaxedRules() []Rule { return append([]Rule(nil), relaxedRules...) }

func simple(name, pattern string, kind Kind) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(pattern),
		Make: func(m []string) (Token, error) {
			return Token{Kind: kind, Text: m[0]}, nil
		},
	}
}

func makeAtom(m []string) (Token, error) {
	var v ast.Value
	switch m[0] {
	case "true":
		v = ast.Bool(true)
	case "false":
		v = ast.Bool(false)
	default:
		v = ast.Null{}
	}
	return Token{Kind: Atom, Text: m[0], Value: v}, nil
}

func makeNumber(m []string) (Token, error) {
	// The pattern admits only valid syntax, so the only possible error is a
	// range error, for which ParseFloat returns ±Inf or 0 as appropriate.
	f, err := strconv.ParseFloat(m[0], 64)
	if err != nil && !isRangeError(err) {
		return Token{}, fmt.Errorf("invalid number %q: %w", m[0], err)
	}
	return Token{Kind: Number, Text: m[0], Value: ast.Number(f)}, nil
}

func makeString(m []string) (Token, error) {
	dec, err := escape.Unquote(mem.S(m[1]))
	if err != nil {
		return Token{}, fmt.Errorf("invalid string: %w", err)
	}
	return Token{Kind: String, Text: m[0], Value: ast.String(dec)}, nil
}

func makeSingleString(m []string) (Token, error) {
	dec, err := escape.Unquote(mem.S(m[1]))
	if err != nil {
		return Token{}, fmt.Errorf("invalid string: %w", err)
	}
	return Token{
		Kind:  String,
		Text:  string(escape.Quote(mem.B(dec))),
		Value: ast.String(dec),
	}, nil
}

func makeIdentifier(m []string) (Token, error) {
	return Token{
		Kind:  String,
		Text:  string(escape.Quote(mem.S(m[0]))),
		Value: ast.String(m[0]),
	}, nil
}

// makeComment constructs a whitespace token for a comment. Every character
// of the comment except newlines is replaced by a space, so that the
// comment is semantically empty but line numbers are not disturbed.
func makeComment(m []string) (Token, error) {
	blank := strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		return ' '
	}, m[0])
	return Token{Kind: Whitespace, Text: blank}, nil
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
