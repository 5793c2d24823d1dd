// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import "github.com/creachadair/rjson/ast"

// Kind is the type of a lexical token in the relaxed JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	Whitespace             // whitespace or comment
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Comma                  // comma ","
	Colon                  // colon ":"
	Atom                   // constant: true, false, null
	Number                 // number
	String                 // string, quoted or bare
	EOF                    // end of input
)

var kindStr = [...]string{
	Invalid:    "invalid token",
	Whitespace: "whitespace",
	LBrace:     "'{'",
	RBrace:     "'}'",
	LSquare:    "'['",
	RSquare:    "']'",
	Comma:      "','",
	Colon:      "':'",
	Atom:       "atom",
	Number:     "number",
	String:     "string",
	EOF:        "end-of-file",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token. Tokens are not modified after the lexer
// produces them.
type Token struct {
	Kind Kind

	// Text is the text of the token as it appears in transformed output. For
	// most tokens this is the source text. Comments are blanked to spaces
	// (keeping newlines), and single-quoted strings and bare identifiers are
	// re-encoded as double-quoted strings.
	Text string

	// Value is the decoded value of an Atom, Number, or String token, and is
	// nil for all other kinds.
	Value ast.Value

	Line int // the 1-based line on which the token begins
	Span     // the location of the token in the source
}

// describe renders t for use in a diagnostic message.
func (t Token) describe() string {
	switch t.Kind {
	case Atom, Number, String:
		return t.Kind.String() + " " + t.Text
	}
	return t.Kind.String()
}
