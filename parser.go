// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/rjson/ast"
)

// Parse parses text as a single JSON value according to opts. If opts == nil,
// default options are used (see Options).
//
// If the input cannot be tokenized, the error has concrete type *LexError.
// Otherwise, without tolerance the first grammar violation is reported as a
// *SyntaxError. With tolerance, Parse recovers from violations; if any were
// found, it returns the recovered value along with a *ToleranceError that
// also carries the value and the list of warnings.
func Parse(text string, opts *Options) (ast.Value, error) {
	var p Parser
	if opts != nil {
		p.opts = *opts
	}
	return p.Parse(text)
}

// ParseAny is as Parse, but accepts options in any form accepted by
// DecodeOptions. Invalid options are reported before any input is examined.
func ParseAny(text string, opts any) (ast.Value, error) {
	o, err := DecodeOptions(opts)
	if err != nil {
		return nil, err
	}
	return Parse(text, &o)
}

// A Parser parses relaxed JSON text into values. A Parser does not retain
// state between calls, and is safe for concurrent use as long as its reviver
// is.
type Parser struct {
	opts Options
}

// NewParser constructs a Parser with the given options.
func NewParser(opts Options) *Parser { return &Parser{opts: opts} }

// Parse parses text as a single JSON value. See the package-level Parse for
// a description of the results.
func (p *Parser) Parse(text string) (_ ast.Value, err error) {
	toks, err := Tokenize(text, !p.opts.Strict)
	if err != nil {
		return nil, err
	}
	if !p.opts.Strict {
		toks = ElideTrailingCommas(toks)
	}

	st := newParseState(toks, p.opts)
	defer recoverSyntaxError(&err)

	v := st.parseTop()
	if p.opts.Reviver != nil {
		v = revive(p.opts.Reviver, v)
	}
	if len(st.warnings) != 0 {
		return v, newToleranceError(st.warnings, v)
	}
	return v, nil
}

func recoverSyntaxError(errp *error) {
	if x := recover(); x != nil {
		serr, ok := x.(*SyntaxError)
		if !ok {
			panic(x)
		}
		*errp = serr
	}
}

var (
	punctuation = mapset.New(Comma, Colon, RSquare, RBrace)

	objectStart = mapset.New(Colon, RBrace) // after "{"
	arrayStart  = mapset.New(RSquare)       // after "["
	keyStart    = mapset.New(Colon)         // at an object key
)

// parseState is the state of a single call to Parse.
type parseState struct {
	toks []Token // without whitespace or the final EOF
	pos  int
	eof  Token

	tolerant  bool
	duplicate bool
	warnings  []Warning
}

func newParseState(toks []Token, opts Options) *parseState {
	st := &parseState{
		toks:      make([]Token, 0, len(toks)),
		tolerant:  opts.Tolerant,
		duplicate: opts.Duplicate,
	}
	for _, tok := range toks {
		switch tok.Kind {
		case Whitespace:
			// skip
		case EOF:
			st.eof = tok
		default:
			st.toks = append(st.toks, tok)
		}
	}
	return st
}

// pop consumes and returns the next token. Once the input is exhausted, pop
// returns EOF. The cursor advances either way, so that unpop always undoes
// the effect of the previous pop.
func (st *parseState) pop() Token {
	i := st.pos
	st.pos++
	if i < len(st.toks) {
		return st.toks[i]
	}
	return st.eof
}

// unpop pushes back the most recently popped token.
func (st *parseState) unpop() { st.pos-- }

// violation reports a grammar violation at the given line. In tolerant mode,
// the violation is recorded as a warning and the caller must recover;
// otherwise parsing terminates with a *SyntaxError.
func (st *parseState) violation(line int, msg string) {
	if !st.tolerant {
		panic(&SyntaxError{Message: msg, Line: line})
	}
	st.warnings = append(st.warnings, Warning{Message: msg, Line: line})
}

// unexpected reports that tok was found where want was expected.
func (st *parseState) unexpected(tok Token, want string) {
	st.violation(tok.Line, fmt.Sprintf("Unexpected token: %s, expected %s", tok.describe(), want))
}

// A recovery describes how a tolerant parser proceeds after finding an
// unexpected token: it continues as if subst had been found, and if rewind
// is true, the unexpected token is pushed back to be read again.
type recovery struct {
	subst  Token
	rewind bool
}

// apply records the recovery and returns the substitute token.
func (st *parseState) apply(r recovery) Token {
	if r.rewind {
		st.unpop()
	}
	return r.subst
}

// synthesize constructs a token of the given kind in place of found.
func synthesize(kind Kind, found Token) Token {
	return Token{Kind: kind, Text: kindText[kind], Line: found.Line, Span: found.Span}
}

var kindText = map[Kind]string{LBrace: "{", RBrace: "}", LSquare: "[", RSquare: "]", Comma: ",", Colon: ":"}

// keyToken constructs a string token for use as an object key.
func keyToken(key string, found Token) Token {
	s := ast.String(key)
	return Token{Kind: String, Text: s.JSON(), Value: s, Line: found.Line, Span: found.Span}
}

// parseTop parses a complete input consisting of a single value.
func (st *parseState) parseTop() ast.Value {
	v := st.parseAny()
	if st.pos < len(st.toks) {
		// Any remaining tokens are reported, and in tolerant mode ignored.
		st.unexpected(st.toks[st.pos], "end-of-input")
	}
	return v
}

// skipPunctuation returns the next token that is in valid or that could
// begin a value. Other punctuation is a violation, and in tolerant mode is
// discarded. EOF is always returned.
func (st *parseState) skipPunctuation(valid mapset.Set[Kind]) Token {
	tok := st.pop()
	for {
		if valid.Has(tok.Kind) || tok.Kind == EOF || !punctuation.Has(tok.Kind) {
			return tok
		}
		st.unexpected(tok, "'[', '{', number, string or atom")
		tok = st.pop()
	}
}

// parseAny parses a value of any type.
func (st *parseState) parseAny() ast.Value {
	tok := st.skipPunctuation(nil)
	switch tok.Kind {
	case LBrace:
		return st.parseObject()
	case LSquare:
		return st.parseArray()
	case Atom, Number, String:
		return tok.Value
	case EOF:
		st.unexpected(tok, "json object")
	}
	return ast.Null{}
}

// A sequence describes the syntax of a bracketed, comma-separated sequence.
type sequence struct {
	start   mapset.Set[Kind] // tokens accepted after the opening bracket
	end     Kind             // closing bracket
	element string           // description of an element, for diagnostics
	parse   func()           // parse one element
}

// parseSequence parses the elements of a sequence after its open bracket,
// through its close bracket.
func (st *parseState) parseSequence(seq sequence) {
	tok := st.skipPunctuation(seq.start)
	if tok.Kind == EOF {
		st.unexpected(tok, fmt.Sprintf("%s or %s", seq.end, seq.element))
		tok = st.apply(recovery{subst: synthesize(seq.end, tok)})
	}
	if tok.Kind == seq.end {
		return
	}
	st.unpop()
	seq.parse()

	for {
		tok := st.pop()
		if tok.Kind != seq.end && tok.Kind != Comma {
			st.unexpected(tok, fmt.Sprintf("%s or %s", Comma, seq.end))
			if tok.Kind == EOF {
				tok = st.apply(recovery{subst: synthesize(seq.end, tok), rewind: true})
			} else {
				tok = st.apply(recovery{subst: synthesize(Comma, tok), rewind: true})
			}
		}
		if tok.Kind == seq.end {
			return
		}
		seq.parse()
	}
}

// parseArray parses an array after its open bracket.
func (st *parseState) parseArray() ast.Value {
	arr := ast.Array{}
	st.parseSequence(sequence{
		start:   arrayStart,
		end:     RSquare,
		element: "json object",
		parse:   func() { arr = append(arr, st.parseAny()) },
	})
	return arr
}

// An objectBuilder accumulates the members of an object.
type objectBuilder struct {
	obj   ast.Object
	index map[string]int
}

func (b *objectBuilder) has(key string) bool { _, ok := b.index[key]; return ok }

// set adds or replaces the value of key. A replaced key keeps the position of
// its first occurrence.
func (b *objectBuilder) set(key string, v ast.Value) {
	if i, ok := b.index[key]; ok {
		b.obj[i].Value = v
		return
	}
	b.index[key] = len(b.obj)
	b.obj = append(b.obj, ast.Field(key, v))
}

// parseObject parses an object after its open brace.
func (st *parseState) parseObject() ast.Value {
	b := &objectBuilder{obj: ast.Object{}, index: make(map[string]int)}
	st.parseSequence(sequence{
		start:   objectStart,
		end:     RBrace,
		element: "string",
		parse:   func() { st.parsePair(b) },
	})
	return b.obj
}

// parsePair parses a single key: value member of an object.
func (st *parseState) parsePair(b *objectBuilder) {
	tok := st.skipPunctuation(keyStart)
	if tok.Kind != String {
		st.unexpected(tok, "string")
		switch tok.Kind {
		case Colon:
			// The key is missing; read the colon again.
			tok = st.apply(recovery{subst: keyToken("null", tok), rewind: true})
		case Number, Atom:
			tok = st.apply(recovery{subst: keyToken(keyText(tok.Value), tok)})
		case LBrace, LSquare:
			// Both the key and the colon are missing.
			key := st.apply(recovery{subst: keyToken("null", tok), rewind: true})
			v := st.parseAny()
			st.checkDuplicate(b, key)
			b.set(string(key.Value.(ast.String)), v)
			return
		case EOF:
			return
		default:
			tok = st.apply(recovery{subst: keyToken("null", tok)})
		}
	}

	st.checkDuplicate(b, tok)
	key := string(tok.Value.(ast.String))
	st.skipColon()
	b.set(key, st.parseAny())
}

// skipColon consumes the colon following an object key.
func (st *parseState) skipColon() {
	if tok := st.pop(); tok.Kind != Colon {
		st.unexpected(tok, Colon.String())
		st.apply(recovery{subst: synthesize(Colon, tok), rewind: true})
	}
}

// checkDuplicate reports a violation if duplicate keys are disallowed and
// the key of tok is already present in b.
func (st *parseState) checkDuplicate(b *objectBuilder, tok Token) {
	key := string(tok.Value.(ast.String))
	if st.duplicate && b.has(key) {
		st.violation(tok.Line, "Duplicate key: "+key)
	}
}

// keyText returns the text of v as an object key.
func keyText(v ast.Value) string {
	if s, ok := v.(ast.String); ok {
		return string(s)
	}
	return v.JSON()
}
