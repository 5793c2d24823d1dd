package rjson

import "strings"

// A Lexer splits input text into tokens according to an ordered table of
// rules. A Lexer is immutable and safe for concurrent use.
type Lexer struct {
	rules []Rule
}

// MakeLexer constructs a Lexer that tokenizes input using rules. At each
// position of the input, the rules are tried in order, and the first rule
// whose pattern matches a non-empty prefix of the remaining input produces
// the next token.
func MakeLexer(rules []Rule) *Lexer {
	return &Lexer{rules: append([]Rule(nil), rules...)}
}

var (
	strictLexer  = MakeLexer(strictRules)
	relaxedLexer = MakeLexer(relaxedRules)
)

// Tokenize splits text into tokens using the built-in relaxed (true) or
// strict (false) lexer table.
func Tokenize(text string, relaxed bool) ([]Token, error) {
	if relaxed {
		return relaxedLexer.Tokenize(text)
	}
	return strictLexer.Tokenize(text)
}

// Tokenize splits text into a complete sequence of tokens. The result always
// ends with a single EOF token. If some portion of the input does not match
// any rule, Tokenize reports an error of concrete type *LexError.
func (lx *Lexer) Tokenize(text string) ([]Token, error) {
	var toks []Token
	line, pos := 1, 0
	for pos < len(text) {
		tok, n, err := lx.match(text[pos:])
		if err != nil || n == 0 {
			return nil, &LexError{Line: line, Offset: pos, err: err}
		}
		tok.Line = line
		tok.Span = Span{Pos: pos, End: pos + n}
		toks = append(toks, tok)

		line += strings.Count(text[pos:pos+n], "\n")
		pos += n
	}
	return append(toks, Token{Kind: EOF, Line: line, Span: Span{Pos: pos, End: pos}}), nil
}

// match finds the first rule matching a prefix of rest, and returns the
// resulting token and the number of bytes it consumed. It returns 0 if no
// rule matches.
func (lx *Lexer) match(rest string) (Token, int, error) {
	for _, r := range lx.rules {
		m := r.Pattern.FindStringSubmatch(rest)
		if m == nil || m[0] == "" {
			continue
		}
		tok, err := r.Make(m)
		if err != nil {
			return Token{}, 0, err
		}
		return tok, len(m[0]), nil
	}
	return Token{}, 0, nil
}
