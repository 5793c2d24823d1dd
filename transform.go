package rjson

import "strings"

// Transform rewrites relaxed JSON text into standard JSON text. Comments are
// replaced by spaces, single-quoted strings and bare identifiers are converted
// to double-quoted strings, and trailing commas are removed. Text that is
// already standard JSON is returned unchanged.
//
// Transform does not check the structure of its input, so the result is not
// guaranteed to be valid JSON. It fails only if the input cannot be
// tokenized, in which case the error has concrete type *LexError.
func Transform(text string) (string, error) {
	toks, err := relaxedLexer.Tokenize(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, tok := range ElideTrailingCommas(toks) {
		sb.WriteString(tok.Text)
	}
	return sb.String(), nil
}
