package rjson

// ElideTrailingCommas returns a copy of toks with each trailing comma removed.
// A trailing comma is a Comma token that is followed, apart from whitespace,
// by a closing brace or bracket. The input slice is not modified.
func ElideTrailingCommas(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == RBrace || tok.Kind == RSquare {
			// Only the nearest non-whitespace token is examined.
			for i := len(out) - 1; i >= 0; i-- {
				if out[i].Kind == Whitespace {
					continue
				} else if out[i].Kind == Comma {
					out = append(out[:i], out[i+1:]...)
				}
				break
			}
		}
		out = append(out, tok)
	}
	return out
}
