// File: tokens.go
// Title: Identifier Token Recognition
// Description: Byte-level predicates and scanners for the two identifier
//              token classes used by statement rules: name tokens (function
//              and loop-variable names) and argument tokens (function
//              parameter names).

package parser

// isNameByte reports whether b may appear in a name token. Accepted are
// digits plus the inclusive byte range 'A' through 'z'. That range spans
// both letter blocks and therefore also admits the punctuation sitting
// between them ('[', '\', ']', '^', '_', '`'). Underscore in names is
// relied upon; the rest of that punctuation comes along with the range.
func isNameByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'z')
}

// isArgByte reports whether b may appear in an argument token. Argument
// tokens are stricter than name tokens: letters and digits only, no
// underscore.
func isArgByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanName reads a name token from the start of text and returns the
// token and the unconsumed remainder. An empty token means no name was
// present.
func scanName(text string) (name, rest string) {
	i := 0
	for i < len(text) && isNameByte(text[i]) {
		i++
	}
	return text[:i], text[i:]
}

// isArgToken reports whether text is a well-formed, non-empty argument
// token.
func isArgToken(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isArgByte(text[i]) {
			return false
		}
	}
	return true
}
