// File: words.go
// Title: Argument Word Splitter
// Description: Splits expression text into discrete argument words,
//              honoring single quotes, double quotes, backslash escapes,
//              brace alternatives, and process expansions. Quote state is
//              tracked with bit flags.

package words

import (
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
)

// Quote state flags
const (
	flagBacksl uint8 = 1 << iota
	flagSQuote
	flagDQuote
)

// Word is one split word. Quoted reports that any part of the word was
// quoted or escaped, so downstream consumers can tell a literal "|" or
// ">" apart from an operator.
type Word struct {
	Text   string
	Quoted bool
}

// wordPart is a segment of a word under assembly: either literal text or
// a set of brace alternatives.
type wordPart struct {
	text string
	alts []string
}

// Split splits expression text into an ordered sequence of word texts.
// It is SplitWords without the quoting metadata.
func Split(text string) ([]string, error) {
	ws, err := SplitWords(text)
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Text
	}
	return out, nil
}

// SplitWords splits expression text into an ordered sequence of words.
// Unquoted whitespace separates words. Single quotes preserve their
// contents literally, double quotes preserve whitespace but honor
// backslash escapes, and a backslash outside single quotes escapes the
// following character. Quote characters themselves are removed.
//
// An unquoted brace group with comma-separated alternatives expands the
// word into one word per alternative ("x{a,b}" yields "xa" and "xb"); a
// group without a comma stays literal. An unquoted "$(" groups text up
// to the matching ")" into the containing word, so a process expansion
// survives splitting intact for the expansion layer.
//
// An unterminated quote, process expansion, or trailing backslash is an
// error.
func SplitWords(text string) ([]Word, error) {
	var (
		out     []Word
		current strings.Builder
		parts   []wordPart
		flags   uint8
		inWord  bool
		quoted  bool

		procDepth int
		inBrace   bool
		braceAlts []string
		braceCur  strings.Builder
	)

	flushWord := func() {
		if !inWord {
			return
		}
		parts = append(parts, wordPart{text: current.String()})

		texts := []string{""}
		for _, p := range parts {
			if p.alts == nil {
				for j := range texts {
					texts[j] += p.text
				}
				continue
			}
			next := make([]string, 0, len(texts)*len(p.alts))
			for _, t := range texts {
				for _, a := range p.alts {
					next = append(next, t+a)
				}
			}
			texts = next
		}
		for _, t := range texts {
			out = append(out, Word{Text: t, Quoted: quoted})
		}

		current.Reset()
		parts = nil
		inWord = false
		quoted = false
	}

	for i := 0; i < len(text); i++ {
		b := text[i]

		// Inside $( ) everything passes through until the parens balance.
		if procDepth > 0 {
			current.WriteByte(b)
			switch b {
			case '(':
				procDepth++
			case ')':
				procDepth--
			}
			continue
		}

		if inBrace {
			switch {
			case flags&flagBacksl != 0:
				braceCur.WriteByte(b)
				flags ^= flagBacksl
			case b == '\\':
				flags ^= flagBacksl
			case b == ',':
				braceAlts = append(braceAlts, braceCur.String())
				braceCur.Reset()
			case b == '}':
				if len(braceAlts) == 0 {
					parts = append(parts, wordPart{text: "{" + braceCur.String() + "}"})
				} else {
					parts = append(parts, wordPart{alts: append(braceAlts, braceCur.String())})
				}
				braceAlts = nil
				braceCur.Reset()
				inBrace = false
			default:
				braceCur.WriteByte(b)
			}
			continue
		}

		switch {
		case flags&flagBacksl != 0:
			current.WriteByte(b)
			inWord = true
			quoted = true
			flags ^= flagBacksl

		case b == '\\' && flags&flagSQuote == 0:
			flags ^= flagBacksl

		case b == '\'' && flags&flagDQuote == 0:
			flags ^= flagSQuote
			inWord = true
			quoted = true

		case b == '"' && flags&flagSQuote == 0:
			flags ^= flagDQuote
			inWord = true
			quoted = true

		case b == '$' && i+1 < len(text) && text[i+1] == '(' && flags&(flagSQuote|flagDQuote) == 0:
			current.WriteString("$(")
			inWord = true
			procDepth = 1
			i++

		case b == '{' && flags&(flagSQuote|flagDQuote) == 0:
			if current.Len() > 0 {
				parts = append(parts, wordPart{text: current.String()})
				current.Reset()
			}
			inBrace = true
			inWord = true

		case (b == ' ' || b == '\t' || b == '\n') && flags&(flagSQuote|flagDQuote) == 0:
			flushWord()

		default:
			current.WriteByte(b)
			inWord = true
		}
	}

	if flags&flagBacksl != 0 {
		return nil, ionerr.New("trailing backslash").
			WithCode(ionerr.CodeSyntax).
			WithOperation("words.Split").
			WithDetail("text", text)
	}
	if flags&flagSQuote != 0 {
		return nil, ionerr.New("unterminated single quote").
			WithCode(ionerr.CodeSyntax).
			WithOperation("words.Split").
			WithDetail("text", text)
	}
	if flags&flagDQuote != 0 {
		return nil, ionerr.New("unterminated double quote").
			WithCode(ionerr.CodeSyntax).
			WithOperation("words.Split").
			WithDetail("text", text)
	}
	if procDepth > 0 {
		return nil, ionerr.New("unterminated process expansion").
			WithCode(ionerr.CodeSyntax).
			WithOperation("words.Split").
			WithDetail("text", text)
	}

	// An open brace group at end of input stays literal.
	if inBrace {
		parts = append(parts, wordPart{
			text: "{" + strings.Join(append(braceAlts, braceCur.String()), ","),
		})
	}
	flushWord()

	return out, nil
}
