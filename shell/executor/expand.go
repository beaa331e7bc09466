// File: expand.go
// Title: Word Expansion
// Description: Expands variable references, process expansions, and a
//              leading tilde in command words before execution. Session
//              variables shadow the process environment.

package executor

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
	"github.com/amw-zero/ion/shell/words"
)

// expandWord expands $name, ${name}, $?, $(command) and a leading ~ in
// one word
func (s *State) expandWord(word string) (string, error) {
	if word == "" {
		return word, nil
	}

	var out strings.Builder

	if word[0] == '~' && (len(word) == 1 || word[1] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			out.WriteString(home)
			word = word[1:]
		}
	}

	for i := 0; i < len(word); {
		if word[i] != '$' {
			out.WriteByte(word[i])
			i++
			continue
		}

		// $ at end of word stays literal.
		if i+1 >= len(word) {
			out.WriteByte('$')
			break
		}

		switch {
		case word[i+1] == '?':
			out.WriteString(strconv.Itoa(s.PreviousStatus()))
			i += 2

		case word[i+1] == '(':
			end, ok := matchingParen(word, i+1)
			if !ok {
				return "", ionerr.New("unterminated process expansion").
					WithCode(ionerr.CodeExpansion).
					WithOperation("executor.expand").
					WithDetail("word", word)
			}
			output, err := s.commandOutput(word[i+2 : end])
			if err != nil {
				return "", err
			}
			out.WriteString(output)
			i = end + 1

		case word[i+1] == '{':
			end := strings.IndexByte(word[i+2:], '}')
			if end < 0 {
				out.WriteString(word[i:])
				i = len(word)
				break
			}
			name := word[i+2 : i+2+end]
			out.WriteString(s.lookupVar(name))
			i += 2 + end + 1

		default:
			j := i + 1
			for j < len(word) && isVarByte(word[j]) {
				j++
			}
			if j == i+1 {
				out.WriteByte('$')
				i++
				break
			}
			out.WriteString(s.lookupVar(word[i+1 : j]))
			i = j
		}
	}

	return out.String(), nil
}

// expandWords expands each word in place order
func (s *State) expandWords(in []string) ([]string, error) {
	out := make([]string, len(in))
	for i, w := range in {
		expanded, err := s.expandWord(w)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

// matchingParen locates the ')' balancing the '(' at word[open]
func matchingParen(word string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(word); i++ {
		switch word[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// commandOutput runs the text of a process expansion and returns its
// captured standard output, with trailing newlines removed. A non-zero
// exit still substitutes whatever the command printed.
func (s *State) commandOutput(text string) (string, error) {
	fields, err := words.Split(text)
	if err != nil {
		return "", ionerr.Wrap(err, "process expansion failed").
			WithCode(ionerr.CodeExpansion).
			WithOperation("executor.expand").
			WithDetail("text", text)
	}
	if len(fields) == 0 {
		return "", nil
	}

	expanded, err := s.expandWords(fields)
	if err != nil {
		return "", err
	}

	cmd := exec.Command(expanded[0], expanded[1:]...)
	cmd.Stderr = s.Stderr()
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", ionerr.Wrap(err, "process expansion failed").
				WithCode(ionerr.CodeExpansion).
				WithOperation("executor.expand").
				WithDetail("text", text)
		}
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// lookupVar resolves a variable name against session variables first,
// then the process environment.
func (s *State) lookupVar(name string) string {
	if v, ok := s.GetVar(name); ok {
		return v
	}
	return os.Getenv(name)
}

func isVarByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
