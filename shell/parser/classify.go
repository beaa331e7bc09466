// File: classify.go
// Title: Statement Classifier
// Description: Classifies one logical line of shell source into a
//              statement value. Keyword rules are tried from an explicit
//              ordered table; a matched keyword prefix is a commit point,
//              so later failures inside that rule fail the whole line
//              instead of falling through to another interpretation.

package parser

import (
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
	ionlog "github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell/ast"
	"github.com/amw-zero/ion/shell/pipeline"
	"github.com/amw-zero/ion/shell/words"
	"github.com/amw-zero/ion/utils/stringx"
)

// ruleFunc attempts one keyword rule against a line. matched reports
// whether the rule's keyword prefix was recognized; once matched is true
// a non-nil error is final for the line.
type ruleFunc func(line string) (stmt ast.Statement, matched bool, err error)

// rule pairs a keyword rule with its name for logging
type rule struct {
	name  string
	parse ruleFunc
}

// rules is the ordered alternative table. The order is load-bearing:
// "else if" must precede "else", and every keyword rule precedes the
// pipeline fallback, so a command literally named "if" or "for" always
// parses as the keyword.
var rules = []rule{
	{"let", parseLet},
	{"if", parseIf},
	{"else if", parseElseIf},
	{"else", parseElse},
	{"for", parseFor},
	{"while", parseWhile},
	{"fn", parseFn},
	{"end", parseEnd},
	{"break", parseBreak},
}

// Options configures a Parser
type Options struct {
	Logger *ionlog.Logger
}

// Parser classifies lines into statements. It holds no parse state, so
// a single Parser is safe for concurrent use on independent lines.
type Parser struct {
	logger *ionlog.Logger
}

// New creates a new Parser
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = ionlog.GetDefault()
	}
	return &Parser{
		logger: logger.WithField("component", "parser"),
	}
}

// Classify classifies one line (or a small run of blank/comment lines)
// into a statement. Classification is a pure function of the input text.
func (p *Parser) Classify(line string) (ast.Statement, error) {
	for _, r := range rules {
		stmt, matched, err := r.parse(line)
		if err != nil {
			p.logger.Debug("keyword rule failed",
				ionlog.String("rule", r.name), ionlog.Err(err))
			return nil, err
		}
		if matched {
			p.logger.Trace("keyword rule matched",
				ionlog.String("rule", r.name), ionlog.String("kind", stmt.Kind().String()))
			return stmt, nil
		}
	}
	return p.classifyFallback(line)
}

// Classify classifies a line using a default Parser
func Classify(line string) (ast.Statement, error) {
	return defaultParser.Classify(line)
}

var defaultParser = New(Options{})

// matchKeyword checks whether line starts with keyword (after optional
// leading blanks) ending at a word boundary. It returns the remainder
// with its leading whitespace intact.
func matchKeyword(line, keyword string) (rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, keyword) {
		return "", false
	}
	rest = trimmed[len(keyword):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

func parseLet(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "let")
	if !ok {
		return nil, false, nil
	}
	return &ast.Let{Expression: strings.TrimLeft(rest, " \t")}, true, nil
}

func parseIf(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "if")
	if !ok {
		return nil, false, nil
	}
	expr, err := pipeline.Collect(strings.TrimSpace(rest))
	if err != nil {
		return nil, true, delegatedErr(err, line)
	}
	return &ast.If{Expression: expr}, true, nil
}

func parseElseIf(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "else")
	if !ok {
		return nil, false, nil
	}
	rest, ok = matchKeyword(rest, "if")
	if !ok {
		return nil, false, nil
	}
	expr, err := pipeline.Collect(strings.TrimSpace(rest))
	if err != nil {
		return nil, true, delegatedErr(err, line)
	}
	return &ast.ElseIf{Expression: expr}, true, nil
}

func parseElse(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "else")
	if !ok || strings.TrimSpace(rest) != "" {
		return nil, false, nil
	}
	return &ast.Else{}, true, nil
}

func parseFor(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "for")
	if !ok {
		return nil, false, nil
	}

	variable, rest := scanName(strings.TrimLeft(rest, " \t"))
	if variable == "" {
		return nil, true, syntaxErr("expected loop variable after for", line)
	}

	rest, ok = matchKeyword(rest, "in")
	if !ok {
		return nil, true, syntaxErr("expected 'in' after loop variable", line)
	}

	values, err := words.Split(strings.TrimSpace(rest))
	if err != nil {
		return nil, true, delegatedErr(err, line)
	}
	return &ast.For{Variable: variable, Values: values}, true, nil
}

func parseWhile(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "while")
	if !ok {
		return nil, false, nil
	}
	expr, err := pipeline.Collect(strings.TrimSpace(rest))
	if err != nil {
		return nil, true, delegatedErr(err, line)
	}
	return &ast.While{Expression: expr}, true, nil
}

func parseFn(line string) (ast.Statement, bool, error) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "fn") {
		return nil, false, nil
	}
	rest := trimmed[len("fn"):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false, nil
	}

	// A single space must separate the keyword from the name.
	if len(rest) == 0 || rest[0] != ' ' {
		return nil, true, syntaxErr("expected function name after fn", line)
	}

	name, rest := scanName(rest[1:])
	if name == "" {
		return nil, true, syntaxErr("expected function name after fn", line)
	}

	var args []string
	for _, field := range strings.Fields(rest) {
		if !isArgToken(field) {
			return nil, true, syntaxErr("invalid function argument name: "+field, line)
		}
		args = append(args, field)
	}

	return &ast.Function{Name: name, Args: args}, true, nil
}

func parseEnd(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "end")
	if !ok || strings.TrimSpace(rest) != "" {
		return nil, false, nil
	}
	return &ast.End{}, true, nil
}

func parseBreak(line string) (ast.Statement, bool, error) {
	rest, ok := matchKeyword(line, "break")
	if !ok || strings.TrimSpace(rest) != "" {
		return nil, false, nil
	}
	return &ast.Break{}, true, nil
}

// classifyFallback handles lines no keyword rule claimed: blank lines
// and comment-only runs become Default, anything else goes to the
// pipeline collector.
func (p *Parser) classifyFallback(line string) (ast.Statement, error) {
	if isUnusedRun(line) {
		p.logger.Trace("classified no-op run")
		return &ast.Default{}, nil
	}

	cmd := strings.TrimLeft(line, " \t\n")
	pipe, err := pipeline.Collect(cmd)
	if err != nil {
		p.logger.Debug("pipeline collection failed", ionlog.Err(err))
		return nil, delegatedErr(err, line)
	}
	p.logger.Trace("classified pipeline",
		ionlog.String("pipeline", stringx.Truncate(pipe.String(), 80, "...")))
	return &ast.Command{Pipeline: pipe}, nil
}

// isUnusedRun reports whether text consists only of whitespace and
// comments. A comment runs from '#' to the next line break or the end
// of input.
func isUnusedRun(text string) bool {
	i := 0
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			i++
		case '#':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		default:
			return false
		}
	}
	return true
}

// syntaxErr builds the diagnostic for a malformed keyword statement.
// Multi-line chunks are cut down to their first line in the detail.
func syntaxErr(message, line string) error {
	return ionerr.New(message).
		WithCode(ionerr.CodeSyntax).
		WithOperation("parser.Classify").
		WithDetail("line", stringx.FirstLine(line))
}

// delegatedErr wraps a failure reported by the pipeline collector or the
// word splitter, preserving the original cause.
func delegatedErr(err error, line string) error {
	return ionerr.Wrap(err, "statement parse failed").
		WithCode(ionerr.CodeDelegated).
		WithOperation("parser.Classify").
		WithDetail("line", stringx.FirstLine(line))
}
