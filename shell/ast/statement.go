// File: statement.go
// Title: Statement Type Definitions
// Description: Defines the tagged union of statement kinds produced by the
//              line classifier. Control statements carry empty body slices
//              at creation time; the block assembler fills them in.

package ast

import (
	"fmt"
	"strings"

	"github.com/amw-zero/ion/shell/pipeline"
)

// Statement is the result of classifying one logical line of input.
// Exactly one concrete type implements each statement kind.
type Statement interface {
	// Kind returns the statement kind for dispatch and diagnostics
	Kind() Kind

	// String returns a compact human-readable rendering
	String() string
}

// Kind identifies a statement variant
type Kind int

const (
	KindLet Kind = iota
	KindIf
	KindElseIf
	KindElse
	KindEnd
	KindBreak
	KindFunction
	KindFor
	KindWhile
	KindPipeline
	KindDefault
)

// String returns the name of the statement kind
func (k Kind) String() string {
	switch k {
	case KindLet:
		return "let"
	case KindIf:
		return "if"
	case KindElseIf:
		return "else if"
	case KindElse:
		return "else"
	case KindEnd:
		return "end"
	case KindBreak:
		return "break"
	case KindFunction:
		return "fn"
	case KindFor:
		return "for"
	case KindWhile:
		return "while"
	case KindPipeline:
		return "pipeline"
	case KindDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Let holds a variable assignment expression, captured verbatim.
// Expression evaluation happens downstream.
type Let struct {
	Expression string
}

func (s *Let) Kind() Kind { return KindLet }

func (s *Let) String() string {
	return fmt.Sprintf("let %s", s.Expression)
}

// ElseIf is a conditional branch of an open If block. It is a standalone
// type rather than only a statement case because an If accumulates an
// ordered sequence of these before its failure branch.
type ElseIf struct {
	Expression *pipeline.Pipeline
	Success    []Statement
}

func (s *ElseIf) Kind() Kind { return KindElseIf }

func (s *ElseIf) String() string {
	return fmt.Sprintf("else if %s", s.Expression)
}

// If is a conditional with a success branch, zero or more else-if
// branches, and a failure branch. All branches are empty at creation.
type If struct {
	Expression *pipeline.Pipeline
	Success    []Statement
	ElseIf     []*ElseIf
	Failure    []Statement
}

func (s *If) Kind() Kind { return KindIf }

func (s *If) String() string {
	return fmt.Sprintf("if %s", s.Expression)
}

// Else marks the failure branch of an open If block
type Else struct{}

func (s *Else) Kind() Kind { return KindElse }

func (s *Else) String() string { return "else" }

// End closes the innermost open block
type End struct{}

func (s *End) Kind() Kind { return KindEnd }

func (s *End) String() string { return "end" }

// Break exits the innermost enclosing loop
type Break struct{}

func (s *Break) Kind() Kind { return KindBreak }

func (s *Break) String() string { return "break" }

// Function is a named function definition with ordered parameters.
// Statements is empty at creation.
type Function struct {
	Name       string
	Args       []string
	Statements []Statement
}

func (s *Function) Kind() Kind { return KindFunction }

func (s *Function) String() string {
	if len(s.Args) == 0 {
		return fmt.Sprintf("fn %s", s.Name)
	}
	return fmt.Sprintf("fn %s %s", s.Name, strings.Join(s.Args, " "))
}

// For iterates a loop variable over a finite ordered sequence of values.
// Statements is empty at creation.
type For struct {
	Variable   string
	Values     []string
	Statements []Statement
}

func (s *For) Kind() Kind { return KindFor }

func (s *For) String() string {
	return fmt.Sprintf("for %s in %s", s.Variable, strings.Join(s.Values, " "))
}

// While repeats its body as long as the expression succeeds.
// Statements is empty at creation.
type While struct {
	Expression *pipeline.Pipeline
	Statements []Statement
}

func (s *While) Kind() Kind { return KindWhile }

func (s *While) String() string {
	return fmt.Sprintf("while %s", s.Expression)
}

// Command is a bare command line wrapped around its collected pipeline
type Command struct {
	Pipeline *pipeline.Pipeline
}

func (s *Command) Kind() Kind { return KindPipeline }

func (s *Command) String() string {
	return s.Pipeline.String()
}

// Default is the no-op result for blank lines and comment-only runs
type Default struct{}

func (s *Default) Kind() Kind { return KindDefault }

func (s *Default) String() string { return "" }
