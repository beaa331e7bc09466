// File: statement_test.go
// Title: Statement Type Tests
// Description: Tests statement kinds, renderings, and tree traversal.

package ast

import (
	"testing"

	"github.com/amw-zero/ion/shell/pipeline"
)

func echoPipeline(arg string) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Jobs: []pipeline.Job{{Command: "echo", Args: []string{arg}}},
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		stmt Statement
		kind Kind
		name string
	}{
		{&Let{Expression: "x = 1"}, KindLet, "let"},
		{&If{Expression: echoPipeline("a")}, KindIf, "if"},
		{&ElseIf{Expression: echoPipeline("b")}, KindElseIf, "else if"},
		{&Else{}, KindElse, "else"},
		{&End{}, KindEnd, "end"},
		{&Break{}, KindBreak, "break"},
		{&Function{Name: "f"}, KindFunction, "fn"},
		{&For{Variable: "x"}, KindFor, "for"},
		{&While{Expression: echoPipeline("c")}, KindWhile, "while"},
		{&Command{Pipeline: echoPipeline("d")}, KindPipeline, "pipeline"},
		{&Default{}, KindDefault, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.stmt.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.stmt.Kind(), tt.kind)
			}
			if tt.kind.String() != tt.name {
				t.Errorf("Kind.String() = %q, want %q", tt.kind.String(), tt.name)
			}
		})
	}
}

func TestStatementString(t *testing.T) {
	tests := []struct {
		stmt Statement
		want string
	}{
		{&Let{Expression: "x = 1"}, "let x = 1"},
		{&Function{Name: "greet", Args: []string{"a", "b"}}, "fn greet a b"},
		{&Function{Name: "greet"}, "fn greet"},
		{&For{Variable: "x", Values: []string{"1", "2"}}, "for x in 1 2"},
		{&Command{Pipeline: echoPipeline("hi")}, "echo hi"},
		{&End{}, "end"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	tree := []Statement{
		&Let{Expression: "x = 1"},
		&If{
			Expression: echoPipeline("cond"),
			Success: []Statement{
				&Command{Pipeline: echoPipeline("yes")},
			},
			ElseIf: []*ElseIf{
				{
					Expression: echoPipeline("other"),
					Success: []Statement{
						&Command{Pipeline: echoPipeline("maybe")},
					},
				},
			},
			Failure: []Statement{
				&Command{Pipeline: echoPipeline("no")},
			},
		},
		&While{
			Expression: echoPipeline("loop"),
			Statements: []Statement{
				&Break{},
			},
		},
	}

	if got := Count(tree); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}

	// Returning false stops descent into a statement's bodies.
	visited := 0
	Walk(tree, func(s Statement) bool {
		visited++
		return s.Kind() != KindIf
	})
	if visited != 4 {
		t.Errorf("visited %d statements with pruned walk, want 4", visited)
	}
}
