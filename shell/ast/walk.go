// File: walk.go
// Title: Statement Tree Traversal
// Description: Provides depth-first traversal over assembled statement
//              trees, visiting nested block bodies in source order.

package ast

// Visitor is called for each statement during a walk. Returning false
// stops descent into that statement's bodies but continues with siblings.
type Visitor func(Statement) bool

// Walk traverses statements depth-first in source order
func Walk(statements []Statement, visit Visitor) {
	for _, stmt := range statements {
		if !visit(stmt) {
			continue
		}
		switch s := stmt.(type) {
		case *If:
			Walk(s.Success, visit)
			for _, branch := range s.ElseIf {
				Walk(branch.Success, visit)
			}
			Walk(s.Failure, visit)
		case *Function:
			Walk(s.Statements, visit)
		case *For:
			Walk(s.Statements, visit)
		case *While:
			Walk(s.Statements, visit)
		}
	}
}

// Count returns the number of statements in the tree, including nested
// block bodies.
func Count(statements []Statement) int {
	n := 0
	Walk(statements, func(Statement) bool {
		n++
		return true
	})
	return n
}
