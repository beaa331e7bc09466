// File: assembler.go
// Title: Block Assembler
// Description: Nests flat classified statements into trees. Open blocks
//              live on an explicit frame stack rather than in call
//              recursion, so depth is bounded and unterminated blocks can
//              be reported with their opening statement.

package assembler

import (
	ionerr "github.com/amw-zero/ion/core/error"
	ionlog "github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell/ast"
)

// branch identifies where an open If frame currently routes statements
type branch int

const (
	branchSuccess branch = iota
	branchElseIf
	branchFailure
)

// frame is one open block awaiting its closing end
type frame struct {
	opener ast.Statement

	// Active branch tracking, meaningful only when opener is an If.
	active branch
}

// Assembler accumulates classified statements and assembles block
// bodies. Completed top-level statements are returned from Push as they
// close; statements inside open blocks are retained until the block
// completes.
type Assembler struct {
	stack  []frame
	logger *ionlog.Logger
}

// Options configures an Assembler
type Options struct {
	Logger *ionlog.Logger
}

// New creates a new Assembler
func New(opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = ionlog.GetDefault()
	}
	return &Assembler{
		logger: logger.WithField("component", "assembler"),
	}
}

// InBlock reports whether at least one block is open
func (a *Assembler) InBlock() bool {
	return len(a.stack) > 0
}

// Depth returns the number of open blocks
func (a *Assembler) Depth() int {
	return len(a.stack)
}

// Push feeds one classified statement into the assembler. When the
// statement completes a top-level construct (a plain statement outside
// any block, or the end closing the outermost block), that construct is
// returned; otherwise the result is nil and the statement was retained
// inside an open block.
func (a *Assembler) Push(stmt ast.Statement) (ast.Statement, error) {
	switch s := stmt.(type) {
	case *ast.Default:
		// No-ops never enter block bodies.
		return nil, nil

	case *ast.If, *ast.Function, *ast.For, *ast.While:
		a.stack = append(a.stack, frame{opener: stmt})
		a.logger.Trace("opened block",
			ionlog.String("kind", stmt.Kind().String()), ionlog.Int("depth", len(a.stack)))
		return nil, nil

	case *ast.ElseIf:
		top, err := a.top("else if")
		if err != nil {
			return nil, err
		}
		ifStmt, ok := top.opener.(*ast.If)
		if !ok {
			return nil, a.structureErr("else if outside an if block", stmt)
		}
		if top.active == branchFailure {
			return nil, a.structureErr("else if after else", stmt)
		}
		ifStmt.ElseIf = append(ifStmt.ElseIf, s)
		top.active = branchElseIf
		return nil, nil

	case *ast.Else:
		top, err := a.top("else")
		if err != nil {
			return nil, err
		}
		if _, ok := top.opener.(*ast.If); !ok {
			return nil, a.structureErr("else outside an if block", stmt)
		}
		if top.active == branchFailure {
			return nil, a.structureErr("duplicate else", stmt)
		}
		top.active = branchFailure
		return nil, nil

	case *ast.End:
		if len(a.stack) == 0 {
			return nil, a.structureErr("end without an open block", stmt)
		}
		closed := a.stack[len(a.stack)-1].opener
		a.stack = a.stack[:len(a.stack)-1]
		a.logger.Trace("closed block",
			ionlog.String("kind", closed.Kind().String()), ionlog.Int("depth", len(a.stack)))

		if len(a.stack) == 0 {
			return closed, nil
		}
		a.attach(closed)
		return nil, nil

	default:
		if len(a.stack) == 0 {
			return stmt, nil
		}
		a.attach(stmt)
		return nil, nil
	}
}

// Finish reports an error if blocks are still open, naming the
// innermost unterminated one.
func (a *Assembler) Finish() error {
	if len(a.stack) == 0 {
		return nil
	}
	innermost := a.stack[len(a.stack)-1].opener
	return ionerr.Newf("unterminated block: %s", innermost.String()).
		WithCode(ionerr.CodeSyntax).
		WithOperation("assembler.Finish").
		WithDetail("open_blocks", len(a.stack))
}

// Reset discards all open blocks
func (a *Assembler) Reset() {
	a.stack = a.stack[:0]
}

// attach adds a completed statement to the innermost open block's
// active branch.
func (a *Assembler) attach(stmt ast.Statement) {
	top := &a.stack[len(a.stack)-1]

	switch opener := top.opener.(type) {
	case *ast.If:
		switch top.active {
		case branchSuccess:
			opener.Success = append(opener.Success, stmt)
		case branchElseIf:
			current := opener.ElseIf[len(opener.ElseIf)-1]
			current.Success = append(current.Success, stmt)
		case branchFailure:
			opener.Failure = append(opener.Failure, stmt)
		}
	case *ast.Function:
		opener.Statements = append(opener.Statements, stmt)
	case *ast.For:
		opener.Statements = append(opener.Statements, stmt)
	case *ast.While:
		opener.Statements = append(opener.Statements, stmt)
	}
}

// top returns the innermost open frame or an error when none is open
func (a *Assembler) top(context string) (*frame, error) {
	if len(a.stack) == 0 {
		return nil, ionerr.New(context + " without an open block").
			WithCode(ionerr.CodeSyntax).
			WithOperation("assembler.Push")
	}
	return &a.stack[len(a.stack)-1], nil
}

func (a *Assembler) structureErr(message string, stmt ast.Statement) error {
	return ionerr.New(message).
		WithCode(ionerr.CodeSyntax).
		WithOperation("assembler.Push").
		WithDetail("statement", stmt.String())
}
