// File: execute.go
// Title: Statement Executor
// Description: Executes assembled statements: runs pipelines through
//              os/exec, dispatches builtins and defined functions, and
//              drives the control-flow statements.

package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
	ionlog "github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell/ast"
	"github.com/amw-zero/ion/shell/builtins"
	"github.com/amw-zero/ion/shell/pipeline"
	"github.com/amw-zero/ion/shell/words"
)

// Options configures an Executor
type Options struct {
	Logger *ionlog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs assembled statements against a session state
type Executor struct {
	state    *State
	registry *builtins.Registry
	jobs     *jobTable
	logger   *ionlog.Logger
}

// New creates an Executor with fresh session state
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger == nil {
		logger = ionlog.GetDefault()
	}
	logger = logger.WithField("component", "executor")

	return &Executor{
		state:    NewState(opts.Stdin, opts.Stdout, opts.Stderr),
		registry: builtins.NewRegistry(),
		jobs:     newJobTable(logger),
		logger:   logger,
	}
}

// State exposes the session state
func (e *Executor) State() *State {
	return e.state
}

// Jobs returns the known background jobs
func (e *Executor) Jobs() []*Job {
	return e.jobs.list()
}

// Execute runs one top-level statement and returns its exit status
func (e *Executor) Execute(ctx context.Context, stmt ast.Statement) int {
	status, _ := e.exec(ctx, stmt)
	e.state.setStatus(status)
	return status
}

// exec runs a statement. The bool result reports that a break statement
// is unwinding to the innermost loop.
func (e *Executor) exec(ctx context.Context, stmt ast.Statement) (int, bool) {
	if err := ctx.Err(); err != nil {
		e.logger.LogError(ionerr.Wrap(err, "execution interrupted").
			WithCode(ionerr.CodeInterrupted).
			WithOperation("executor.Execute"))
		return builtins.StatusFailure, false
	}

	switch s := stmt.(type) {
	case *ast.Default:
		return e.state.PreviousStatus(), false

	case *ast.Let:
		return e.execLet(s), false

	case *ast.Command:
		return e.runPipeline(ctx, s.Pipeline), false

	case *ast.If:
		return e.execIf(ctx, s)

	case *ast.While:
		return e.execWhile(ctx, s), false

	case *ast.For:
		return e.execFor(ctx, s), false

	case *ast.Function:
		e.state.defineFunction(s)
		e.logger.Debug("function defined", ionlog.String("name", s.Name))
		return builtins.StatusSuccess, false

	case *ast.Break:
		return e.state.PreviousStatus(), true

	default:
		// Else, ElseIf and End never survive assembly; seeing one here
		// means the statement stream bypassed the assembler.
		e.logger.LogError(ionerr.Newf("statement %s reached the executor unassembled", stmt.Kind()).
			WithCode(ionerr.CodeInternal).
			WithOperation("executor.Execute"))
		fmt.Fprintf(e.state.Stderr(), "ion: unexpected %s\n", stmt.Kind())
		return builtins.StatusFailure, false
	}
}

// execBlock runs the statements of a block body in order
func (e *Executor) execBlock(ctx context.Context, stmts []ast.Statement) (int, bool) {
	status := builtins.StatusSuccess
	for _, stmt := range stmts {
		var brk bool
		status, brk = e.exec(ctx, stmt)
		e.state.setStatus(status)
		if brk {
			return status, true
		}
		if exited, _ := e.state.ExitRequested(); exited {
			return status, false
		}
	}
	return status, false
}

func (e *Executor) execLet(s *ast.Let) int {
	name, rawValue, ok := strings.Cut(s.Expression, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		fmt.Fprintf(e.state.Stderr(), "let: expected 'name = value', got %q\n", s.Expression)
		return builtins.StatusBadArgs
	}

	fields, err := words.Split(rawValue)
	if err != nil {
		fmt.Fprintf(e.state.Stderr(), "let: %v\n", err)
		return builtins.StatusFailure
	}

	expanded, err := e.state.expandWords(fields)
	if err != nil {
		fmt.Fprintf(e.state.Stderr(), "let: %v\n", err)
		return builtins.StatusFailure
	}

	e.state.SetVar(name, strings.Join(expanded, " "))
	return builtins.StatusSuccess
}

func (e *Executor) execIf(ctx context.Context, s *ast.If) (int, bool) {
	if e.runPipeline(ctx, s.Expression) == builtins.StatusSuccess {
		return e.execBlock(ctx, s.Success)
	}

	for _, branch := range s.ElseIf {
		if e.runPipeline(ctx, branch.Expression) == builtins.StatusSuccess {
			return e.execBlock(ctx, branch.Success)
		}
	}

	if len(s.Failure) > 0 {
		return e.execBlock(ctx, s.Failure)
	}
	return builtins.StatusSuccess, false
}

func (e *Executor) execWhile(ctx context.Context, s *ast.While) int {
	status := builtins.StatusSuccess
	for {
		if ctx.Err() != nil {
			return builtins.StatusFailure
		}
		if exited, _ := e.state.ExitRequested(); exited {
			return status
		}
		if e.runPipeline(ctx, s.Expression) != builtins.StatusSuccess {
			return status
		}

		var brk bool
		status, brk = e.execBlock(ctx, s.Statements)
		if brk {
			return status
		}
	}
}

func (e *Executor) execFor(ctx context.Context, s *ast.For) int {
	status := builtins.StatusSuccess
	for _, value := range s.Values {
		if ctx.Err() != nil {
			return builtins.StatusFailure
		}
		if exited, _ := e.state.ExitRequested(); exited {
			return status
		}

		expanded, err := e.state.expandWord(value)
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		e.state.SetVar(s.Variable, expanded)

		var brk bool
		status, brk = e.execBlock(ctx, s.Statements)
		if brk {
			return status
		}
	}
	return status
}

// runPipeline executes one pipeline and returns its exit status
func (e *Executor) runPipeline(ctx context.Context, p *pipeline.Pipeline) int {
	if p == nil || len(p.Jobs) == 0 {
		return builtins.StatusFailure
	}

	jobs, err := e.resolveJobs(p.Jobs)
	if err != nil {
		e.logger.LogError(err)
		fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
		return builtins.StatusFailure
	}

	if p.Background {
		command := p.String()
		id := e.jobs.add(command)
		go func() {
			status := e.runForeground(context.Background(), jobs, p)
			e.jobs.finish(id, status)
		}()
		return builtins.StatusSuccess
	}

	// Defined functions and builtins run standalone, not inside pipes.
	if len(jobs) == 1 && p.Stdin == nil {
		job := jobs[0]
		if p.Stdout == nil {
			if fn, ok := e.state.function(job.Command); ok {
				return e.callFunction(ctx, fn, job.Args)
			}
		}
		if b, ok := e.registry.Get(job.Command); ok {
			return e.runBuiltin(b, job.Args, p.Stdout)
		}
	}

	return e.runForeground(ctx, jobs, p)
}

// redirectedShell overrides the output stream of a session for one
// builtin invocation.
type redirectedShell struct {
	*State
	stdout io.Writer
}

func (r redirectedShell) Stdout() io.Writer { return r.stdout }

// runBuiltin runs a builtin, honoring an output redirection
func (e *Executor) runBuiltin(b *builtins.Builtin, args []string, redirect *pipeline.RedirectTo) int {
	if redirect == nil {
		return b.Main(args, e.state)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if redirect.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	target, err := e.state.expandWord(redirect.File)
	if err != nil {
		fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
		return builtins.StatusFailure
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
		return builtins.StatusFailure
	}
	defer f.Close()

	return b.Main(args, redirectedShell{State: e.state, stdout: f})
}

// resolveJobs applies alias substitution and word expansion
func (e *Executor) resolveJobs(jobs []pipeline.Job) ([]pipeline.Job, error) {
	out := make([]pipeline.Job, len(jobs))
	for i, job := range jobs {
		command := job.Command
		args := job.Args

		if aliased, ok := e.state.GetAlias(command); ok {
			if fields, err := words.Split(aliased); err == nil && len(fields) > 0 {
				command = fields[0]
				args = append(append([]string{}, fields[1:]...), args...)
			}
		}

		expandedCommand, err := e.state.expandWord(command)
		if err != nil {
			return nil, err
		}
		expandedArgs, err := e.state.expandWords(args)
		if err != nil {
			return nil, err
		}

		out[i] = pipeline.Job{Command: expandedCommand, Args: expandedArgs}
	}
	return out, nil
}

// runForeground runs an external pipeline and waits for it
func (e *Executor) runForeground(ctx context.Context, jobs []pipeline.Job, p *pipeline.Pipeline) int {
	cmds := make([]*exec.Cmd, len(jobs))
	for i, job := range jobs {
		cmds[i] = exec.CommandContext(ctx, job.Command, job.Args...)
		cmds[i].Stderr = e.state.Stderr()
	}

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	// Wire stdin of the first job.
	if p.Stdin != nil {
		source, err := e.state.expandWord(p.Stdin.File)
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		f, err := os.Open(source)
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		closers = append(closers, f)
		cmds[0].Stdin = f
	} else {
		cmds[0].Stdin = e.state.Stdin()
	}

	// Connect the pipe chain.
	for i := 0; i < len(cmds)-1; i++ {
		stdout, err := cmds[i].StdoutPipe()
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		cmds[i+1].Stdin = stdout
	}

	// Wire stdout of the last job.
	last := cmds[len(cmds)-1]
	if p.Stdout != nil {
		flags := os.O_WRONLY | os.O_CREATE
		if p.Stdout.Append {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		target, err := e.state.expandWord(p.Stdout.File)
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		f, err := os.OpenFile(target, flags, 0o644)
		if err != nil {
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
		closers = append(closers, f)
		last.Stdout = f
	} else {
		last.Stdout = e.state.Stdout()
	}

	for _, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				fmt.Fprintf(e.state.Stderr(), "ion: command not found: %s\n", cmd.Path)
				return builtins.StatusNoCommand
			}
			fmt.Fprintf(e.state.Stderr(), "ion: %v\n", err)
			return builtins.StatusFailure
		}
	}

	status := builtins.StatusSuccess
	for _, cmd := range cmds {
		if err := cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				status = exitErr.ExitCode()
			} else {
				status = builtins.StatusFailure
			}
		} else if cmd == cmds[len(cmds)-1] {
			status = builtins.StatusSuccess
		}
	}

	return status
}

// callFunction binds arguments to parameters, runs the body, and
// restores the previous variable values.
func (e *Executor) callFunction(ctx context.Context, fn *ast.Function, args []string) int {
	type saved struct {
		value  string
		exists bool
	}
	previous := make(map[string]saved, len(fn.Args))

	for i, param := range fn.Args {
		old, ok := e.state.GetVar(param)
		previous[param] = saved{value: old, exists: ok}

		value := ""
		if i < len(args) {
			value = args[i]
		}
		e.state.SetVar(param, value)
	}

	status, _ := e.execBlock(ctx, fn.Statements)

	for param, old := range previous {
		if old.exists {
			e.state.SetVar(param, old.value)
		} else {
			e.state.DropVar(param)
		}
	}

	return status
}
