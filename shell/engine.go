// File: engine.go
// Title: Shell Engine
// Description: Ties the statement classifier, block assembler, and
//              executor into one session. Lines go in, completed
//              statements execute, and open blocks accumulate until
//              their closing end arrives.

package shell

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/google/uuid"

	ionerr "github.com/amw-zero/ion/core/error"
	ionlog "github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell/assembler"
	"github.com/amw-zero/ion/shell/executor"
	"github.com/amw-zero/ion/shell/parser"
)

// Options configures an Engine
type Options struct {
	Logger *ionlog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// HistoryLimit caps recorded history lines; zero keeps the default.
	HistoryLimit int
}

// Engine is one shell session
type Engine struct {
	sessionID string

	parser    *parser.Parser
	assembler *assembler.Assembler
	executor  *executor.Executor
	logger    *ionlog.Logger
}

// New creates an Engine
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = ionlog.GetDefault()
	}

	sessionID := uuid.NewString()
	logger = logger.WithField("session", sessionID)

	e := &Engine{
		sessionID: sessionID,
		parser:    parser.New(parser.Options{Logger: logger}),
		assembler: assembler.New(assembler.Options{Logger: logger}),
		executor: executor.New(executor.Options{
			Logger: logger,
			Stdin:  opts.Stdin,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		}),
		logger: logger.WithField("component", "engine"),
	}

	if opts.HistoryLimit > 0 {
		e.executor.State().SetHistoryLimit(opts.HistoryLimit)
	}

	// The source builtin re-enters the engine for the named file.
	e.executor.State().SetSourceFunc(func(path string) error {
		return e.RunScriptFile(context.Background(), path)
	})

	e.logger.Debug("session started")
	return e
}

// SessionID returns the unique ID of this session
func (e *Engine) SessionID() string {
	return e.sessionID
}

// State exposes the session state
func (e *Engine) State() *executor.State {
	return e.executor.State()
}

// InBlock reports whether a block is open and awaiting its end
func (e *Engine) InBlock() bool {
	return e.assembler.InBlock()
}

// RunLine classifies one line, feeds it through the assembler, and
// executes any statement that completes. It returns the exit status of
// the executed statement, or the previous status when the line only
// extended an open block.
func (e *Engine) RunLine(ctx context.Context, line string) (int, error) {
	stmt, err := e.parser.Classify(line)
	if err != nil {
		return 1, err
	}

	e.executor.State().AddHistory(line)

	done, err := e.assembler.Push(stmt)
	if err != nil {
		return 1, err
	}
	if done == nil {
		return e.executor.State().PreviousStatus(), nil
	}

	return e.executor.Execute(ctx, done), nil
}

// RunScript runs a full script from a reader, line by line. The first
// parse or structural error aborts the script.
func (e *Engine) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return ionerr.Wrap(err, "script interrupted").
				WithCode(ionerr.CodeInterrupted).
				WithDetail("line_number", lineNo)
		}
		if _, err := e.RunLine(ctx, scanner.Text()); err != nil {
			return ionerr.Wrap(err, "script aborted").
				WithCode(ionerr.GetCode(err)).
				WithDetail("line_number", lineNo)
		}
		if exited, _ := e.executor.State().ExitRequested(); exited {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return ionerr.Wrap(err, "reading script").WithCode(ionerr.CodeIO)
	}

	return e.Finish()
}

// RunScriptFile runs a script from a file
func (e *Engine) RunScriptFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ionerr.Wrap(err, "cannot open script").
			WithCode(ionerr.CodeIO).
			WithDetail("path", path)
	}
	defer f.Close()

	e.logger.Debug("running script", ionlog.String("path", path))
	return e.RunScript(ctx, f)
}

// Finish verifies no blocks remain open
func (e *Engine) Finish() error {
	return e.assembler.Finish()
}

// Reset discards any open blocks, e.g. after an interactive error
func (e *Engine) Reset() {
	e.assembler.Reset()
}

// ExitRequested reports whether the session asked to terminate
func (e *Engine) ExitRequested() (bool, int) {
	return e.executor.State().ExitRequested()
}

// Jobs returns the session's background jobs
func (e *Engine) Jobs() []*executor.Job {
	return e.executor.Jobs()
}

// Close releases session resources
func (e *Engine) Close() error {
	e.logger.Debug("session closed")
	return nil
}
