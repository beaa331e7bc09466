// File: repl.go
// Title: Interactive Shell Loop
// Description: Implements the interactive read-eval loop: styled prompts,
//              continuation prompts inside open blocks, error display, and
//              history persistence between sessions.

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/amw-zero/ion/core/config"
	"github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell"
)

// Repl drives an interactive shell session on a pair of streams.
type Repl struct {
	engine *shell.Engine
	config *config.Config
	logger *log.Logger

	input  io.Reader
	output io.Writer
	errOut io.Writer

	promptStyle lipgloss.Style
	contStyle   lipgloss.Style
	errorStyle  lipgloss.Style
}

// Options configures a Repl.
type Options struct {
	Engine *shell.Engine
	Config *config.Config
	Logger *log.Logger

	// Input, Output, and ErrOut default to the process streams.
	Input  io.Reader
	Output io.Writer
	ErrOut io.Writer
}

// New creates a Repl for the given engine and configuration.
func New(opts Options) *Repl {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New()
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	r := &Repl{
		engine: opts.Engine,
		config: opts.Config,
		logger: opts.Logger.WithField("component", "repl"),
		input:  opts.Input,
		output: opts.Output,
		errOut: opts.ErrOut,
	}

	styled := !opts.Config.NoColor && isTerminal(opts.Output)
	if styled {
		r.promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
		r.contStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	} else {
		plain := lipgloss.NewStyle()
		r.promptStyle = plain
		r.contStyle = plain
		r.errorStyle = plain
	}
	return r
}

// isTerminal reports whether the writer is attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run executes the interactive loop until end of input or an exit request.
// It returns the exit status of the session.
func (r *Repl) Run(ctx context.Context) int {
	history, err := LoadHistory(r.config.History.File)
	if err != nil {
		r.logger.WarnWithErr("could not load history", err)
	}
	for _, line := range history {
		r.engine.State().AddHistory(line)
	}

	scanner := bufio.NewScanner(r.input)
	status := 0
	for {
		select {
		case <-ctx.Done():
			r.saveHistory()
			return status
		default:
		}

		r.printPrompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				r.logger.ErrorWithErr("input error", err)
			}
			fmt.Fprintln(r.output)
			break
		}

		line := scanner.Text()
		status = r.runLine(ctx, line)

		if exited, code := r.engine.ExitRequested(); exited {
			r.saveHistory()
			return code
		}
	}

	r.saveHistory()
	return status
}

// runLine feeds a single line to the engine and reports errors to the
// user. A failed line discards any partially assembled block.
func (r *Repl) runLine(ctx context.Context, line string) int {
	status, err := r.engine.RunLine(ctx, line)
	if err != nil {
		fmt.Fprintln(r.errOut, r.errorStyle.Render("ion: "+err.Error()))
		r.engine.Reset()
		return 1
	}
	return status
}

// printPrompt writes the main or continuation prompt depending on whether
// a block is still open.
func (r *Repl) printPrompt() {
	if r.engine.InBlock() {
		fmt.Fprint(r.output, r.contStyle.Render(r.config.ContinuationPrompt))
		return
	}
	fmt.Fprint(r.output, r.promptStyle.Render(r.config.Prompt))
}

func (r *Repl) saveHistory() {
	history := r.engine.State().History()
	if err := SaveHistory(r.config.History.File, history, r.config.History.Limit); err != nil {
		r.logger.WarnWithErr("could not save history", err)
	}
}
