// File: state.go
// Title: Shell Session State
// Description: Holds the mutable state of one shell session: variables,
//              aliases, the directory stack, command history, defined
//              functions, and the last exit status. Implements the Shell
//              interface the builtins operate against.

package executor

import (
	"io"
	"os"
	"sort"
	"sync"

	ionerr "github.com/amw-zero/ion/core/error"
	"github.com/amw-zero/ion/shell/ast"
)

// State is the mutable session state. It implements builtins.Shell.
type State struct {
	mu sync.RWMutex

	vars      map[string]string
	aliases   map[string]string
	functions map[string]*ast.Function
	dirStack  []string

	history      []string
	historyLimit int

	prevStatus    int
	exitRequested bool
	exitStatus    int

	// sourceFn runs a script file through the full engine. The engine
	// wires it in; a bare executor leaves it nil and source fails.
	sourceFn func(path string) error

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewState creates session state with the given standard streams
func NewState(stdin io.Reader, stdout, stderr io.Writer) *State {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "/"
	}

	return &State{
		vars:         make(map[string]string),
		aliases:      make(map[string]string),
		functions:    make(map[string]*ast.Function),
		dirStack:     []string{wd},
		historyLimit: 1000,
		stdin:        stdin,
		stdout:       stdout,
		stderr:       stderr,
	}
}

// GetVar returns a session variable
func (s *State) GetVar(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// SetVar sets a session variable
func (s *State) SetVar(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
}

// DropVar removes a session variable, reporting whether it existed
func (s *State) DropVar(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vars[name]; !ok {
		return false
	}
	delete(s.vars, name)
	return true
}

// VarNames returns all variable names, sorted
func (s *State) VarNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAlias returns an alias definition
func (s *State) GetAlias(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.aliases[name]
	return v, ok
}

// SetAlias defines an alias
func (s *State) SetAlias(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases[name] = value
}

// DropAlias removes an alias, reporting whether it existed
func (s *State) DropAlias(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.aliases[name]; !ok {
		return false
	}
	delete(s.aliases, name)
	return true
}

// AliasNames returns all alias names, sorted
func (s *State) AliasNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chdir changes the current directory, updating the top of the stack
func (s *State) Chdir(path string) error {
	if err := os.Chdir(path); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirStack[len(s.dirStack)-1] = wd
	return nil
}

// PushDir pushes the current directory and changes into path
func (s *State) PushDir(path string) error {
	s.mu.RLock()
	current := s.dirStack[len(s.dirStack)-1]
	s.mu.RUnlock()

	if err := os.Chdir(path); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirStack[len(s.dirStack)-1] = current
	s.dirStack = append(s.dirStack, wd)
	return nil
}

// PopDir pops the directory stack and changes into the exposed entry
func (s *State) PopDir() error {
	s.mu.Lock()
	if len(s.dirStack) <= 1 {
		s.mu.Unlock()
		return ionerr.New("directory stack empty").WithCode(ionerr.CodeExecution)
	}
	s.dirStack = s.dirStack[:len(s.dirStack)-1]
	target := s.dirStack[len(s.dirStack)-1]
	s.mu.Unlock()

	return os.Chdir(target)
}

// Dirs returns the directory stack, innermost last
func (s *State) Dirs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.dirStack))
	copy(out, s.dirStack)
	return out
}

// PreviousStatus returns the exit status of the last executed statement
func (s *State) PreviousStatus() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prevStatus
}

// setStatus records the exit status of the last executed statement
func (s *State) setStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prevStatus = status
}

// History returns the recorded command lines, oldest first
func (s *State) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// AddHistory appends a line to the history, honoring the limit
func (s *State) AddHistory(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
	if s.historyLimit > 0 && len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
}

// SetHistoryLimit sets the maximum number of retained history lines
func (s *State) SetHistoryLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyLimit = limit
}

// SetSourceFunc wires the callback used by the source builtin
func (s *State) SetSourceFunc(fn func(path string) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sourceFn = fn
}

// Source evaluates a script file through the engine callback
func (s *State) Source(path string) error {
	s.mu.RLock()
	fn := s.sourceFn
	s.mu.RUnlock()

	if fn == nil {
		return ionerr.New("source is not available in this session").
			WithCode(ionerr.CodeExecution)
	}
	return fn(path)
}

// RequestExit marks the session for termination with the given status
func (s *State) RequestExit(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exitRequested = true
	s.exitStatus = status
}

// ExitRequested reports whether exit was called, and with which status
func (s *State) ExitRequested() (bool, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exitRequested, s.exitStatus
}

// defineFunction registers a function definition, replacing any previous
// definition under the same name.
func (s *State) defineFunction(fn *ast.Function) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.functions[fn.Name] = fn
}

// function looks up a defined function
func (s *State) function(name string) (*ast.Function, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.functions[name]
	return fn, ok
}

// Stdin returns the session input stream
func (s *State) Stdin() io.Reader { return s.stdin }

// Stdout returns the session output stream
func (s *State) Stdout() io.Writer { return s.stdout }

// Stderr returns the session error stream
func (s *State) Stderr() io.Writer { return s.stderr }
