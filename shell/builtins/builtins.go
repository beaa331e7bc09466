// File: builtins.go
// Title: Builtin Command Registry
// Description: Defines the builtin command structure, the Shell interface
//              builtins operate against, and the registry mapping command
//              names to implementations.

package builtins

import (
	"io"
	"sort"
)

// Exit status conventions shared with external commands
const (
	StatusSuccess   = 0
	StatusFailure   = 1
	StatusBadArgs   = 2
	StatusNoCommand = 127
)

// Shell is the surface a builtin needs from the running shell. The
// executor's state implements it; tests substitute a fake.
type Shell interface {
	// Variables
	GetVar(name string) (string, bool)
	SetVar(name, value string)
	DropVar(name string) bool
	VarNames() []string

	// Aliases
	GetAlias(name string) (string, bool)
	SetAlias(name, value string)
	DropAlias(name string) bool
	AliasNames() []string

	// Directory stack
	Chdir(path string) error
	PushDir(path string) error
	PopDir() error
	Dirs() []string

	// Session
	PreviousStatus() int
	History() []string
	Source(path string) error
	RequestExit(status int)

	// Standard streams
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// Builtin represents one builtin command
type Builtin struct {
	Name string
	Help string

	// Main runs the command. args excludes the command name itself.
	Main func(args []string, sh Shell) int
}

// Registry maps command names to builtins
type Registry struct {
	commands map[string]*Builtin
}

// NewRegistry returns a registry populated with the standard builtins
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Builtin)}

	for _, b := range standardBuiltins() {
		r.commands[b.Name] = b
	}

	// help closes over the registry to list and describe commands.
	r.commands["help"] = &Builtin{
		Name: "help",
		Help: "Display helpful information about a given command, or list commands if none specified\n    help <command>",
		Main: func(args []string, sh Shell) int {
			return helpMain(r, args, sh)
		},
	}

	return r
}

// Get returns the builtin registered under name
func (r *Registry) Get(name string) (*Builtin, bool) {
	b, ok := r.commands[name]
	return b, ok
}

// Contains reports whether name is a registered builtin
func (r *Registry) Contains(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns all registered command names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
