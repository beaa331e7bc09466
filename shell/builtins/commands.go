// File: commands.go
// Title: Standard Builtin Commands
// Description: Implements the standard builtin commands: directory
//              navigation and the directory stack, variables and aliases,
//              history, source, and session control.

package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func standardBuiltins() []*Builtin {
	return []*Builtin{
		{
			Name: "cd",
			Help: "Change the current directory\n    cd <path>",
			Main: cdMain,
		},
		{
			Name: "dirs",
			Help: "Display the current directory stack",
			Main: dirsMain,
		},
		{
			Name: "pushd",
			Help: "Push a directory to the stack",
			Main: pushdMain,
		},
		{
			Name: "popd",
			Help: "Pop a directory from the stack",
			Main: popdMain,
		},
		{
			Name: "alias",
			Help: "View, set or unset aliases\n    alias [name[=value]]",
			Main: aliasMain,
		},
		{
			Name: "unalias",
			Help: "Delete an alias",
			Main: unaliasMain,
		},
		{
			Name: "export",
			Help: "Set an environment variable\n    export NAME=value",
			Main: exportMain,
		},
		{
			Name: "read",
			Help: "Read some variables\n    read <variable>",
			Main: readMain,
		},
		{
			Name: "drop",
			Help: "Delete a variable",
			Main: dropMain,
		},
		{
			Name: "exit",
			Help: "Exit the current session\n    exit [status]",
			Main: exitMain,
		},
		{
			Name: "history",
			Help: "Display a log of all commands previously executed",
			Main: historyMain,
		},
		{
			Name: "source",
			Help: "Evaluate the file following the command\n    source <file>",
			Main: sourceMain,
		},
		{
			Name: "true",
			Help: "Do nothing, successfully",
			Main: func([]string, Shell) int { return StatusSuccess },
		},
		{
			Name: "false",
			Help: "Do nothing, unsuccessfully",
			Main: func([]string, Shell) int { return StatusFailure },
		},
	}
}

func cdMain(args []string, sh Shell) int {
	var target string
	if len(args) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(sh.Stderr(), "cd: cannot determine home directory")
			return StatusFailure
		}
		target = home
	} else {
		target = args[0]
	}

	if err := sh.Chdir(target); err != nil {
		fmt.Fprintf(sh.Stderr(), "cd: %v\n", err)
		return StatusFailure
	}
	return StatusSuccess
}

func dirsMain(args []string, sh Shell) int {
	for _, dir := range sh.Dirs() {
		fmt.Fprintln(sh.Stdout(), dir)
	}
	return StatusSuccess
}

func pushdMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "pushd: no directory given")
		return StatusBadArgs
	}
	if err := sh.PushDir(args[0]); err != nil {
		fmt.Fprintf(sh.Stderr(), "pushd: %v\n", err)
		return StatusFailure
	}
	return StatusSuccess
}

func popdMain(args []string, sh Shell) int {
	if err := sh.PopDir(); err != nil {
		fmt.Fprintf(sh.Stderr(), "popd: %v\n", err)
		return StatusFailure
	}
	return StatusSuccess
}

func aliasMain(args []string, sh Shell) int {
	if len(args) == 0 {
		for _, name := range sh.AliasNames() {
			value, _ := sh.GetAlias(name)
			fmt.Fprintf(sh.Stdout(), "alias %s='%s'\n", name, value)
		}
		return StatusSuccess
	}

	for _, arg := range args {
		if name, value, ok := strings.Cut(arg, "="); ok {
			sh.SetAlias(name, value)
			continue
		}
		value, ok := sh.GetAlias(arg)
		if !ok {
			fmt.Fprintf(sh.Stderr(), "alias: %s: not found\n", arg)
			return StatusFailure
		}
		fmt.Fprintf(sh.Stdout(), "alias %s='%s'\n", arg, value)
	}
	return StatusSuccess
}

func unaliasMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "unalias: no alias given")
		return StatusBadArgs
	}
	status := StatusSuccess
	for _, name := range args {
		if !sh.DropAlias(name) {
			fmt.Fprintf(sh.Stderr(), "unalias: %s: not found\n", name)
			status = StatusFailure
		}
	}
	return status
}

func exportMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "export: no variable given")
		return StatusBadArgs
	}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			// Export an existing shell variable under its current value.
			existing, found := sh.GetVar(name)
			if !found {
				fmt.Fprintf(sh.Stderr(), "export: %s: not found\n", name)
				return StatusFailure
			}
			value = existing
		}
		if err := os.Setenv(name, value); err != nil {
			fmt.Fprintf(sh.Stderr(), "export: %v\n", err)
			return StatusFailure
		}
	}
	return StatusSuccess
}

func readMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "read: no variable given")
		return StatusBadArgs
	}
	scanner := bufio.NewScanner(sh.Stdin())
	for _, name := range args {
		if !scanner.Scan() {
			return StatusFailure
		}
		sh.SetVar(name, scanner.Text())
	}
	return StatusSuccess
}

func dropMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "drop: no variable given")
		return StatusBadArgs
	}
	status := StatusSuccess
	for _, name := range args {
		if !sh.DropVar(name) {
			fmt.Fprintf(sh.Stderr(), "drop: %s: not found\n", name)
			status = StatusFailure
		}
	}
	return status
}

func exitMain(args []string, sh Shell) int {
	status := sh.PreviousStatus()
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			status = n
		}
	}
	sh.RequestExit(status)
	return status
}

func historyMain(args []string, sh Shell) int {
	for i, line := range sh.History() {
		fmt.Fprintf(sh.Stdout(), "%5d  %s\n", i+1, line)
	}
	return StatusSuccess
}

func sourceMain(args []string, sh Shell) int {
	if len(args) == 0 {
		fmt.Fprintln(sh.Stderr(), "source: no file given")
		return StatusBadArgs
	}
	if err := sh.Source(args[0]); err != nil {
		fmt.Fprintf(sh.Stderr(), "source: %v\n", err)
		return StatusFailure
	}
	return StatusSuccess
}

func helpMain(r *Registry, args []string, sh Shell) int {
	if len(args) > 0 {
		b, ok := r.Get(args[0])
		if !ok {
			fmt.Fprintf(sh.Stderr(), "help: %s: no such builtin\n", args[0])
			return StatusFailure
		}
		fmt.Fprintln(sh.Stdout(), b.Help)
		return StatusSuccess
	}

	for _, name := range r.Names() {
		fmt.Fprintln(sh.Stdout(), name)
	}
	return StatusSuccess
}
