// File: doc.go
// Title: Core Config Package Documentation
// Description: Package documentation for ion shell configuration loading.

// Package config loads and validates ion shell configuration.
//
// Configuration lives in a TOML or YAML file (format detected from the
// extension) and covers prompts, history, colors, and logging. Values
// omitted from the file keep their built-in defaults, and environment
// variables prefixed with ION_ override file values:
//
//	prompt = "> "
//	no_color = true
//
//	[history]
//	file = "~/.ion_history"
//	limit = 500
//
//	[log]
//	level = "debug"
//	format = "console"
//
// Discover walks the conventional locations ($ION_CONFIG, XDG config
// directory, ~/.ion.toml) and falls back to defaults when nothing is
// found, so the shell always starts with a valid configuration.
package config
