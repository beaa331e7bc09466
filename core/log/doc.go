// File: doc.go
// Title: Core Log Package Documentation
// Description: Package documentation for the structured logging used
//              throughout the ion shell.

// Package log provides structured logging for the ion shell.
//
// Loggers carry a minimum level, a formatter, and persistent context
// fields. The With* methods return copies, so a component can derive its
// own logger without affecting others:
//
//	logger := log.New().WithName("ion").WithField("component", "parser")
//	logger.Debug("classified statement", log.String("kind", "if"))
//
// Three output formats are available: plain text, colored console output
// for interactive sessions, and JSON. The default logger writes text to
// stderr at warn level so that shell output on stdout stays clean.
package log
