// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for the structured error handling
//              used throughout the ion shell.

// Package error provides structured error handling for the ion shell.
//
// Errors carry a classification code (see Code), an optional wrapped
// cause, the operation that failed, and free-form details. The package
// distinguishes parse-time failures (CodeSyntax, CodeDelegated) from
// execution failures (CodeExpansion, CodeExecution, CodeUnknownCommand)
// so that callers can decide whether to reprompt, continue, or abort.
//
// Typical usage:
//
//	err := ionerr.New("unrecognized statement").
//		WithCode(ionerr.CodeSyntax).
//		WithOperation("parser.Classify").
//		WithDetail("line", line)
//
// Errors integrate with the standard errors package: Wrap preserves the
// cause for errors.Is and errors.As, and RootCause walks to the deepest
// error in the chain.
package error
