// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying failures
//              across the ion shell. Codes distinguish syntax diagnostics
//              from delegated sub-parser failures, execution problems, and
//              environment-level errors.

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeIO       Code = "IO"

	// Parsing
	CodeSyntax    Code = "SYNTAX"
	CodeDelegated Code = "DELEGATED"

	// Execution
	CodeExpansion      Code = "EXPANSION"
	CodeExecution      Code = "EXECUTION"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	CodeInterrupted    Code = "INTERRUPTED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeIO,
		CodeSyntax, CodeDelegated,
		CodeExpansion, CodeExecution, CodeUnknownCommand, CodeInterrupted,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeDelegated:
		return "parse"
	case CodeExpansion, CodeExecution, CodeUnknownCommand, CodeInterrupted:
		return "execution"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsParse returns true for errors produced while classifying or parsing input
func (c Code) IsParse() bool {
	return c.Category() == "parse"
}
