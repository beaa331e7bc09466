// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured Error type, covering construction,
//              wrapping, code propagation, details, and cause chains.

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestNewf(t *testing.T) {
	err := Newf("failed at line %d", 42)
	if err.Error() != "failed at line 42" {
		t.Errorf("Error() = %q, want %q", err.Error(), "failed at line 42")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		cause     error
		message   string
		wantNil   bool
		wantError string
		wantCode  Code
	}{
		{
			name:    "nil cause returns nil",
			cause:   nil,
			message: "context",
			wantNil: true,
		},
		{
			name:      "plain error",
			cause:     errors.New("disk full"),
			message:   "write failed",
			wantError: "write failed: disk full",
			wantCode:  CodeUnknown,
		},
		{
			name:      "structured cause inherits code",
			cause:     New("bad pipeline").WithCode(CodeSyntax),
			message:   "classification failed",
			wantError: "classification failed: bad pipeline",
			wantCode:  CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.cause, tt.message)
			if tt.wantNil {
				if err != nil {
					t.Fatalf("Wrap() = %v, want nil", err)
				}
				return
			}
			if err.Error() != tt.wantError {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantError)
			}
			if err.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.wantCode)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("errors.Is(err, cause) = false, want true")
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	err := New("test").WithCode(CodeDelegated)
	if err.Code() != CodeDelegated {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeDelegated)
	}
}

func TestWithOperation(t *testing.T) {
	err := New("test").WithOperation("parser.Classify")
	if err.Operation() != "parser.Classify" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "parser.Classify")
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test").
		WithDetail("line", "if true").
		WithDetail("column", 3)

	details := err.Details()
	if details["line"] != "if true" {
		t.Errorf("details[line] = %v, want %q", details["line"], "if true")
	}
	if details["column"] != 3 {
		t.Errorf("details[column] = %v, want 3", details["column"])
	}

	// Details returns a copy, not the internal map.
	details["line"] = "mutated"
	if err.Details()["line"] != "if true" {
		t.Error("Details() exposed internal map")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	mid := Wrap(root, "middle")
	top := Wrap(mid, "top")

	if got := top.RootCause(); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}

	solo := New("no cause")
	if got := solo.RootCause(); got != solo {
		t.Errorf("RootCause() on cause-less error = %v, want itself", got)
	}
}

func TestString(t *testing.T) {
	err := New("parse failed").
		WithCode(CodeSyntax).
		WithOperation("parser.Classify").
		WithDetail("line", "fnbad")

	s := err.String()
	for _, want := range []string{
		"Error: parse failed",
		"Code: SYNTAX",
		"Operation: parser.Classify",
		"line=fnbad",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New("x").WithCode(CodeSyntax), CodeSyntax, true},
		{"other code", New("x").WithCode(CodeSyntax), CodeDelegated, false},
		{"foreign error", fmt.Errorf("plain"), CodeSyntax, false},
		{"nil error", nil, CodeSyntax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New("x").WithCode(CodeExecution)); got != CodeExecution {
		t.Errorf("GetCode() = %v, want %v", got, CodeExecution)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}
