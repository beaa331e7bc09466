// File: tokens_test.go
// Title: Identifier Token Tests
// Description: Tests the name and argument token character classes,
//              including the punctuation admitted by the name range.

package parser

import "testing"

func TestIsNameByte(t *testing.T) {
	accepted := []byte{'a', 'z', 'A', 'Z', '0', '9', '_', '[', '\\', ']', '^', '`'}
	for _, b := range accepted {
		if !isNameByte(b) {
			t.Errorf("isNameByte(%q) = false, want true", b)
		}
	}

	rejected := []byte{' ', '\t', '-', '.', '/', '$', '{', '}', '~', '@', '!'}
	for _, b := range rejected {
		if isNameByte(b) {
			t.Errorf("isNameByte(%q) = true, want false", b)
		}
	}
}

func TestIsArgByte(t *testing.T) {
	accepted := []byte{'a', 'z', 'A', 'Z', '0', '9'}
	for _, b := range accepted {
		if !isArgByte(b) {
			t.Errorf("isArgByte(%q) = false, want true", b)
		}
	}

	// Argument tokens are stricter than names: no underscore, none of
	// the punctuation the name range admits.
	rejected := []byte{'_', '[', ']', '^', '`', '\\', '-', ' '}
	for _, b := range rejected {
		if isArgByte(b) {
			t.Errorf("isArgByte(%q) = true, want false", b)
		}
	}
}

func TestScanName(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantRest string
	}{
		{"greet a b", "greet", " a b"},
		{"my_func", "my_func", ""},
		{"x in 1 2", "x", " in 1 2"},
		{"", "", ""},
		{" leading", "", " leading"},
		{"name(x)", "name", "(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, rest := scanName(tt.input)
			if name != tt.wantName || rest != tt.wantRest {
				t.Errorf("scanName(%q) = (%q, %q), want (%q, %q)",
					tt.input, name, rest, tt.wantName, tt.wantRest)
			}
		})
	}
}

func TestIsArgToken(t *testing.T) {
	valid := []string{"a", "B2", "abc123"}
	for _, s := range valid {
		if !isArgToken(s) {
			t.Errorf("isArgToken(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "my_arg", "a-b", "x.y"}
	for _, s := range invalid {
		if isArgToken(s) {
			t.Errorf("isArgToken(%q) = true, want false", s)
		}
	}
}
