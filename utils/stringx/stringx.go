// File: stringx.go
// Title: String Utility Functions
// Description: Implements small string helpers used across the ion shell,
//              extending the Go standard library with whitespace-aware
//              predicates and truncation for log and diagnostic output.

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to at most maxLen runes, appending the
// ellipsis if anything was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	keep := maxLen - ellipsisLen
	if keep < 0 {
		keep = 0
	}

	var count int
	for i := range s {
		if count == keep {
			return s[:i] + ellipsis
		}
		count++
	}
	return s
}

// FirstLine returns the text up to the first line break.
func FirstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
