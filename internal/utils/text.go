// Package utils holds small helpers shared by the filter, dictionary and CLI packages.
package utils

import (
	"strings"
	"unicode"
)

// LeadWord returns the first whitespace-delimited token of a suggestion line.
// The second return is false when the line has no token at all (empty or
// whitespace-only lines), which callers treat as "not in dictionary".
func LeadWord(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return strings.TrimSpace(fields[0]), true
}

// TrimEntry normalizes a suggestion line for output: surrounding whitespace
// and the trailing newline go, interior spacing is preserved.
func TrimEntry(line string) string {
	return strings.TrimSpace(line)
}

// IsAlphabetic reports whether a token consists only of letters.
// Tokens with digits or punctuation are not spellcheck candidates.
func IsAlphabetic(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsBlank reports whether a line contains nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
