// File: stringx.go
// Title: Core String Utility Functions
// Description: Rune aware splitting, padding and trimming used by the
//              fixed-width template fields. Lengths are always counted in
//              runes, never in bytes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers of the text format engine,
//                       padding and trimming with fill strings

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FillPosition selects the side where a fill character is added or removed
type FillPosition int

const (
	// FillLeft pads and trims at the start, as for right-aligned numbers
	FillLeft FillPosition = iota

	// FillRight pads and trims at the end, as for left-aligned text
	FillRight
)

// String returns "left" or "right"
func (p FillPosition) String() string {
	if p == FillRight {
		return "right"
	}
	return "left"
}

// RuneLen returns the number of runes in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// SplitAt splits s after n runes. ok is false when s has fewer than n runes,
// in which case head is s and tail is empty.
func SplitAt(s string, n int) (head, tail string, ok bool) {
	if n <= 0 {
		return "", s, n == 0
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:], true
		}
		count++
	}
	return s, "", count == n
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// PadLeft pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadLeft(s string, width int, pad rune) string {
	return Pad(s, width, pad, FillLeft)
}

// PadRight pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	return Pad(s, width, pad, FillRight)
}

// Pad adds pad runes at position until s is width runes long
func Pad(s string, width int, pad rune, position FillPosition) string {
	var count int
	if isASCIIString(s) {
		count = width - len(s)
	} else {
		count = width - utf8.RuneCountInString(s)
	}
	if count <= 0 {
		return s
	}
	fill := strings.Repeat(string(pad), count)
	if position == FillRight {
		return s + fill
	}
	return fill + s
}

// Trim removes every leading (FillLeft) or trailing (FillRight) pad rune.
// With keepOne set, a string made only of pad runes keeps a single one,
// so "000" trimmed of '0' yields "0" instead of "".
func Trim(s string, pad rune, position FillPosition, keepOne bool) string {
	isPad := func(r rune) bool { return r == pad }
	var trimmed string
	if position == FillRight {
		trimmed = strings.TrimRightFunc(s, isPad)
	} else {
		trimmed = strings.TrimLeftFunc(s, isPad)
	}
	if trimmed == "" && keepOne && s != "" {
		return string(pad)
	}
	return trimmed
}

// LeadingRun returns the number of bytes of the run of r at the start of s
func LeadingRun(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c != r {
			break
		}
		n += utf8.RuneLen(c)
	}
	return n
}

// SingleRune returns the only rune of s, ok is false unless s holds exactly
// one rune
func SingleRune(s string) (r rune, ok bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// Quote shortens s to at most maxLen runes for use in messages, adding an
// ellipsis when it was cut
func Quote(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	head, _, _ := SplitAt(s, maxLen)
	return head + "..."
}
