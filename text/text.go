// Package text provides ANSI-aware string measurement and padding
// helpers for terminal output
package text

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SGR sequences only (ESC [ ... m); cursor and screen-mode sequences do
// not occur inside table cells
var ansiRegex = regexp.MustCompile(`\x1b\[\d+(;\d+)*m`)

// StripANSI removes SGR color/attribute sequences from s
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// Width returns the terminal cell width of s, ignoring ANSI sequences.
// East-asian wide runes count as two cells.
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// RightJustified pads s on the right with pad up to width display
// cells. Strings already at or past width are returned unchanged.
func RightJustified(s string, width int, pad string) string {
	n := width - Width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(pad, n)
}

// Padded returns the lines space-padded to equal display width. A
// width <= 0 pads to the widest line.
func Padded(lines []string, width int) []string {
	if width <= 0 {
		for _, line := range lines {
			if w := Width(line); w > width {
				width = w
			}
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = RightJustified(line, width, " ")
	}
	return out
}

// SplitAt splits s after pos runes, clamping pos into range
func SplitAt(s string, pos int) (string, string) {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return string(runes[:pos]), string(runes[pos:])
}

// SplitConditional partitions items into those matching cond and the
// rest, preserving order
func SplitConditional[T any](items []T, cond func(T) bool) (matching, rest []T) {
	for _, item := range items {
		if cond(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matching, rest
}
