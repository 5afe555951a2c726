package tui

import "github.com/mattn/go-runewidth"

// Truncate truncates string with … suffix if exceeds maxLen runes
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// RuneLen returns rune count (not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// DisplayWidth returns terminal column count, accounting for wide runes
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneCells returns the column count a single rune occupies (1 or 2)
func RuneCells(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}
