// Package terminal provides the cell-buffer substrate for single-row
// widgets and a tcell-backed platform layer.
//
// The core types are Cell (one character cell: rune, colors, attributes)
// and RGB (24-bit color). A Terminal owns the physical screen: it enters
// raw mode on Init, flushes row-major cell buffers with Flush, and
// delivers input as Event values from PollEvent.
//
// Widgets never touch the Terminal directly; they write into cell slices
// through tui.Region and the application flushes once per frame.
package terminal
