// Package tui provides immediate-mode single-row widgets over a cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell
// buffer. All drawing operations are relative to region bounds with automatic
// clipping. Widgets hold their own animation state and are driven by the
// application's render loop: each frame the app calls Render on a region and
// flushes the buffer.
//
// The spinner widget writes exactly one cell per render; the text widget
// writes one row. Neither clears the rest of its region, so widgets compose
// over whatever the app has already drawn.
//
// Usage pattern:
//
//	style, _ := tui.NewSpinnerStyleBuilder().
//		WithType(tui.SpinnerBrailleEight).
//		WithAlignment(tui.AlignRight).
//		Build()
//	spinner := tui.NewSpinner(style)
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	spinner.Render(root.Sub(0, 0, 10, 1))
//	term.Flush(cells, w, h)
package tui
