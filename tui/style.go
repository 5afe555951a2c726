package tui

// Alignment is the placement rule for a widget within its row
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns human-readable alignment name
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// alignColumn returns the column a single-cell widget occupies within
// width w. Width 1 short-circuits to column 0.
func alignColumn(a Alignment, w int) int {
	if w <= 1 {
		return 0
	}
	switch a {
	case AlignCenter:
		return (w - 1) / 2
	case AlignRight:
		return w - 1
	}
	return 0
}

// alignOffset returns the starting column for content of width cw
// within width w, clamped to 0
func alignOffset(a Alignment, w, cw int) int {
	var x int
	switch a {
	case AlignCenter:
		x = (w - cw) / 2
	case AlignRight:
		x = w - cw
	}
	if x < 0 {
		x = 0
	}
	return x
}
