package tui

// SpinnerType selects which glyph sequence a spinner cycles through.
// Default is SpinnerBrailleDouble.
type SpinnerType uint8

const (
	// ["|", "/", "-", "\"]
	SpinnerAscii SpinnerType = iota

	// ["│", "╱", "─", "╲"]
	SpinnerBoxDrawing

	// ["↑", "↗", "→", "↘", "↓", "↙", "←", "↖"]
	SpinnerArrow

	// ["⇑", "⇗", "⇒", "⇘", "⇓", "⇙", "⇐", "⇖"]
	SpinnerDoubleArrow

	// ["▝", "▗", "▖", "▘"]
	SpinnerQuadrantBlock

	// ["▙", "▛", "▜", "▟"]
	SpinnerQuadrantBlockCrack

	// ["▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"]
	SpinnerVerticalBlock

	// ["▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"]
	SpinnerHorizontalBlock

	// ["◢", "◣", "◤", "◥"]
	SpinnerTriangleCorners

	// ["◳", "◲", "◱", "◰"]
	SpinnerWhiteSquare

	// ["◷", "◶", "◵", "◴"]
	SpinnerWhiteCircle

	// ["◑", "◒", "◐", "◓"]
	SpinnerBlackCircle

	// Clock faces, full and half hours
	SpinnerClock

	// ["🌑", "🌒", "🌓", "🌕", "🌖"]
	SpinnerMoonPhases

	// ["⠈", "⠐", "⠠", "⠄", "⠂", "⠁"]
	SpinnerBrailleOne

	// ["⠘", "⠰", "⠤", "⠆", "⠃", "⠉"]
	SpinnerBrailleDouble

	// ["⠷", "⠯", "⠟", "⠻", "⠽", "⠾"]
	SpinnerBrailleSix

	// ["⠧", "⠏", "⠛", "⠹", "⠼", "⠶"]
	SpinnerBrailleSixDouble

	// ["⣷", "⣯", "⣟", "⡿", "⢿", "⣻", "⣽", "⣾"]
	SpinnerBrailleEight

	// ["⣧", "⣏", "⡟", "⠿", "⢻", "⣹", "⣼", "⣶"]
	SpinnerBrailleEightDouble

	// [" ", "ᚐ", "ᚑ", "ᚒ", "ᚓ", "ᚔ"]
	SpinnerOghamA

	// [" ", "ᚁ", "ᚂ", "ᚃ", "ᚄ", "ᚅ"]
	SpinnerOghamB

	// [" ", "ᚆ", "ᚇ", "ᚈ", "ᚉ", "ᚊ"]
	SpinnerOghamC

	// ["⎛", "⎜", "⎝", "⎞", "⎟", "⎠"]
	SpinnerParenthesis

	// ["ᔐ", "ᯇ", "ᔑ", "ᯇ"]
	SpinnerCanadian

	// ["⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"]
	SpinnerBraille

	spinnerTypeCount // Sentinel, keep last
)

// spinnerFrames indexed by SpinnerType. Every sequence is non-empty;
// frame arithmetic wraps modulo its length.
var spinnerFrames = [spinnerTypeCount][]rune{
	SpinnerAscii:              {'|', '/', '-', '\\'},
	SpinnerBoxDrawing:         {'│', '╱', '─', '╲'},
	SpinnerArrow:              {'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'},
	SpinnerDoubleArrow:        {'⇑', '⇗', '⇒', '⇘', '⇓', '⇙', '⇐', '⇖'},
	SpinnerQuadrantBlock:      {'▝', '▗', '▖', '▘'},
	SpinnerQuadrantBlockCrack: {'▙', '▛', '▜', '▟'},
	SpinnerVerticalBlock:      {'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
	SpinnerHorizontalBlock:    {'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
	SpinnerTriangleCorners:    {'◢', '◣', '◤', '◥'},
	SpinnerWhiteSquare:        {'◳', '◲', '◱', '◰'},
	SpinnerWhiteCircle:        {'◷', '◶', '◵', '◴'},
	SpinnerBlackCircle:        {'◑', '◒', '◐', '◓'},
	SpinnerClock: {
		'🕛', '🕧', '🕐', '🕜', '🕑', '🕝', '🕒', '🕞',
		'🕓', '🕟', '🕔', '🕠', '🕕', '🕡', '🕖', '🕢',
		'🕗', '🕣', '🕘', '🕤', '🕙', '🕥', '🕚', '🕦',
	},
	SpinnerMoonPhases:         {'🌑', '🌒', '🌓', '🌕', '🌖'},
	SpinnerBrailleOne:         {'⠈', '⠐', '⠠', '⠄', '⠂', '⠁'},
	SpinnerBrailleDouble:      {'⠘', '⠰', '⠤', '⠆', '⠃', '⠉'},
	SpinnerBrailleSix:         {'⠷', '⠯', '⠟', '⠻', '⠽', '⠾'},
	SpinnerBrailleSixDouble:   {'⠧', '⠏', '⠛', '⠹', '⠼', '⠶'},
	SpinnerBrailleEight:       {'⣷', '⣯', '⣟', '⡿', '⢿', '⣻', '⣽', '⣾'},
	SpinnerBrailleEightDouble: {'⣧', '⣏', '⡟', '⠿', '⢻', '⣹', '⣼', '⣶'},
	SpinnerOghamA:             {' ', 'ᚐ', 'ᚑ', 'ᚒ', 'ᚓ', 'ᚔ'},
	SpinnerOghamB:             {' ', 'ᚁ', 'ᚂ', 'ᚃ', 'ᚄ', 'ᚅ'},
	SpinnerOghamC:             {' ', 'ᚆ', 'ᚇ', 'ᚈ', 'ᚉ', 'ᚊ'},
	SpinnerParenthesis:        {'⎛', '⎜', '⎝', '⎞', '⎟', '⎠'},
	SpinnerCanadian:           {'ᔐ', 'ᯇ', 'ᔑ', 'ᯇ'},
	SpinnerBraille:            {'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'},
}

var spinnerTypeNames = [spinnerTypeCount]string{
	SpinnerAscii:              "ascii",
	SpinnerBoxDrawing:         "box_drawing",
	SpinnerArrow:              "arrow",
	SpinnerDoubleArrow:        "double_arrow",
	SpinnerQuadrantBlock:      "quadrant_block",
	SpinnerQuadrantBlockCrack: "quadrant_block_crack",
	SpinnerVerticalBlock:      "vertical_block",
	SpinnerHorizontalBlock:    "horizontal_block",
	SpinnerTriangleCorners:    "triangle_corners",
	SpinnerWhiteSquare:        "white_square",
	SpinnerWhiteCircle:        "white_circle",
	SpinnerBlackCircle:        "black_circle",
	SpinnerClock:              "clock",
	SpinnerMoonPhases:         "moon_phases",
	SpinnerBrailleOne:         "braille_one",
	SpinnerBrailleDouble:      "braille_double",
	SpinnerBrailleSix:         "braille_six",
	SpinnerBrailleSixDouble:   "braille_six_double",
	SpinnerBrailleEight:       "braille_eight",
	SpinnerBrailleEightDouble: "braille_eight_double",
	SpinnerOghamA:             "ogham_a",
	SpinnerOghamB:             "ogham_b",
	SpinnerOghamC:             "ogham_c",
	SpinnerParenthesis:        "parenthesis",
	SpinnerCanadian:           "canadian",
	SpinnerBraille:            "braille",
}

// Valid returns true for a known spinner type
func (t SpinnerType) Valid() bool {
	return t < spinnerTypeCount
}

// Frames returns the glyph sequence for the type. The slice is shared;
// callers must not modify it. Unknown types fall back to the default.
func (t SpinnerType) Frames() []rune {
	if !t.Valid() {
		t = SpinnerBrailleDouble
	}
	return spinnerFrames[t]
}

// String returns the snake_case type name
func (t SpinnerType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return spinnerTypeNames[t]
}

// SpinnerTypeByName resolves a snake_case name to a SpinnerType
func SpinnerTypeByName(name string) (SpinnerType, bool) {
	for t := SpinnerType(0); t < spinnerTypeCount; t++ {
		if spinnerTypeNames[t] == name {
			return t, true
		}
	}
	return SpinnerBrailleDouble, false
}

// SpinnerTypes returns all known types in declaration order
func SpinnerTypes() []SpinnerType {
	types := make([]SpinnerType, spinnerTypeCount)
	for i := range types {
		types[i] = SpinnerType(i)
	}
	return types
}
