package tui

// Target selects symbol positions within a text widget's row.
// Positions are 0-based offsets from the beginning of the displayed text.
type Target struct {
	kind targetKind
	a, b int
}

type targetKind uint8

const (
	targetUntouched targetKind = iota
	targetSingle
	targetRange
	targetEvery
	targetAllExceptEvery
)

// TargetSingle selects one symbol position
func TargetSingle(i int) Target {
	return Target{kind: targetSingle, a: i}
}

// TargetRange selects an inclusive range of positions
func TargetRange(start, end int) Target {
	return Target{kind: targetRange, a: start, b: end}
}

// TargetEvery selects every n-th position, starting from 0
func TargetEvery(n int) Target {
	return Target{kind: targetEvery, a: n}
}

// TargetAllExceptEvery selects all positions except every n-th one
func TargetAllExceptEvery(n int) Target {
	return Target{kind: targetAllExceptEvery, a: n}
}

// TargetUntouched selects positions matched by no other rule
func TargetUntouched() Target {
	return Target{kind: targetUntouched}
}

// matches reports whether position i is selected by an explicit rule.
// Untouched never matches here; it is resolved by the widget after all
// explicit rules have been checked.
func (t Target) matches(i int) bool {
	switch t.kind {
	case targetSingle:
		return i == t.a
	case targetRange:
		return i >= t.a && i <= t.b
	case targetEvery:
		return t.a > 0 && i%t.a == 0
	case targetAllExceptEvery:
		return t.a > 0 && i%t.a != 0
	}
	return false
}

// isUntouched reports whether this is the fallback rule
func (t Target) isUntouched() bool {
	return t.kind == targetUntouched
}
