package tui

import (
	"testing"
	"time"

	"github.com/madnoberson/caponata/terminal"
)

func mustBuildText(t *testing.T, b *TextStyleBuilder) TextStyle {
	t.Helper()
	style, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return style
}

func rowString(r Region, y, w int) string {
	runes := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		ch := r.At(x, y).Rune
		if ch == 0 {
			ch = '.'
		}
		runes = append(runes, ch)
	}
	return string(runes)
}

func TestTextPlacement(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		alignment Alignment
		width     int
		want      string
	}{
		{"Left", "hi", AlignLeft, 6, "hi...."},
		{"Right", "hi", AlignRight, 6, "....hi"},
		{"Center", "hi", AlignCenter, 6, "..hi.."},
		{"Exact fit", "abcdef", AlignLeft, 6, "abcdef"},
		{"Truncated", "abcdefgh", AlignLeft, 6, "abcde…"},
		{"Truncated right", "abcdefgh", AlignRight, 6, "abcde…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := mustBuildText(t, NewTextStyleBuilder().
				WithText(tt.text).
				WithAlignment(tt.alignment))
			w := NewText(style)

			r := testRegion(tt.width, 1)
			w.Render(r)
			if got := rowString(r, 0, tt.width); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTextLeavesBlankSpaceUntouched(t *testing.T) {
	style := mustBuildText(t, NewTextStyleBuilder().WithText("ab"))
	w := NewText(style)

	width := 5
	cells := make([]terminal.Cell, width)
	sentinel := terminal.Cell{Rune: '#'}
	for i := range cells {
		cells[i] = sentinel
	}
	r := NewRegion(cells, width, 0, 0, width, 1)

	w.Render(r)
	for x := 2; x < width; x++ {
		if r.At(x, 0) != sentinel {
			t.Errorf("Cell %d outside the text was touched", x)
		}
	}
}

func TestTextSymbolStyles(t *testing.T) {
	red := terminal.RGB{R: 255}
	green := terminal.RGB{G: 255}
	blue := terminal.RGB{B: 255}

	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("abcdef").
		WithSymbolStyle(TargetSingle(0), SymbolStyle{ForegroundColor: red}).
		WithSymbolStyle(TargetRange(1, 2), SymbolStyle{ForegroundColor: green}).
		WithSymbolStyle(TargetUntouched(), SymbolStyle{ForegroundColor: blue}))
	w := NewText(style)

	r := testRegion(6, 1)
	w.Render(r)

	wantFg := []terminal.RGB{red, green, green, blue, blue, blue}
	for x, want := range wantFg {
		if got := r.At(x, 0).Fg; !got.Equal(want) {
			t.Errorf("Symbol %d: expected fg %v, got %v", x, want, got)
		}
	}
}

func TestTextSymbolStyleLastMatchWins(t *testing.T) {
	red := terminal.RGB{R: 255}
	green := terminal.RGB{G: 255}

	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("abc").
		WithSymbolStyle(TargetRange(0, 2), SymbolStyle{ForegroundColor: red}).
		WithSymbolStyle(TargetSingle(1), SymbolStyle{ForegroundColor: green}))
	w := NewText(style)

	r := testRegion(3, 1)
	w.Render(r)

	if got := r.At(1, 0).Fg; !got.Equal(green) {
		t.Errorf("Expected later rule to win at symbol 1, got %v", got)
	}
	if got := r.At(0, 0).Fg; !got.Equal(red) {
		t.Errorf("Expected range rule at symbol 0, got %v", got)
	}
}

func TestTextEveryTargets(t *testing.T) {
	red := terminal.RGB{R: 255}
	green := terminal.RGB{G: 255}

	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("abcd").
		WithSymbolStyle(TargetEvery(2), SymbolStyle{ForegroundColor: red}).
		WithSymbolStyle(TargetAllExceptEvery(2), SymbolStyle{ForegroundColor: green}))
	w := NewText(style)

	r := testRegion(4, 1)
	w.Render(r)

	for x := 0; x < 4; x++ {
		want := green
		if x%2 == 0 {
			want = red
		}
		if got := r.At(x, 0).Fg; !got.Equal(want) {
			t.Errorf("Symbol %d: expected %v, got %v", x, want, got)
		}
	}
}

// The text animation follows the spinner's cadence contract: the first
// render advances, so call K shows frame K mod N.
func TestTextAnimationCadence(t *testing.T) {
	frames := []TextFrame{{Text: "one"}, {Text: "two"}, {Text: "thr"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("sta").
		WithAnimation(TextAnimation{Frames: frames}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(3, 1)
	for k := 1; k <= 6; k++ {
		w.Render(r)
		want := frames[k%len(frames)].Text
		if got := rowString(r, 0, 3); got != want {
			t.Fatalf("Call %d: expected %q, got %q", k, want, got)
		}
	}
}

func TestTextAnimationIntervalGating(t *testing.T) {
	frames := []TextFrame{{Text: "aa"}, {Text: "bb"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithAnimation(TextAnimation{Frames: frames, Interval: 100 * time.Millisecond}))
	w := NewText(style)
	tp := NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	w.SetTimeProvider(tp)
	w.EnableAnimation()

	r := testRegion(2, 1)
	w.Render(r)
	if got := rowString(r, 0, 2); got != "bb" {
		t.Fatalf("First render: expected %q, got %q", "bb", got)
	}

	tp.Advance(40 * time.Millisecond)
	w.Render(r)
	if got := rowString(r, 0, 2); got != "bb" {
		t.Errorf("Elapsed < interval: expected frame to repeat, got %q", got)
	}

	tp.Advance(70 * time.Millisecond)
	w.Render(r)
	if got := rowString(r, 0, 2); got != "aa" {
		t.Errorf("Elapsed >= interval: expected %q, got %q", "aa", got)
	}
}

func TestTextAnimationDisableRevertsToStatic(t *testing.T) {
	frames := []TextFrame{{Text: "xx"}, {Text: "yy"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("st").
		WithAnimation(TextAnimation{Frames: frames}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(2, 1)
	w.Render(r)
	w.DisableAnimation()
	w.Render(r)
	if got := rowString(r, 0, 2); got != "st" {
		t.Errorf("Expected static text after disable, got %q", got)
	}
}

func TestTextAnimationPause(t *testing.T) {
	frames := []TextFrame{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithAnimation(TextAnimation{Frames: frames}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(1, 1)
	w.Render(r)
	first := rowString(r, 0, 1)

	w.PauseAnimation()
	w.Render(r)
	w.Render(r)
	if got := rowString(r, 0, 1); got != first {
		t.Errorf("Expected paused frame %q to hold, got %q", first, got)
	}

	w.ResumeAnimation()
	w.Render(r)
	if got := rowString(r, 0, 1); got == first {
		t.Errorf("Expected frame to advance after resume")
	}
}

func TestTextAnimationManualAdvance(t *testing.T) {
	frames := []TextFrame{{Text: "a"}, {Text: "b"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithAnimation(TextAnimation{Frames: frames, Advance: AdvanceManual}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(1, 1)
	w.Render(r)
	w.Render(r)
	if got := rowString(r, 0, 1); got != "a" {
		t.Errorf("Manual mode: expected frame 0 without explicit advance, got %q", got)
	}

	w.AdvanceAnimation()
	w.Render(r)
	if got := rowString(r, 0, 1); got != "b" {
		t.Errorf("Manual mode: expected frame 1 after advance, got %q", got)
	}
}

func TestTextAnimationFiniteRepeats(t *testing.T) {
	frames := []TextFrame{{Text: "x"}, {Text: "y"}}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithText("s").
		WithAnimation(TextAnimation{Frames: frames, Repeats: 1}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(1, 1)
	// One full cycle: advances land on frames 1, 0 — the wrap ends the
	// single permitted repeat
	w.Render(r)
	w.Render(r)
	if w.Animating() {
		t.Error("Expected animation to end after one full cycle")
	}
	w.Render(r)
	if got := rowString(r, 0, 1); got != "s" {
		t.Errorf("Expected static text after animation ended, got %q", got)
	}
}

func TestTextAnimationFrameColors(t *testing.T) {
	base := terminal.RGB{R: 10, G: 10, B: 10}
	red := terminal.RGB{R: 255}
	frames := []TextFrame{
		{Text: "a", ForegroundColor: red},
		{Text: "b"},
	}
	style := mustBuildText(t, NewTextStyleBuilder().
		WithForegroundColor(base).
		WithAnimation(TextAnimation{Frames: frames}))
	w := NewText(style)
	w.EnableAnimation()

	r := testRegion(1, 1)
	w.Render(r) // frame 1: no color, inherits base
	if got := r.At(0, 0).Fg; !got.Equal(base) {
		t.Errorf("Expected inherited base fg, got %v", got)
	}
	w.Render(r) // frame 0: explicit red
	if got := r.At(0, 0).Fg; !got.Equal(red) {
		t.Errorf("Expected frame fg %v, got %v", red, got)
	}
}

func TestTextAnimationBuilderRejectsEmptyFrames(t *testing.T) {
	_, err := NewTextStyleBuilder().
		WithAnimation(TextAnimation{}).
		Build()
	if err == nil {
		t.Error("Expected error for animation with no frames")
	}
}

func mouseEvent(x, y int, btn terminal.MouseButton, action terminal.MouseAction) terminal.Event {
	return terminal.Event{
		Type:        terminal.EventMouse,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    btn,
		MouseAction: action,
	}
}

func TestTextInteractions(t *testing.T) {
	style := mustBuildText(t, NewTextStyleBuilder().WithText("abc"))
	w := NewText(style)

	r := testRegion(5, 1)
	w.Render(r) // text occupies columns 0..2

	// Hover enters at symbol 1
	in, ok := w.HandleEvent(mouseEvent(1, 0, terminal.MouseBtnNone, terminal.MouseActionMove))
	if !ok || in.Kind != InteractionHovered || in.Symbol != 1 || in.Rune != 'b' {
		t.Fatalf("Expected Hovered at symbol 1, got %+v ok=%v", in, ok)
	}

	// Moving within the text changes the hovered symbol
	in, ok = w.HandleEvent(mouseEvent(2, 0, terminal.MouseBtnNone, terminal.MouseActionMove))
	if !ok || in.Kind != InteractionHoverMoved || in.Symbol != 2 {
		t.Fatalf("Expected HoverMoved to symbol 2, got %+v ok=%v", in, ok)
	}

	// Moving to the same symbol reports nothing
	if _, ok = w.HandleEvent(mouseEvent(2, 0, terminal.MouseBtnNone, terminal.MouseActionMove)); ok {
		t.Error("Expected no event for unchanged hover")
	}

	// Leaving the text unhovers
	in, ok = w.HandleEvent(mouseEvent(4, 0, terminal.MouseBtnNone, terminal.MouseActionMove))
	if !ok || in.Kind != InteractionUnhovered || in.Symbol != -1 {
		t.Fatalf("Expected Unhovered, got %+v ok=%v", in, ok)
	}

	// Press and release on a symbol
	in, ok = w.HandleEvent(mouseEvent(0, 0, terminal.MouseBtnLeft, terminal.MouseActionPress))
	if !ok || in.Kind != InteractionPressed || in.Rune != 'a' {
		t.Fatalf("Expected Pressed on 'a', got %+v ok=%v", in, ok)
	}
	in, ok = w.HandleEvent(mouseEvent(0, 0, terminal.MouseBtnLeft, terminal.MouseActionRelease))
	if !ok || in.Kind != InteractionReleased || in.Rune != 'a' {
		t.Fatalf("Expected Released on 'a', got %+v ok=%v", in, ok)
	}
}

func TestTextInteractionIgnoresKeys(t *testing.T) {
	style := mustBuildText(t, NewTextStyleBuilder().WithText("abc"))
	w := NewText(style)
	w.Render(testRegion(3, 1))

	if _, ok := w.HandleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEnter}); ok {
		t.Error("Expected key events to be ignored")
	}
}

func TestTextDegenerateRegion(t *testing.T) {
	style := mustBuildText(t, NewTextStyleBuilder().WithText("abc"))
	w := NewText(style)
	w.Render(testRegion(3, 1).Sub(0, 0, 0, 1))

	// Nothing rendered, so nothing is hoverable
	if _, ok := w.HandleEvent(mouseEvent(0, 0, terminal.MouseBtnNone, terminal.MouseActionMove)); ok {
		t.Error("Expected no interaction after degenerate render")
	}
}
