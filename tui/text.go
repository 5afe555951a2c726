package tui

import (
	"fmt"

	"github.com/madnoberson/caponata/terminal"
)

// SymbolStyle is the styling applied to a single text cell
type SymbolStyle struct {
	ForegroundColor terminal.RGB
	BackgroundColor terminal.RGB
	Attr            terminal.Attr
}

// TargetStyle binds a symbol style to the positions a target selects
type TargetStyle struct {
	Target Target
	Style  SymbolStyle
}

// TextStyle is the immutable configuration of a Text widget
type TextStyle struct {
	Text      string
	Alignment Alignment
	Base      SymbolStyle

	// SymbolStyles are applied in order; the last matching rule wins.
	// An untouched rule styles positions matched by no other rule.
	SymbolStyles []TargetStyle

	// Animation, when set, can be enabled on the widget at runtime
	Animation *TextAnimation
}

// TextStyleBuilder assembles a TextStyle from independently optional fields
type TextStyleBuilder struct {
	style TextStyle
}

// NewTextStyleBuilder creates a builder with all fields unset
func NewTextStyleBuilder() *TextStyleBuilder {
	return &TextStyleBuilder{}
}

// WithText sets the static display string
func (b *TextStyleBuilder) WithText(s string) *TextStyleBuilder {
	b.style.Text = s
	return b
}

// WithAlignment sets where the string is placed within the row
func (b *TextStyleBuilder) WithAlignment(a Alignment) *TextStyleBuilder {
	b.style.Alignment = a
	return b
}

// WithForegroundColor sets the base text color
func (b *TextStyleBuilder) WithForegroundColor(c terminal.RGB) *TextStyleBuilder {
	b.style.Base.ForegroundColor = c
	return b
}

// WithBackgroundColor sets the base cell background
func (b *TextStyleBuilder) WithBackgroundColor(c terminal.RGB) *TextStyleBuilder {
	b.style.Base.BackgroundColor = c
	return b
}

// WithAttr sets base text attributes
func (b *TextStyleBuilder) WithAttr(attr terminal.Attr) *TextStyleBuilder {
	b.style.Base.Attr = attr
	return b
}

// WithSymbolStyle appends a per-target styling rule
func (b *TextStyleBuilder) WithSymbolStyle(target Target, style SymbolStyle) *TextStyleBuilder {
	b.style.SymbolStyles = append(b.style.SymbolStyles, TargetStyle{Target: target, Style: style})
	return b
}

// WithAnimation attaches an animation the widget can enable at runtime
func (b *TextStyleBuilder) WithAnimation(anim TextAnimation) *TextStyleBuilder {
	b.style.Animation = &anim
	return b
}

// Build produces the style. It fails only on an attached animation
// with no frames.
func (b *TextStyleBuilder) Build() (TextStyle, error) {
	style := b.style
	if style.Animation != nil && len(style.Animation.Frames) == 0 {
		return TextStyle{}, fmt.Errorf("text animation has no frames")
	}
	return style, nil
}

// InteractionKind classifies pointer interactions with a text widget
type InteractionKind uint8

const (
	InteractionNone InteractionKind = iota
	InteractionHovered
	InteractionHoverMoved
	InteractionUnhovered
	InteractionPressed
	InteractionReleased
)

// Interaction reports a pointer interaction relative to the displayed
// text. Symbol is the 0-based position within the displayed string,
// -1 for Unhovered.
type Interaction struct {
	Kind   InteractionKind
	Symbol int
	Rune   rune
}

// Text renders a single-line string within a one-row region, placed by
// alignment and truncated to fit. With an animation enabled it cycles
// display frames on the spinner's advance-cadence contract. Like the
// spinner, a Text instance is single-owner, single-goroutine state.
type Text struct {
	style TextStyle

	animating bool
	paused    bool
	frame     int
	cycles    int
	gate      cadence

	// Last rendered span, absolute buffer coordinates, for hit testing
	spanX, spanY, spanN int
	spanRunes           []rune
	hovered             int
	pressed             bool
}

// NewText creates a text widget showing its static string
func NewText(style TextStyle) *Text {
	t := &Text{
		style:   style,
		hovered: -1,
	}
	if style.Animation != nil {
		t.gate = newCadence(style.Animation.Interval, NewMonotonicTimeProvider())
	}
	return t
}

// SetTimeProvider replaces the clock used for animation gating.
// Call before the first Render.
func (t *Text) SetTimeProvider(tp TimeProvider) {
	t.gate.tp = tp
}

// SetText replaces the static display string
func (t *Text) SetText(s string) {
	t.style.Text = s
}

// EnableAnimation starts the attached animation from its first frame.
// Returns false when the style has no animation.
func (t *Text) EnableAnimation() bool {
	if t.style.Animation == nil {
		return false
	}
	t.animating = true
	t.paused = false
	t.frame = 0
	t.cycles = 0
	t.gate.reset()
	return true
}

// DisableAnimation reverts to the static string
func (t *Text) DisableAnimation() {
	t.animating = false
}

// PauseAnimation freezes the current frame
func (t *Text) PauseAnimation() {
	t.paused = true
}

// ResumeAnimation continues a paused animation
func (t *Text) ResumeAnimation() {
	t.paused = false
}

// AdvanceAnimation moves a manual-mode animation one frame forward
func (t *Text) AdvanceAnimation() {
	anim := t.style.Animation
	if !t.animating || anim == nil || anim.Advance != AdvanceManual {
		return
	}
	t.advanceFrame(anim)
}

// Animating reports whether the animation is currently active
func (t *Text) Animating() bool {
	return t.animating
}

func (t *Text) advanceFrame(anim *TextAnimation) {
	t.frame = (t.frame + 1) % len(anim.Frames)
	if t.frame == 0 {
		t.cycles++
		if anim.Repeats > 0 && t.cycles >= anim.Repeats {
			t.animating = false
		}
	}
}

// Render writes the current display string into the region's top row.
// Cells outside the placed text are left untouched. Degenerate regions
// are a no-op.
func (t *Text) Render(r Region) {
	if r.W < 1 || r.H < 1 {
		t.spanN = 0
		return
	}

	anim := t.style.Animation
	if t.animating && anim != nil {
		if anim.Advance == AdvanceAuto && !t.paused && t.gate.tick() {
			t.advanceFrame(anim)
		}
		if t.animating {
			t.renderFrame(r, anim.Frames[t.frame])
			return
		}
	}

	t.renderStatic(r)
}

func (t *Text) renderFrame(r Region, frame TextFrame) {
	fg := frame.ForegroundColor
	if fg.IsDefault() {
		fg = t.style.Base.ForegroundColor
	}
	bg := frame.BackgroundColor
	if bg.IsDefault() {
		bg = t.style.Base.BackgroundColor
	}

	runes, x := t.place(r, frame.Text)
	for i, ch := range runes {
		r.Cell(x+i, 0, ch, fg, bg, t.style.Base.Attr)
	}
}

func (t *Text) renderStatic(r Region) {
	runes, x := t.place(r, t.style.Text)
	for i, ch := range runes {
		style := t.symbolStyle(i)
		r.Cell(x+i, 0, ch, style.ForegroundColor, style.BackgroundColor, style.Attr)
	}
}

// place truncates the string to the region width, computes the aligned
// start column, and records the rendered span for hit testing
func (t *Text) place(r Region, s string) ([]rune, int) {
	if RuneLen(s) > r.W {
		s = Truncate(s, r.W)
	}
	runes := []rune(s)
	x := alignOffset(t.style.Alignment, r.W, len(runes))

	t.spanX = r.X + x
	t.spanY = r.Y
	t.spanN = len(runes)
	t.spanRunes = runes
	return runes, x
}

// symbolStyle resolves the style for displayed position i: the last
// matching explicit rule wins, untouched rules catch the rest
func (t *Text) symbolStyle(i int) SymbolStyle {
	style := t.style.Base
	matched := false
	for _, rule := range t.style.SymbolStyles {
		if rule.Target.matches(i) {
			style = rule.Style
			matched = true
		}
	}
	if !matched {
		for _, rule := range t.style.SymbolStyles {
			if rule.Target.isUntouched() {
				style = rule.Style
			}
		}
	}
	return style
}

// HandleEvent feeds a terminal event to the widget and reports the
// resulting interaction, if any. Mouse coordinates are absolute buffer
// coordinates, matched against the last rendered span.
func (t *Text) HandleEvent(ev terminal.Event) (Interaction, bool) {
	if ev.Type != terminal.EventMouse {
		return Interaction{}, false
	}

	inside := t.spanN > 0 &&
		ev.MouseY == t.spanY &&
		ev.MouseX >= t.spanX && ev.MouseX < t.spanX+t.spanN
	symbol := -1
	var ch rune
	if inside {
		symbol = ev.MouseX - t.spanX
		ch = t.spanRunes[symbol]
	}

	switch ev.MouseAction {
	case terminal.MouseActionPress:
		if inside && ev.MouseBtn == terminal.MouseBtnLeft {
			t.pressed = true
			return Interaction{Kind: InteractionPressed, Symbol: symbol, Rune: ch}, true
		}

	case terminal.MouseActionRelease:
		if t.pressed {
			t.pressed = false
			if inside {
				return Interaction{Kind: InteractionReleased, Symbol: symbol, Rune: ch}, true
			}
		}

	case terminal.MouseActionMove:
		switch {
		case inside && t.hovered < 0:
			t.hovered = symbol
			return Interaction{Kind: InteractionHovered, Symbol: symbol, Rune: ch}, true
		case inside && t.hovered != symbol:
			t.hovered = symbol
			return Interaction{Kind: InteractionHoverMoved, Symbol: symbol, Rune: ch}, true
		case !inside && t.hovered >= 0:
			t.hovered = -1
			return Interaction{Kind: InteractionUnhovered, Symbol: -1}, true
		}
	}

	return Interaction{}, false
}
