package tui

import (
	"fmt"
	"time"

	"github.com/madnoberson/caponata/terminal"
)

// DefaultSpinnerInterval is the advance interval substituted by the
// builder when none is set
const DefaultSpinnerInterval = 100 * time.Millisecond

// SpinnerStyle is the immutable configuration of a Spinner.
// Assemble it through SpinnerStyleBuilder, which substitutes defaults
// for unset fields.
type SpinnerStyle struct {
	Type            SpinnerType
	Interval        time.Duration
	Alignment       Alignment
	ForegroundColor terminal.RGB
	BackgroundColor terminal.RGB
}

// SpinnerStyleBuilder assembles a SpinnerStyle from independently
// optional fields, substituting defaults for anything unset.
//
//	style, err := tui.NewSpinnerStyleBuilder().
//		WithType(tui.SpinnerBrailleEight).
//		WithInterval(80 * time.Millisecond).
//		WithAlignment(tui.AlignRight).
//		WithForegroundColor(terminal.RGB{R: 255, G: 255, B: 255}).
//		Build()
type SpinnerStyleBuilder struct {
	style       SpinnerStyle
	hasType     bool
	hasInterval bool
}

// NewSpinnerStyleBuilder creates a builder with all fields unset
func NewSpinnerStyleBuilder() *SpinnerStyleBuilder {
	return &SpinnerStyleBuilder{}
}

// WithType sets the glyph sequence variant
func (b *SpinnerStyleBuilder) WithType(t SpinnerType) *SpinnerStyleBuilder {
	b.style.Type = t
	b.hasType = true
	return b
}

// WithInterval sets the minimum time between frame advances.
// Zero means advance on every render call. Negative values clamp to zero.
func (b *SpinnerStyleBuilder) WithInterval(d time.Duration) *SpinnerStyleBuilder {
	if d < 0 {
		d = 0
	}
	b.style.Interval = d
	b.hasInterval = true
	return b
}

// WithAlignment sets which column of the target region the glyph occupies
func (b *SpinnerStyleBuilder) WithAlignment(a Alignment) *SpinnerStyleBuilder {
	b.style.Alignment = a
	return b
}

// WithForegroundColor sets the glyph color
func (b *SpinnerStyleBuilder) WithForegroundColor(c terminal.RGB) *SpinnerStyleBuilder {
	b.style.ForegroundColor = c
	return b
}

// WithBackgroundColor sets the cell background color
func (b *SpinnerStyleBuilder) WithBackgroundColor(c terminal.RGB) *SpinnerStyleBuilder {
	b.style.BackgroundColor = c
	return b
}

// Build produces the style, substituting defaults for unset fields.
// The error return is reserved for invalid glyph sequences; nothing
// reachable through the setters produces one today.
func (b *SpinnerStyleBuilder) Build() (SpinnerStyle, error) {
	style := b.style
	if !b.hasType {
		style.Type = SpinnerBrailleDouble
	}
	if !style.Type.Valid() {
		return SpinnerStyle{}, fmt.Errorf("unknown spinner type %d", style.Type)
	}
	if len(spinnerFrames[style.Type]) == 0 {
		return SpinnerStyle{}, fmt.Errorf("spinner type %s has no frames", style.Type)
	}
	if !b.hasInterval {
		style.Interval = DefaultSpinnerInterval
	}
	return style, nil
}

// Spinner renders a single-character animated indicator into one cell
// of a region. It owns its animation cursor exclusively; a given
// instance must only be used from one goroutine.
//
// The frame advances before every draw, including the first, so the
// first render shows the second glyph of the sequence. Under a zero
// interval, render call K shows frames[K mod N].
type Spinner struct {
	style  SpinnerStyle
	frames []rune

	frame int
	gate  cadence
}

// NewSpinner creates a spinner at frame 0, never advanced
func NewSpinner(style SpinnerStyle) *Spinner {
	return &Spinner{
		style:  style,
		frames: style.Type.Frames(),
		gate:   newCadence(style.Interval, NewMonotonicTimeProvider()),
	}
}

// SetTimeProvider replaces the clock used for advance gating.
// Call before the first Render.
func (s *Spinner) SetTimeProvider(tp TimeProvider) {
	s.gate.tp = tp
}

// Style returns the spinner's immutable configuration
func (s *Spinner) Style() SpinnerStyle {
	return s.style
}

// Reset restores frame 0 and the never-advanced state, as if the
// spinner had just been constructed
func (s *Spinner) Reset() {
	s.frame = 0
	s.gate.reset()
}

// Render advances the animation when due and writes one styled glyph
// into the region's top row at the configured alignment. Degenerate
// regions (zero width or height) are a no-op. Cells other than the
// single target cell are never touched.
func (s *Spinner) Render(r Region) {
	if r.W < 1 || r.H < 1 {
		return
	}

	if s.gate.tick() {
		s.frame = (s.frame + 1) % len(s.frames)
	}

	x := alignColumn(s.style.Alignment, r.W)
	r.Cell(x, 0, s.frames[s.frame], s.style.ForegroundColor, s.style.BackgroundColor, terminal.AttrNone)
}
