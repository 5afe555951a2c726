package tui

import (
	"time"

	"github.com/madnoberson/caponata/terminal"
)

// AdvanceMode controls how a text animation moves between frames
type AdvanceMode uint8

const (
	// AdvanceAuto advances on the render cadence
	AdvanceAuto AdvanceMode = iota
	// AdvanceManual advances only on explicit AdvanceAnimation calls
	AdvanceManual
)

// TextFrame is one step of a text animation. Zero colors inherit the
// widget's base style.
type TextFrame struct {
	Text            string
	ForegroundColor terminal.RGB
	BackgroundColor terminal.RGB
}

// TextAnimation cycles a text widget through display frames on the
// same advance-cadence contract as the spinner: the first render
// advances, later renders advance once Interval has elapsed, and a
// zero Interval advances on every render.
type TextAnimation struct {
	Frames   []TextFrame
	Interval time.Duration
	Advance  AdvanceMode

	// Repeats limits how many full cycles run before the animation
	// disables itself. Zero means repeat forever.
	Repeats int
}

// TickerFrames builds a marquee animation: a window of the given width
// slides across the text, wrapping around with a gap of spaces.
func TickerFrames(text string, width int) []TextFrame {
	runes := []rune(text)
	if width <= 0 || len(runes) == 0 {
		return nil
	}
	if len(runes) <= width {
		return []TextFrame{{Text: text}}
	}

	// Pad with a window-sized gap so the text scrolls fully out
	padded := append(append([]rune{}, runes...), make([]rune, width)...)
	for i := len(runes); i < len(padded); i++ {
		padded[i] = ' '
	}

	frames := make([]TextFrame, len(padded))
	for i := range padded {
		window := make([]rune, width)
		for j := 0; j < width; j++ {
			window[j] = padded[(i+j)%len(padded)]
		}
		frames[i] = TextFrame{Text: string(window)}
	}
	return frames
}

// WaveFrames builds a pulse animation: the text stays fixed while its
// foreground oscillates between base and peak, blended in Luv space.
// steps is the number of frames in one base-to-peak-to-base cycle.
func WaveFrames(text string, base, peak terminal.RGB, steps int) []TextFrame {
	if steps < 2 {
		steps = 2
	}
	frames := make([]TextFrame, steps)
	half := steps / 2
	for i := range frames {
		var t float64
		if i <= half {
			t = float64(i) / float64(half)
		} else {
			t = float64(steps-i) / float64(steps-half)
		}
		frames[i] = TextFrame{
			Text:            text,
			ForegroundColor: base.Blend(peak, t),
		}
	}
	return frames
}

// ScannerFrames builds a sweep animation: the cursor rune passes over
// the text one position per frame, left to right, then restarts.
func ScannerFrames(text string, cursor rune) []TextFrame {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	frames := make([]TextFrame, len(runes))
	for i := range runes {
		step := make([]rune, len(runes))
		copy(step, runes)
		step[i] = cursor
		frames[i] = TextFrame{Text: string(step)}
	}
	return frames
}
