package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tcellTerm implements Terminal on top of a tcell.Screen
type tcellTerm struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouseOn     bool
	lastButtons tcell.ButtonMask
}

// New creates a Terminal backed by the platform tcell screen
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellTerm{screen: screen}, nil
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.initialized = true
	t.finalized = false
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized || !t.initialized {
		return
	}
	t.screen.Fini()
	t.finalized = true
	t.initialized = false
}

func (t *tcellTerm) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Flush writes the cell buffer to the screen. Wide runes occupy two
// columns; the cell to the right of a wide rune is skipped.
func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, cellStyle(c))
			if runewidth.RuneWidth(ch) == 2 {
				x++
			}
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	style := tcell.StyleDefault.Background(bg.toTcell())
	t.screen.Fill(' ', style)
	t.screen.Show()
}

func (t *tcellTerm) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		t.screen.Sync()
	}
}

func (t *tcellTerm) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
}

func (t *tcellTerm) SetMouseEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	if enabled {
		t.screen.EnableMouse()
	} else {
		t.screen.DisableMouse()
	}
	t.mouseOn = enabled
}

// PollEvent blocks until the next input event and converts it
// from the tcell representation
func (t *tcellTerm) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			return t.convertKey(tev)
		case *tcell.EventMouse:
			return t.convertMouse(tev)
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError, Err: tev}
		}
		// Unhandled event kinds (paste, focus) are dropped
	}
}

func (t *tcellTerm) convertKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace}
	case tcell.KeyDelete:
		return Event{Type: EventKey, Key: KeyDelete}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

func (t *tcellTerm) convertMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	buttons := ev.Buttons()

	t.mu.Lock()
	prev := t.lastButtons
	t.lastButtons = buttons
	t.mu.Unlock()

	e := Event{Type: EventMouse, MouseX: x, MouseY: y}

	switch {
	case buttons&tcell.WheelUp != 0:
		e.MouseBtn = MouseBtnWheelUp
		e.MouseAction = MouseActionPress
	case buttons&tcell.WheelDown != 0:
		e.MouseBtn = MouseBtnWheelDown
		e.MouseAction = MouseActionPress
	case prev == tcell.ButtonNone && buttons != tcell.ButtonNone:
		e.MouseBtn = buttonFromMask(buttons)
		e.MouseAction = MouseActionPress
	case prev != tcell.ButtonNone && buttons == tcell.ButtonNone:
		e.MouseBtn = buttonFromMask(prev)
		e.MouseAction = MouseActionRelease
	default:
		e.MouseBtn = buttonFromMask(buttons)
		e.MouseAction = MouseActionMove
	}
	return e
}

func buttonFromMask(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button2 != 0:
		return MouseBtnMiddle
	case m&tcell.Button3 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

// cellStyle converts cell colors and attributes to a tcell style
func cellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(c.Fg.toTcell()).
		Background(c.Bg.toTcell())

	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}
