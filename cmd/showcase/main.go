// Showcase renders every spinner variant alongside animated text widgets.
// Press q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/madnoberson/caponata/terminal"
	"github.com/madnoberson/caponata/tui"
)

// Colors
var (
	colorDefaultBg = terminal.RGB{R: 20, G: 20, B: 30}
	colorDefaultFg = terminal.RGB{R: 200, G: 200, B: 200}
	colorLabelFg   = terminal.RGB{R: 130, G: 170, B: 220}
	colorSpinnerFg = terminal.RGB{R: 255, G: 200, B: 60}
	colorTitleFg   = terminal.RGB{R: 100, G: 180, B: 200}
	colorTitlePeak = terminal.RGB{R: 255, G: 255, B: 255}
	colorStatusFg  = terminal.RGB{R: 140, G: 140, B: 140}
)

// Layout
const (
	headerHeight = 2
	statusHeight = 1
	columnWidth  = 32
	labelWidth   = 22
)

const frameInterval = 33 * time.Millisecond

// Config holds optional showcase settings loaded from TOML
type Config struct {
	IntervalMs int    `toml:"interval_ms"`
	Alignment  string `toml:"alignment"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

var (
	configPath string
	intervalMs int
)

func init() {
	flag.StringVar(&configPath, "config", "", "optional TOML config path")
	flag.IntVar(&intervalMs, "interval", 0, "advance interval in ms, overrides config")
}

func loadConfig() (Config, error) {
	cfg := Config{IntervalMs: 100, Alignment: "right"}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}
	if intervalMs > 0 {
		cfg.IntervalMs = intervalMs
	}
	return cfg, nil
}

// parseHex parses "#RRGGBB" into an RGB, fallback on malformed input
func parseHex(s string, fallback terminal.RGB) terminal.RGB {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return terminal.RGB{R: r, G: g, B: b}
}

func parseAlignment(s string) tui.Alignment {
	switch s {
	case "center":
		return tui.AlignCenter
	case "right":
		return tui.AlignRight
	}
	return tui.AlignLeft
}

type app struct {
	term     terminal.Terminal
	spinners []*tui.Spinner
	labels   []*tui.Text
	title    *tui.Text
	ticker   *tui.Text
	status   string

	cells []terminal.Cell
	w, h  int
}

func newApp(cfg Config) (*app, error) {
	term, err := terminal.New()
	if err != nil {
		return nil, err
	}

	fg := parseHex(cfg.Foreground, colorSpinnerFg)
	bg := parseHex(cfg.Background, terminal.RGB{})
	align := parseAlignment(cfg.Alignment)
	interval := time.Duration(cfg.IntervalMs) * time.Millisecond

	a := &app{term: term}
	for _, st := range tui.SpinnerTypes() {
		style, err := tui.NewSpinnerStyleBuilder().
			WithType(st).
			WithInterval(interval).
			WithAlignment(align).
			WithForegroundColor(fg).
			WithBackgroundColor(bg).
			Build()
		if err != nil {
			return nil, err
		}
		a.spinners = append(a.spinners, tui.NewSpinner(style))

		labelStyle, err := tui.NewTextStyleBuilder().
			WithText(st.String()).
			WithForegroundColor(colorLabelFg).
			Build()
		if err != nil {
			return nil, err
		}
		a.labels = append(a.labels, tui.NewText(labelStyle))
	}

	titleStyle, err := tui.NewTextStyleBuilder().
		WithText("caponata showcase").
		WithAlignment(tui.AlignCenter).
		WithForegroundColor(colorTitleFg).
		WithAnimation(tui.TextAnimation{
			Frames:   tui.WaveFrames("caponata showcase", colorTitleFg, colorTitlePeak, 24),
			Interval: 80 * time.Millisecond,
		}).
		Build()
	if err != nil {
		return nil, err
	}
	a.title = tui.NewText(titleStyle)
	a.title.EnableAnimation()

	tickerText := "hover the title, press q or Esc to quit"
	tickerStyle, err := tui.NewTextStyleBuilder().
		WithForegroundColor(colorStatusFg).
		WithAnimation(tui.TextAnimation{
			Frames:   tui.TickerFrames(tickerText, 30),
			Interval: 120 * time.Millisecond,
		}).
		Build()
	if err != nil {
		return nil, err
	}
	a.ticker = tui.NewText(tickerStyle)
	a.ticker.EnableAnimation()

	return a, nil
}

func (a *app) resize(w, h int) {
	a.w, a.h = w, h
	a.cells = make([]terminal.Cell, w*h)
}

func (a *app) draw() {
	root := tui.NewRegion(a.cells, a.w, 0, 0, a.w, a.h)
	root.Fill(colorDefaultBg)

	a.title.Render(root.Sub(0, 0, a.w, 1))

	// Spinner grid below the header, one label+spinner pair per row,
	// wrapping into columns
	body := root.Sub(0, headerHeight, a.w, a.h-headerHeight-statusHeight)
	rows := body.H
	if rows < 1 {
		rows = 1
	}
	for i := range a.spinners {
		col := i / rows
		row := i % rows
		line := body.Sub(col*columnWidth, row, columnWidth, 1)
		a.labels[i].Render(line.Sub(0, 0, labelWidth, 1))
		a.spinners[i].Render(line.Sub(labelWidth, 0, columnWidth-labelWidth, 1))
	}

	statusLine := root.Sub(0, a.h-statusHeight, a.w, 1)
	a.ticker.Render(statusLine.Sub(0, 0, 30, 1))
	if a.status != "" {
		statusRegion := statusLine.Sub(32, 0, a.w-32, 1)
		for i, ch := range a.status {
			statusRegion.Cell(i, 0, ch, colorStatusFg, terminal.RGB{}, terminal.AttrNone)
		}
	}

	a.term.Flush(a.cells, a.w, a.h)
}

func (a *app) run() error {
	if err := a.term.Init(); err != nil {
		return err
	}
	defer a.term.Fini()
	a.term.SetMouseEnabled(true)

	w, h := a.term.Size()
	a.resize(w, h)

	events := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := a.term.PollEvent()
			events <- ev
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	for {
		select {
		case <-frame.C:
			a.draw()

		case ev := <-events:
			switch ev.Type {
			case terminal.EventKey:
				if ev.Key == terminal.KeyEscape || ev.Key == terminal.KeyCtrlC ||
					(ev.Key == terminal.KeyRune && ev.Rune == 'q') {
					return nil
				}
			case terminal.EventResize:
				a.resize(ev.Width, ev.Height)
				a.term.Sync()
			case terminal.EventMouse:
				if in, ok := a.title.HandleEvent(ev); ok {
					a.status = interactionStatus(in)
				}
			case terminal.EventError:
				return ev.Err
			case terminal.EventClosed:
				return nil
			}
		}
	}
}

func interactionStatus(in tui.Interaction) string {
	switch in.Kind {
	case tui.InteractionHovered, tui.InteractionHoverMoved:
		return fmt.Sprintf("hovering symbol %d (%c)", in.Symbol, in.Rune)
	case tui.InteractionUnhovered:
		return ""
	case tui.InteractionPressed:
		return fmt.Sprintf("pressed symbol %d (%c)", in.Symbol, in.Rune)
	case tui.InteractionReleased:
		return fmt.Sprintf("released symbol %d (%c)", in.Symbol, in.Rune)
	}
	return ""
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := a.run(); err != nil {
		log.Fatal(err)
	}
}
