// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"fmt"
	"time"

	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/input"
	"github.com/automoto/stuntcat/simulation"
	"github.com/gdamore/tcell/v2"
)

var runeKeys = map[rune]cfg.KeyID{
	' ': cfg.KeySpace,
	'a': cfg.KeyA,
	'd': cfg.KeyD,
	'w': cfg.KeyW,
	's': cfg.KeyS,
}

var arrowKeys = map[tcell.Key]cfg.KeyID{
	tcell.KeyLeft:  cfg.KeyLeft,
	tcell.KeyRight: cfg.KeyRight,
	tcell.KeyUp:    cfg.KeyUp,
	tcell.KeyDown:  cfg.KeyDown,
}

type Host struct {
	screen     tcell.Screen
	sim        *simulation.Simulation
	translator *input.Translator
	tones      *Tones
	held       map[cfg.KeyID]time.Time // last press or repeat per key
}

func NewHost(seed int64) (*Host, error) {
	sim, err := simulation.New(seed)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Host{
		screen:     screen,
		sim:        sim,
		translator: input.NewTranslator(sim),
		tones:      NewTones(),
		held:       map[cfg.KeyID]time.Time{},
	}, nil
}

// Run steps the game until the player quits.
func (h *Host) Run() {
	frame := time.Duration(cfg.Terminal.FrameMs) * time.Millisecond
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.releaseStale(now)
			h.sim.Tick(tickMs(now.Sub(last)))
			last = now
			h.tones.Play(h.sim.DrainCues())
			h.draw()
		}
	}
}

// tickMs turns wall time since the last frame into a simulation step.
func tickMs(elapsed time.Duration) float64 {
	ms := float64(elapsed.Milliseconds())
	if ms < 0 {
		return 0
	}
	return min(ms, float64(cfg.Terminal.MaxTickMs))
}

func (h *Host) Close() {
	h.tones.Close()
	h.screen.Fini()
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		id, ok := arrowKeys[ev.Key()]
		if !ok && ev.Key() == tcell.KeyRune {
			id, ok = runeKeys[ev.Rune()]
		}
		if ok {
			h.press(id, ev.When())
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// press reports a key down unless it is a repeat of a key already held.
func (h *Host) press(id cfg.KeyID, when time.Time) {
	if _, held := h.held[id]; !held {
		h.translator.Handle(input.Event{Kind: input.KeyDown, Key: id})
	}
	h.held[id] = when
}

func (h *Host) releaseStale(now time.Time) {
	hold := time.Duration(cfg.Terminal.HoldMs) * time.Millisecond
	for id, at := range h.held {
		if now.Sub(at) > hold {
			delete(h.held, id)
			h.translator.Handle(input.Event{Kind: input.KeyUp, Key: id})
		}
	}
}

func (h *Host) draw() {
	h.screen.Clear()
	cols, rows := h.screen.Size()
	sx := float64(cols) / float64(cfg.C.Width)
	sy := float64(rows) / float64(cfg.C.Height)
	cell := func(x, y float64) (int, int) { return int(x * sx), int(y * sy) }

	plain := tcell.StyleDefault
	wireStyle := plain.Foreground(tcell.ColorWhite)
	poolStyle := plain.Foreground(tcell.ColorBlue)

	_, wireRow := cell(0, cfg.WireHeight())
	wireCol, _ := cell(cfg.Cat.WireStartRatio*float64(cfg.C.Width), 0)
	for c := 0; c < cols; c++ {
		if c >= wireCol {
			h.screen.SetContent(c, wireRow, '─', nil, wireStyle)
		} else {
			h.screen.SetContent(c, rows-1, '~', nil, poolStyle)
		}
	}

	if a := h.sim.Antagonist(); a.Visible {
		x, y := cell(a.X, float64(cfg.C.Height)-float64(cfg.Render.SharkHeight)+a.Sink)
		h.text(x, y, "<SHARK>", plain.Foreground(tcell.ColorGray))
	}
	if beam, ok := h.sim.Beam(); ok {
		x0, y := cell(beam.X, beam.Y)
		x1, _ := cell(beam.X+beam.W, beam.Y)
		for c := x0; c < x1; c++ {
			h.screen.SetContent(c, y, '=', nil, plain.Foreground(tcell.ColorRed))
		}
	}

	p := h.sim.Player()
	x, y := cell(p.X, p.Y)
	hx, hy := cell(p.HeadX, p.HeadY)
	h.screen.SetContent(x, y, 'O', nil, plain.Foreground(tcell.ColorYellow))
	h.screen.SetContent((x+hx)/2, (y+hy)/2, '|', nil, plain.Foreground(tcell.ColorYellow))
	h.screen.SetContent(hx, hy, '@', nil, plain.Foreground(tcell.ColorYellow))

	for _, f := range h.sim.Catchables() {
		fx, fy := cell(f.X, f.Y)
		h.screen.SetContent(fx, fy, '>', nil, plain.Foreground(tcell.ColorAqua))
	}
	for _, f := range h.sim.Hostiles() {
		fx, fy := cell(f.X, f.Y)
		h.screen.SetContent(fx, fy, '#', nil, plain.Foreground(tcell.ColorRed))
	}

	status := fmt.Sprintf(" score %d ", p.Score)
	if h.sim.CrowdAngry() {
		status += " the crowd is angry! "
	}
	h.text(0, 0, status, plain.Reverse(true))
	h.screen.Show()
}

func (h *Host) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
