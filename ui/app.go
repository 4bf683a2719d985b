// Package ui runs the balance game on a tcell screen.
//
// Mouse press/drag/release on the tray drives the touch adapter, digit keys
// pick up an item for the pointer adapter and h/l drop it on a pan.
package ui

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
	"github.com/lixenwraith/fruit-balance/input"
	"github.com/lixenwraith/fruit-balance/locale"
)

// SoundControl is the sound manager surface the UI needs
type SoundControl interface {
	core.SoundPlayer
	Enabled() bool
	Toggle() bool
}

// App owns the screen and routes events into the controller and game
// All fields are touched only by the loop goroutine
type App struct {
	screen  tcell.Screen
	catalog *catalog.Catalog
	game    *engine.Game
	ctrl    *input.Controller
	sound   SoundControl
	printer *locale.Printer
	keys    *input.KeyTable

	layout        Layout
	cursor        core.Point
	mouseDown     bool
	frameInterval time.Duration
}

// MessagesFor builds the feedback strings for printer's locale
func MessagesFor(p *locale.Printer) engine.Messages {
	return engine.Messages{
		PlaceBoth: p.Sprintf(locale.KeyPlaceBoth),
		Correct:   p.Sprintf(locale.KeyCorrect),
		Retry:     p.Sprintf(locale.KeyRetry),
	}
}

// NewApp wires a fresh game to an initialized screen
func NewApp(screen tcell.Screen, cat *catalog.Catalog, sound SoundControl, printer *locale.Printer) *App {
	game := engine.NewGame(sound, MessagesFor(printer))
	a := &App{
		screen:        screen,
		catalog:       cat,
		game:          game,
		ctrl:          input.NewController(cat, game, sound),
		sound:         sound,
		printer:       printer,
		keys:          input.DefaultKeyTable(),
		frameInterval: 33 * time.Millisecond,
	}
	a.resize()
	return a
}

// SetFrameInterval sets the idle redraw period
func (a *App) SetFrameInterval(d time.Duration) {
	if d > 0 {
		a.frameInterval = d
	}
}

// SetKeyTable replaces the key bindings
func (a *App) SetKeyTable(kt *input.KeyTable) {
	if kt != nil {
		a.keys = kt
	}
}

// Game returns the session state
func (a *App) Game() *engine.Game {
	return a.game
}

// Controller returns the gesture controller
func (a *App) Controller() *input.Controller {
	return a.ctrl
}

// Layout returns the current layout
func (a *App) Layout() Layout {
	return a.layout
}

// resize recomputes the layout and re-registers drop zones
func (a *App) resize() {
	w, h := a.screen.Size()
	a.layout = ComputeLayout(w, h, a.catalog.Len())
	if a.layout.TooSmall {
		a.ctrl.CancelTouchDrag()
		a.mouseDown = false
		return
	}
	a.ctrl.SetZone(engine.SideLeft, a.layout.LeftZone)
	a.ctrl.SetZone(engine.SideRight, a.layout.RightZone)
}

func (a *App) dragActive() bool {
	_, ok := a.ctrl.Session()
	return ok
}

// HandleEvent applies one terminal event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(core.Point{X: x, Y: y}, ev.Buttons())
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	entry, ok := a.keys.Lookup(ev.Key(), ev.Rune())
	if !ok {
		return true
	}

	switch entry.Intent {
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		// First escape abandons a gesture, second one quits
		if a.dragActive() {
			a.ctrl.CancelTouchDrag()
			a.mouseDown = false
			return true
		}
		if _, ok := a.ctrl.Pending(); ok {
			a.ctrl.CancelPointerDrag()
			return true
		}
		return false
	case input.IntentToggleSound:
		a.toggleSound()
	case input.IntentPickItem:
		if item, ok := a.catalog.At(entry.Slot); ok {
			a.ctrl.BeginPointerDrag(item.ID)
		}
	case input.IntentDropLeft:
		a.ctrl.DropPending(engine.SideLeft)
	case input.IntentDropRight:
		a.ctrl.DropPending(engine.SideRight)
	case input.IntentAnswer:
		a.game.Evaluate(entry.Symbol)
	}
	return true
}

// handleMouse turns button transitions into touch gestures and clicks
func (a *App) handleMouse(p core.Point, buttons tcell.ButtonMask) {
	a.cursor = p
	if a.layout.TooSmall {
		return
	}
	pressed := buttons&tcell.Button1 != 0

	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.press(p)
	case pressed && a.mouseDown:
		a.ctrl.UpdateTouchDrag(p)
	case !pressed && a.mouseDown:
		a.mouseDown = false
		if a.dragActive() {
			a.ctrl.UpdateTouchDrag(p)
			a.ctrl.EndTouchDrag(p)
		}
	}
}

func (a *App) press(p core.Point) {
	if i, ok := a.layout.TrayIndex(p); ok {
		if item, ok := a.catalog.At(i); ok {
			a.ctrl.BeginTouchDrag(item, p, a.layout.Tray[i])
		}
		return
	}
	if i, ok := a.layout.ButtonIndex(p); ok {
		a.game.Evaluate(engine.Symbols[i])
		return
	}
	if a.layout.SoundToggle.Contains(p) {
		a.toggleSound()
	}
}

func (a *App) toggleSound() {
	a.sound.Toggle()
	a.sound.Play(core.SoundButtonClick)
}

// Run draws and processes events until quit or ctx ends
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	a.render()
	for {
		select {
		case <-ctx.Done():
			log.Printf("ui: stopping: %v", ctx.Err())
			return nil
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.render()
		case <-ticker.C:
			a.render()
		}
	}
}
