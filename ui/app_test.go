package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
	"github.com/lixenwraith/fruit-balance/input"
	"github.com/lixenwraith/fruit-balance/locale"
)

// fakeSound records effects and keeps an in-memory enabled flag
type fakeSound struct {
	engine.SoundRecorder
	enabled bool
}

func (f *fakeSound) Enabled() bool { return f.enabled }

func (f *fakeSound) Toggle() bool {
	f.enabled = !f.enabled
	return f.enabled
}

func newTestApp(t *testing.T, w, h int) (*App, tcell.SimulationScreen, *fakeSound) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	bundle, err := locale.LoadEmbedded()
	if err != nil {
		t.Fatalf("Failed to load locales: %v", err)
	}
	sound := &fakeSound{enabled: true}
	app := NewApp(screen, catalog.Default(), sound, bundle.Printer(locale.BaseLocale))
	return app, screen, sound
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(p core.Point, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(p.X, p.Y, buttons, tcell.ModNone)
}

// rowText reads one screen row, skipping the trailing half of wide runes
func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; {
		r, _, _, width := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
		if width < 1 {
			width = 1
		}
		x += width
	}
	return b.String()
}

func screenContains(s tcell.SimulationScreen, text string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), text) {
			return true
		}
	}
	return false
}

// TestMouseDragPlacesItem verifies press-move-release onto a pan places the item
func TestMouseDragPlacesItem(t *testing.T) {
	app, _, sound := newTestApp(t, 100, 30)
	l := app.Layout()

	target := l.LeftZone.Center()
	app.HandleEvent(mouse(l.Tray[0].Center(), tcell.Button1))
	if !app.dragActive() {
		t.Fatal("Expected drag to start on tray press")
	}
	app.HandleEvent(mouse(target, tcell.Button1))
	if v, ok := app.Controller().Dragging(); !ok || v.Item.ID != "apple" {
		t.Errorf("Expected apple ghost, got %+v %v", v, ok)
	}
	app.HandleEvent(mouse(target, tcell.ButtonNone))

	if app.dragActive() {
		t.Error("Expected drag to end on release")
	}
	left := app.Game().Placement().Left
	if left == nil || left.ID != "apple" {
		t.Fatalf("Expected apple on left pan, got %+v", left)
	}
	played := sound.Played()
	if len(played) != 2 || played[0] != core.SoundDrag || played[1] != core.SoundDrop {
		t.Errorf("Expected [drag drop], got %v", played)
	}
}

// TestMouseReleaseOutsideZones verifies a miss places nothing
func TestMouseReleaseOutsideZones(t *testing.T) {
	app, _, _ := newTestApp(t, 100, 30)
	l := app.Layout()

	app.HandleEvent(mouse(l.Tray[1].Center(), tcell.Button1))
	app.HandleEvent(mouse(core.Point{X: 0, Y: l.HintY}, tcell.ButtonNone))

	if app.dragActive() {
		t.Error("Expected drag to end")
	}
	p := app.Game().Placement()
	if p.Left != nil || p.Right != nil {
		t.Errorf("Expected empty pans, got %+v", p)
	}
}

// TestKeyboardRound verifies pick, drop and answer through keys only
func TestKeyboardRound(t *testing.T) {
	app, _, sound := newTestApp(t, 100, 30)

	app.HandleEvent(key('2'))
	app.HandleEvent(key('l'))
	if r := app.Game().Placement().Right; r == nil || r.ID != "orange" {
		t.Fatalf("Expected orange on right pan, got %+v", r)
	}

	app.HandleEvent(key('>'))
	if app.Game().Feedback().Message != engine.DefaultMessages().PlaceBoth {
		t.Errorf("Expected place-both feedback, got %q", app.Game().Feedback().Message)
	}
	if app.Game().Score() != 0 {
		t.Error("Expected score unchanged on incomplete placement")
	}

	app.HandleEvent(key('1'))
	app.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	app.HandleEvent(key('.'))

	if app.Game().Score() != 1 {
		t.Errorf("Expected score 1, got %d", app.Game().Score())
	}
	if app.Game().Chosen() != engine.SymbolGreater {
		t.Errorf("Expected > chosen, got %v", app.Game().Chosen())
	}
	if last, _ := sound.Last(); last != core.SoundCorrect {
		t.Errorf("Expected correct sound last, got %v", last)
	}
}

// TestButtonClickEvaluates verifies clicking a symbol button answers
func TestButtonClickEvaluates(t *testing.T) {
	app, _, sound := newTestApp(t, 100, 30)
	app.HandleEvent(key('1'))
	app.HandleEvent(key('h'))
	app.HandleEvent(key('3'))
	app.HandleEvent(key('l'))

	b := app.Layout().Buttons[0] // <
	app.HandleEvent(mouse(b.Center(), tcell.Button1))
	app.HandleEvent(mouse(b.Center(), tcell.ButtonNone))

	if app.Game().Feedback().Correct {
		t.Error("Expected apple < cherry to be wrong")
	}
	if app.Game().Chosen() != engine.SymbolLess {
		t.Errorf("Expected < chosen, got %v", app.Game().Chosen())
	}
	if last, _ := sound.Last(); last != core.SoundIncorrect {
		t.Errorf("Expected incorrect sound last, got %v", last)
	}
}

// TestSoundToggle verifies key and click toggles
func TestSoundToggle(t *testing.T) {
	app, _, sound := newTestApp(t, 100, 30)

	app.HandleEvent(key('s'))
	if sound.Enabled() {
		t.Error("Expected sound disabled after s")
	}
	if last, _ := sound.Last(); last != core.SoundButtonClick {
		t.Errorf("Expected button click, got %v", last)
	}

	toggle := app.Layout().SoundToggle
	app.HandleEvent(mouse(toggle.Center(), tcell.Button1))
	app.HandleEvent(mouse(toggle.Center(), tcell.ButtonNone))
	if !sound.Enabled() {
		t.Error("Expected sound enabled after click")
	}
}

// TestQuitKeys verifies quit handling and escape cancelling a carried item
func TestQuitKeys(t *testing.T) {
	app, _, _ := newTestApp(t, 100, 30)

	if app.HandleEvent(key('x')) != true {
		t.Error("Expected unknown key to continue")
	}

	app.HandleEvent(key('1'))
	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if !app.HandleEvent(esc) {
		t.Error("Expected first escape to cancel the carried item")
	}
	if _, ok := app.Controller().Pending(); ok {
		t.Error("Expected no carried item after escape")
	}
	if app.HandleEvent(esc) {
		t.Error("Expected second escape to quit")
	}
	if app.HandleEvent(key('q')) {
		t.Error("Expected q to quit")
	}
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

// TestResizeReregistersZones verifies zones follow the layout
func TestResizeReregistersZones(t *testing.T) {
	app, screen, _ := newTestApp(t, 100, 30)

	screen.SetSize(70, 26)
	app.HandleEvent(tcell.NewEventResize(70, 26))

	want := ComputeLayout(70, 26, 3)
	if got, ok := app.Controller().Zone(engine.SideLeft); !ok || got != want.LeftZone {
		t.Errorf("Expected left zone %+v, got %+v", want.LeftZone, got)
	}
	if got, ok := app.Controller().Zone(engine.SideRight); !ok || got != want.RightZone {
		t.Errorf("Expected right zone %+v, got %+v", want.RightZone, got)
	}
}

// TestRenderShowsState verifies score, placeholders and feedback are drawn
func TestRenderShowsState(t *testing.T) {
	app, screen, _ := newTestApp(t, 100, 30)

	app.render()
	if !screenContains(screen, "Score: 0") {
		t.Error("Expected score line")
	}
	if !screenContains(screen, "drop here") {
		t.Error("Expected empty pan placeholder")
	}
	if !screenContains(screen, "How to play") {
		t.Error("Expected rules sidebar on wide terminal")
	}

	app.HandleEvent(key('1'))
	app.HandleEvent(key('h'))
	app.HandleEvent(key('2'))
	app.HandleEvent(key('l'))
	app.HandleEvent(key('>'))
	app.render()

	if !strings.Contains(rowText(screen, app.Layout().FeedbackY), "Correct!") {
		t.Errorf("Expected feedback row, got %q", rowText(screen, app.Layout().FeedbackY))
	}
	if !screenContains(screen, "Score: 1") {
		t.Error("Expected score 1")
	}
	if !screenContains(screen, "[s] sound: on") {
		t.Error("Expected sound indicator")
	}
}

// TestRenderTooSmall verifies the fallback message
func TestRenderTooSmall(t *testing.T) {
	app, screen, _ := newTestApp(t, 40, 10)
	app.render()
	if !screenContains(screen, "terminal too small") {
		t.Error("Expected too-small message")
	}

	// Mouse input is ignored while the play surface is hidden
	app.HandleEvent(mouse(core.Point{X: 5, Y: 5}, tcell.Button1))
	if app.dragActive() {
		t.Error("Expected no drag on too-small screen")
	}
}

// TestCustomKeyTable verifies rebinding through the key table
func TestCustomKeyTable(t *testing.T) {
	app, _, _ := newTestApp(t, 100, 30)

	override, err := input.LoadKeyConfig([]byte("keys:\n  \"a\": drop_left\n  \"h\": none\n"))
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	app.SetKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), override))

	app.HandleEvent(key('1'))
	app.HandleEvent(key('h'))
	if app.Game().Placement().Left != nil {
		t.Error("Expected unbound h to do nothing")
	}
	app.HandleEvent(key('a'))
	if l := app.Game().Placement().Left; l == nil || l.ID != "apple" {
		t.Errorf("Expected apple on left via rebound key, got %+v", l)
	}
}
