package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
	"github.com/lixenwraith/fruit-balance/locale"
)

var (
	styleBase     = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHover    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleChosen   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
	styleCorrect  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWrong    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGhost    = tcell.StyleDefault.Reverse(true)
	styleSoundOn  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSoundOff = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// drawText writes s at (x, y) clipped to maxW cells, returning the cells used
func drawText(s tcell.Screen, x, y, maxW int, style tcell.Style, text string) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxW {
			break
		}
		s.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

// drawCentered writes text centered inside a
func drawCentered(s tcell.Screen, a core.Area, y int, style tcell.Style, text string) {
	text = runewidth.Truncate(text, a.Width, "…")
	x := a.X + (a.Width-runewidth.StringWidth(text))/2
	drawText(s, x, y, a.Width, style, text)
}

func fill(s tcell.Screen, a core.Area, style tcell.Style) {
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBox outlines a; dashed selects the drop-zone border
func drawBox(s tcell.Screen, a core.Area, style tcell.Style, dashed bool) {
	if a.Width < 2 || a.Height < 2 {
		return
	}
	h, v := '─', '│'
	if dashed {
		h, v = '┄', '┆'
	}
	right, bottom := a.X+a.Width-1, a.Y+a.Height-1
	for x := a.X + 1; x < right; x++ {
		s.SetContent(x, a.Y, h, nil, style)
		s.SetContent(x, bottom, h, nil, style)
	}
	for y := a.Y + 1; y < bottom; y++ {
		s.SetContent(a.X, y, v, nil, style)
		s.SetContent(right, y, v, nil, style)
	}
	s.SetContent(a.X, a.Y, '┌', nil, style)
	s.SetContent(right, a.Y, '┐', nil, style)
	s.SetContent(a.X, bottom, '└', nil, style)
	s.SetContent(right, bottom, '┘', nil, style)
}

// inner shrinks a by its border
func inner(a core.Area) core.Area {
	return core.Area{X: a.X + 1, Y: a.Y + 1, Width: a.Width - 2, Height: a.Height - 2}
}

// drawItem renders icon, name and weight label stacked inside a, or on one line when a is short
func drawItem(s tcell.Screen, p *locale.Printer, a core.Area, item catalog.Item, style tcell.Style) {
	if a.Height < 3 {
		line := item.Icon + " " + item.DisplayName(p.Locale()) + " " + p.Sprintf(locale.KeyWeight, item.Weight)
		drawCentered(s, a, a.Y, style, line)
		return
	}
	y := a.Y + (a.Height-3)/2
	drawCentered(s, a, y, style, item.Icon)
	drawCentered(s, a, y+1, style.Bold(true), item.DisplayName(p.Locale()))
	drawCentered(s, a, y+2, style, p.Sprintf(locale.KeyWeight, item.Weight))
}

// render draws one full frame
func (a *App) render() {
	s := a.screen
	s.Clear()
	l := a.layout

	if l.TooSmall {
		msg := "terminal too small"
		drawCentered(s, core.Area{Width: l.Width, Height: l.Height}, l.Height/2, styleWrong, msg)
		s.Show()
		return
	}

	state := a.game.State()
	p := a.printer

	// Score and rules
	scoreText := p.Sprintf(locale.KeyScore, state.Score)
	drawText(s, l.Score.X, l.Score.Y, l.Width, styleTitle, scoreText)
	if !l.Sidebar.Empty() {
		sb := l.Sidebar
		drawBox(s, core.Area{X: sb.X, Y: sb.Y + 3, Width: sb.Width, Height: 7}, styleBorder, false)
		drawText(s, sb.X+2, sb.Y+4, sb.Width-4, styleTitle, p.Sprintf(locale.KeyRulesTitle))
		rules := [...]string{locale.KeyRule1, locale.KeyRule2, locale.KeyRule3}
		for i, key := range rules {
			drawText(s, sb.X+2, sb.Y+5+i, sb.Width-4, styleBase, p.Sprintf(key))
		}
	}

	// Sound toggle
	if a.sound.Enabled() {
		drawText(s, l.SoundToggle.X, l.SoundToggle.Y, l.SoundToggle.Width, styleSoundOn, p.Sprintf(locale.KeySoundOn))
	} else {
		drawText(s, l.SoundToggle.X, l.SoundToggle.Y, l.SoundToggle.Width, styleSoundOff, p.Sprintf(locale.KeySoundOff))
	}

	// Pans
	hover, hovering := engine.SideLeft, false
	if a.dragActive() {
		hover, hovering = a.ctrl.HitTest(a.cursor)
	}
	for _, side := range [...]engine.Side{engine.SideLeft, engine.SideRight} {
		zone, _ := a.ctrl.Zone(side)
		border := styleBorder
		if hovering && hover == side {
			border = styleHover
		}
		drawBox(s, zone, border, true)
		if item := state.Placement.Get(side); item != nil {
			drawItem(s, p, inner(zone), *item, styleBase)
		} else {
			drawCentered(s, inner(zone), zone.Y+zone.Height/2, styleDim, p.Sprintf(locale.KeyDropHere))
		}
	}

	// Beam and fulcrum
	for x := l.Beam.X; x < l.Beam.X+l.Beam.Width; x++ {
		s.SetContent(x, l.Beam.Y, '═', nil, styleBorder)
	}
	s.SetContent(l.Fulcrum.X, l.Fulcrum.Y, '▲', nil, styleBorder)

	// Symbol buttons
	for i, b := range l.Buttons {
		sym := engine.Symbols[i]
		style := styleButton
		if state.Chosen == sym {
			style = styleChosen
		}
		fill(s, b, style)
		drawCentered(s, b, b.Y+b.Height/2, style, sym.String())
	}

	// Feedback
	if !state.Feedback.Empty() {
		style := styleWrong
		if state.Feedback.Correct {
			style = styleCorrect
		}
		drawCentered(s, core.Area{X: l.Beam.X, Width: l.Beam.Width}, l.FeedbackY, style, state.Feedback.Message)
	}

	// Tray
	pending, carrying := a.ctrl.Pending()
	for i, cell := range l.Tray {
		item, ok := a.catalog.At(i)
		if !ok {
			break
		}
		border := styleBorder
		if carrying && pending == item.ID {
			border = styleHover
		}
		drawBox(s, cell, border, false)
		if i < 9 {
			s.SetContent(cell.X+1, cell.Y, rune('1'+i), nil, styleDim)
		}
		drawItem(s, p, inner(cell), item, styleBase)
	}

	// Drag ghost
	if v, ok := a.ctrl.Dragging(); ok {
		label := v.Item.Icon + " " + v.Item.DisplayName(p.Locale())
		drawText(s, v.Position.X, v.Position.Y, l.Width-v.Position.X, styleGhost, label)
	}

	// Hint line
	hint := p.Sprintf(locale.KeyKeys)
	if carrying {
		if item, ok := a.catalog.Lookup(pending); ok {
			hint = p.Sprintf(locale.KeyCarrying, item.DisplayName(p.Locale()))
		}
	}
	drawText(s, 1, l.HintY, l.Width-2, styleDim, hint)

	s.Show()
}
