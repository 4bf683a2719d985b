package ui

import "github.com/lixenwraith/fruit-balance/core"

// Layout dimensions in cells
const (
	MinWidth  = 60
	MinHeight = 22

	sidebarMinWidth = 96 // Terminal width at which the rules sidebar appears
	sidebarWidth    = 30

	zoneWidth   = 16
	zoneHeight  = 7
	minPanGap   = 3
	maxPanGap   = 12
	buttonWidth = 5
	buttonGap   = 2
	trayWidth   = 14
	trayHeight  = 5
	trayGap     = 2

	trayCompactHeight = 3 // Border plus one line, used when full cells do not fit
)

// Layout holds every interactive and decorative region for one screen size
type Layout struct {
	Width, Height int
	TooSmall      bool

	Sidebar     core.Area // Score and rules, empty on narrow terminals
	Score       core.Point
	SoundToggle core.Area

	LeftZone  core.Area
	RightZone core.Area
	Beam      core.Area // Balance bar under the pans
	Fulcrum   core.Point
	Buttons   [3]core.Area // <, =, >

	FeedbackY int
	Tray      []core.Area
	HintY     int
}

// ComputeLayout places the play surface for a width x height terminal with n tray items
func ComputeLayout(width, height, n int) Layout {
	l := Layout{Width: width, Height: height}
	if width < MinWidth || height < MinHeight {
		l.TooSmall = true
		return l
	}

	mainX, mainW := 0, width
	if width >= sidebarMinWidth {
		l.Sidebar = core.Area{X: 0, Y: 0, Width: sidebarWidth, Height: height - 1}
		mainX = sidebarWidth + 1
		mainW = width - mainX
		l.Score = core.Point{X: 2, Y: 1}
	} else {
		l.Score = core.Point{X: 1, Y: 0}
	}
	l.SoundToggle = core.Area{X: width - 18, Y: 0, Width: 18, Height: 1}

	// Symbol buttons centered, pans on either side of them
	center := mainX + mainW/2
	total := len(l.Buttons)*buttonWidth + (len(l.Buttons)-1)*buttonGap
	gap := (mainW - 2 - 2*zoneWidth - total) / 2
	gap = max(minPanGap, min(gap, maxPanGap))

	zoneY := 3
	bx := center - total/2
	by := zoneY + zoneHeight/2 - 1
	for i := range l.Buttons {
		l.Buttons[i] = core.Area{X: bx + i*(buttonWidth+buttonGap), Y: by, Width: buttonWidth, Height: 3}
	}
	l.LeftZone = core.Area{X: bx - gap - zoneWidth, Y: zoneY, Width: zoneWidth, Height: zoneHeight}
	l.RightZone = core.Area{X: bx + total + gap, Y: zoneY, Width: zoneWidth, Height: zoneHeight}

	beamY := zoneY + zoneHeight
	l.Beam = core.Area{X: l.LeftZone.X, Y: beamY, Width: l.RightZone.X + l.RightZone.Width - l.LeftZone.X, Height: 1}
	l.Fulcrum = core.Point{X: center, Y: beamY + 1}

	l.FeedbackY = beamY + 3

	l.HintY = height - 1

	// Full cells first, compact one-line cells when the rows would run into the hint line
	trayY := l.FeedbackY + 2
	if n > 0 {
		tray, ok := placeTray(n, mainW, center, trayY, trayHeight, 1, l.HintY)
		if !ok {
			tray, ok = placeTray(n, mainW, center, trayY, trayCompactHeight, 0, l.HintY)
		}
		if !ok {
			l.TooSmall = true
			return l
		}
		l.Tray = tray
	}
	return l
}

// placeTray lays out n cells centered on center in wrapping rows starting at y
// Reports false when the last row would reach limitY
func placeTray(n, mainW, center, y, cellH, rowGap, limitY int) ([]core.Area, bool) {
	perRow := max(1, (mainW+trayGap)/(trayWidth+trayGap))
	rows := (n + perRow - 1) / perRow
	if y+rows*cellH+(rows-1)*rowGap > limitY {
		return nil, false
	}

	tray := make([]core.Area, 0, n)
	for r := 0; r < rows; r++ {
		count := min(perRow, n-r*perRow)
		rowW := count*trayWidth + (count-1)*trayGap
		x := center - rowW/2
		ry := y + r*(cellH+rowGap)
		for c := 0; c < count; c++ {
			tray = append(tray, core.Area{X: x + c*(trayWidth+trayGap), Y: ry, Width: trayWidth, Height: cellH})
		}
	}
	return tray, true
}


// TrayIndex returns the tray slot under p
func (l Layout) TrayIndex(p core.Point) (int, bool) {
	for i, a := range l.Tray {
		if a.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// ButtonIndex returns the symbol button under p
func (l Layout) ButtonIndex(p core.Point) (int, bool) {
	for i, a := range l.Buttons {
		if a.Contains(p) {
			return i, true
		}
	}
	return 0, false
}
