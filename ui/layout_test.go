package ui

import (
	"testing"

	"github.com/lixenwraith/fruit-balance/core"
)

// TestComputeLayoutTooSmall verifies tiny terminals are flagged
func TestComputeLayoutTooSmall(t *testing.T) {
	if !ComputeLayout(40, 30, 3).TooSmall {
		t.Error("Expected narrow terminal to be too small")
	}
	if !ComputeLayout(100, 10, 3).TooSmall {
		t.Error("Expected short terminal to be too small")
	}
}

// TestComputeLayoutZonesDisjoint verifies pans never overlap anything interactive
func TestComputeLayoutZonesDisjoint(t *testing.T) {
	sizes := [][2]int{{60, 22}, {80, 24}, {96, 30}, {120, 40}, {200, 60}}
	for _, sz := range sizes {
		l := ComputeLayout(sz[0], sz[1], 3)
		if l.TooSmall {
			t.Fatalf("Unexpected too-small for %v", sz)
		}
		if l.LeftZone.Overlaps(l.RightZone) {
			t.Errorf("%v: zones overlap", sz)
		}
		for i, b := range l.Buttons {
			if b.Overlaps(l.LeftZone) || b.Overlaps(l.RightZone) {
				t.Errorf("%v: button %d overlaps a zone", sz, i)
			}
		}
		for i, a := range l.Tray {
			if a.Overlaps(l.LeftZone) || a.Overlaps(l.RightZone) {
				t.Errorf("%v: tray %d overlaps a zone", sz, i)
			}
			if a.X < 0 || a.X+a.Width > sz[0] {
				t.Errorf("%v: tray %d outside screen: %+v", sz, i, a)
			}
		}
		if l.LeftZone.X < 0 || l.RightZone.X+l.RightZone.Width > sz[0] {
			t.Errorf("%v: zones outside screen", sz)
		}
		if l.HintY != sz[1]-1 {
			t.Errorf("%v: expected hint on last row, got %d", sz, l.HintY)
		}
	}
}

// TestComputeLayoutSidebar verifies the rules sidebar only appears on wide terminals
func TestComputeLayoutSidebar(t *testing.T) {
	if !ComputeLayout(80, 24, 3).Sidebar.Empty() {
		t.Error("Expected no sidebar at 80 columns")
	}
	wide := ComputeLayout(120, 30, 3)
	if wide.Sidebar.Empty() {
		t.Fatal("Expected sidebar at 120 columns")
	}
	if wide.Sidebar.Overlaps(wide.LeftZone) {
		t.Error("Expected sidebar clear of the left pan")
	}
}

// TestComputeLayoutTrayWraps verifies many items wrap onto extra rows
func TestComputeLayoutTrayWraps(t *testing.T) {
	l := ComputeLayout(60, 40, 8)
	if len(l.Tray) != 8 {
		t.Fatalf("Expected 8 tray slots, got %d", len(l.Tray))
	}
	if l.Tray[0].Y == l.Tray[7].Y {
		t.Error("Expected tray to wrap")
	}
	for i := range l.Tray {
		for j := i + 1; j < len(l.Tray); j++ {
			if l.Tray[i].Overlaps(l.Tray[j]) {
				t.Errorf("Tray slots %d and %d overlap", i, j)
			}
		}
	}
}

// TestLayoutLookups verifies point-to-control resolution
func TestLayoutLookups(t *testing.T) {
	l := ComputeLayout(100, 30, 3)

	if i, ok := l.TrayIndex(l.Tray[2].Center()); !ok || i != 2 {
		t.Errorf("Expected tray 2, got %d %v", i, ok)
	}
	if i, ok := l.ButtonIndex(l.Buttons[1].Center()); !ok || i != 1 {
		t.Errorf("Expected button 1, got %d %v", i, ok)
	}
	if _, ok := l.TrayIndex(core.Point{X: -1, Y: -1}); ok {
		t.Error("Expected miss outside tray")
	}
}

// TestComputeLayoutTrayFitsMinimum verifies a wrapped tray stays above the hint line at the smallest size
func TestComputeLayoutTrayFitsMinimum(t *testing.T) {
	l := ComputeLayout(MinWidth, MinHeight, 4)
	if l.TooSmall {
		t.Fatal("Expected 4 items to fit at the minimum size")
	}
	if len(l.Tray) != 4 {
		t.Fatalf("Expected 4 tray slots, got %d", len(l.Tray))
	}
	for i, a := range l.Tray {
		if a.Y+a.Height > l.HintY {
			t.Errorf("Tray slot %d spans rows %d..%d, hint row %d", i, a.Y, a.Y+a.Height-1, l.HintY)
		}
	}
}

// TestComputeLayoutTrayNeverOffscreen verifies every slot is visible or the layout is flagged too small
func TestComputeLayoutTrayNeverOffscreen(t *testing.T) {
	sizes := [][2]int{{60, 22}, {80, 24}, {100, 30}, {120, 40}}
	for _, sz := range sizes {
		for n := 1; n <= 20; n++ {
			l := ComputeLayout(sz[0], sz[1], n)
			if l.TooSmall {
				continue
			}
			if len(l.Tray) != n {
				t.Errorf("%v n=%d: expected %d slots, got %d", sz, n, n, len(l.Tray))
			}
			for i, a := range l.Tray {
				if a.Y+a.Height > l.HintY {
					t.Errorf("%v n=%d: tray slot %d spans rows %d..%d, hint row %d", sz, n, i, a.Y, a.Y+a.Height-1, l.HintY)
				}
			}
		}
	}
}

// TestComputeLayoutTrayTooMany verifies an unplaceable tray hides the play surface
func TestComputeLayoutTrayTooMany(t *testing.T) {
	if !ComputeLayout(MinWidth, MinHeight, 12).TooSmall {
		t.Error("Expected 12 items at the minimum size to be too small")
	}
}
