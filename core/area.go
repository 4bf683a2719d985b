package core

// Point is a cell coordinate on the play surface
type Point struct {
	X, Y int
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// TopLeft returns the area origin
func (a Area) TopLeft() Point {
	return Point{X: a.X, Y: a.Y}
}

// Center returns the center cell of the area
func (a Area) Center() Point {
	return Point{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Contains checks if point is within area
// Right and bottom edges are exclusive; an empty area contains nothing
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Empty reports whether the area has no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Overlaps reports whether two areas share at least one cell
func (a Area) Overlaps(b Area) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
