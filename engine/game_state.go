package engine

import "github.com/lixenwraith/fruit-balance/catalog"

// Side identifies one of the two balance pans
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Placement holds the item on each pan, nil when empty
type Placement struct {
	Left  *catalog.Item
	Right *catalog.Item
}

// Get returns the item on side
func (p Placement) Get(side Side) *catalog.Item {
	if side == SideRight {
		return p.Right
	}
	return p.Left
}

// Feedback is the outcome of the last evaluation attempt
type Feedback struct {
	Message string
	Correct bool
}

// Empty reports whether there is no feedback to show
func (f Feedback) Empty() bool {
	return f.Message == ""
}

// Result is returned by Evaluate
type Result struct {
	Correct bool
	Message string
}

// Messages are the player-facing feedback strings
type Messages struct {
	PlaceBoth string // Either pan empty
	Correct   string
	Retry     string
}

// DefaultMessages returns English feedback strings
func DefaultMessages() Messages {
	return Messages{
		PlaceBoth: "Put a fruit on both sides of the balance!",
		Correct:   "Correct! 🎉",
		Retry:     "Try again! 🤔",
	}
}

// State is a read-only snapshot for rendering
type State struct {
	Placement Placement
	Chosen    Symbol
	Feedback  Feedback
	Score     int
}
