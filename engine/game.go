package engine

import (
	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
)

// Game holds placement and session state for one play session
// All methods must be called from the UI goroutine
type Game struct {
	sounds   core.SoundPlayer
	messages Messages

	placement Placement
	chosen    Symbol
	feedback  Feedback
	score     int
}

// NewGame creates an empty session; nil sounds plays nothing
func NewGame(sounds core.SoundPlayer, messages Messages) *Game {
	if sounds == nil {
		sounds = core.NopSoundPlayer{}
	}
	return &Game{
		sounds:   sounds,
		messages: messages,
	}
}

// PlaceItem puts item on side, replacing any previous item
// The previous answer is invalidated: chosen symbol and feedback are cleared
func (g *Game) PlaceItem(side Side, item catalog.Item) {
	it := item
	if side == SideRight {
		g.placement.Right = &it
	} else {
		g.placement.Left = &it
	}
	g.chosen = SymbolNone
	g.feedback = Feedback{}
	g.sounds.Play(core.SoundDrop)
}

// Evaluate checks symbol against the pans and updates the session
// With either pan empty only the instructional feedback changes
func (g *Game) Evaluate(symbol Symbol) Result {
	correct, complete := Compare(g.placement.Left, g.placement.Right, symbol)
	if !complete {
		g.feedback = Feedback{Message: g.messages.PlaceBoth}
		g.sounds.Play(core.SoundButtonClick)
		return Result{Correct: false, Message: g.messages.PlaceBoth}
	}

	g.chosen = symbol
	if correct {
		g.score++
		g.feedback = Feedback{Message: g.messages.Correct, Correct: true}
		g.sounds.Play(core.SoundCorrect)
		return Result{Correct: true, Message: g.messages.Correct}
	}

	g.feedback = Feedback{Message: g.messages.Retry}
	g.sounds.Play(core.SoundIncorrect)
	return Result{Correct: false, Message: g.messages.Retry}
}

// SetMessages replaces the feedback strings used by later evaluations
func (g *Game) SetMessages(m Messages) {
	g.messages = m
}

// Placement returns the current pans
func (g *Game) Placement() Placement {
	return g.placement
}

// Score returns the number of correct answers
func (g *Game) Score() int {
	return g.score
}

// Chosen returns the last accepted symbol
func (g *Game) Chosen() Symbol {
	return g.chosen
}

// Feedback returns the last evaluation outcome
func (g *Game) Feedback() Feedback {
	return g.feedback
}

// State returns a snapshot for rendering
func (g *Game) State() State {
	return State{
		Placement: g.placement,
		Chosen:    g.chosen,
		Feedback:  g.feedback,
		Score:     g.score,
	}
}
