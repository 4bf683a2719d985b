package input

import (
	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
)

// BeginTouchDrag starts tracking item picked up at touch inside origin
// Any drag already in flight is replaced
func (c *Controller) BeginTouchDrag(item catalog.Item, touch core.Point, origin core.Area) {
	c.session = &DragSession{
		Item:   item,
		Offset: touch.Sub(origin.TopLeft()),
	}
	c.position = origin.TopLeft()
	c.sounds.Play(core.SoundDrag)
}

// UpdateTouchDrag moves the drag visual; returns false without an active drag
func (c *Controller) UpdateTouchDrag(touch core.Point) (core.Point, bool) {
	if c.session == nil {
		return core.Point{}, false
	}
	c.position = touch.Sub(c.session.Offset)
	return c.position, true
}

// EndTouchDrag drops the dragged item on the zone under touch
// Releasing outside both zones abandons the drag; the session always ends
func (c *Controller) EndTouchDrag(touch core.Point) (engine.Side, bool) {
	if c.session == nil {
		return engine.SideLeft, false
	}
	item := c.session.Item

	side, hit := c.HitTest(touch)
	if hit {
		c.placer.PlaceItem(side, item)
	}
	c.session = nil
	return side, hit
}

// CancelTouchDrag ends an in-flight drag without placing
func (c *Controller) CancelTouchDrag() {
	c.session = nil
}

// Session returns the active touch drag
func (c *Controller) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Dragging returns the dragged item and where to draw it
func (c *Controller) Dragging() (DragVisual, bool) {
	if c.session == nil {
		return DragVisual{}, false
	}
	return DragVisual{Item: c.session.Item, Position: c.position}, true
}
