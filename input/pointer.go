package input

import (
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
)

// BeginPointerDrag records the id carried by a pointer drag
func (c *Controller) BeginPointerDrag(itemID string) {
	c.transfer = itemID
	c.hasTransfer = true
	c.sounds.Play(core.SoundDrag)
}

// CompletePointerDrop resolves itemID and places it on side
// Unknown ids are ignored; the carried id is cleared either way
func (c *Controller) CompletePointerDrop(side engine.Side, itemID string) bool {
	c.transfer = ""
	c.hasTransfer = false

	item, ok := c.catalog.Lookup(itemID)
	if !ok {
		return false
	}
	c.placer.PlaceItem(side, item)
	return true
}

// DropPending completes a pointer drop with the carried id
func (c *Controller) DropPending(side engine.Side) bool {
	if !c.hasTransfer {
		return false
	}
	return c.CompletePointerDrop(side, c.transfer)
}

// Pending returns the id carried by the current pointer drag
func (c *Controller) Pending() (string, bool) {
	return c.transfer, c.hasTransfer
}

// CancelPointerDrag forgets the carried id
func (c *Controller) CancelPointerDrag() {
	c.transfer = ""
	c.hasTransfer = false
}
