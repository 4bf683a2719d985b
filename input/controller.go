// Package input turns pointer and touch gestures into balance placements.
//
// Two adapters share one placement call:
//   - touch: coordinates are tracked manually and the release point is
//     hit-tested against the registered drop zones (left first)
//   - pointer: only the item id crosses the gesture and is resolved
//     through the catalog when dropped
package input

import (
	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/engine"
)

// Placer receives resolved placements
type Placer interface {
	PlaceItem(side engine.Side, item catalog.Item)
}

// DragSession is an in-progress touch drag
type DragSession struct {
	Item   catalog.Item
	Offset core.Point // Touch point relative to the origin area's top-left
}

// DragVisual describes where the presentation layer should draw the dragged item
type DragVisual struct {
	Item     catalog.Item
	Position core.Point
}

// Controller tracks gestures and forwards placements
// Not safe for concurrent use; call from the UI goroutine
type Controller struct {
	catalog *catalog.Catalog
	placer  Placer
	sounds  core.SoundPlayer

	zones   [2]core.Area
	zoneSet [2]bool

	session  *DragSession
	position core.Point // Last computed drag visual position

	transfer    string // Item id carried by a pointer drag
	hasTransfer bool
}

// NewController creates a controller resolving ids through cat
func NewController(cat *catalog.Catalog, placer Placer, sounds core.SoundPlayer) *Controller {
	if sounds == nil {
		sounds = core.NopSoundPlayer{}
	}
	return &Controller{
		catalog: cat,
		placer:  placer,
		sounds:  sounds,
	}
}

// SetZone registers the bounding area of a drop zone
func (c *Controller) SetZone(side engine.Side, area core.Area) {
	i := zoneIndex(side)
	c.zones[i] = area
	c.zoneSet[i] = true
}

// Zone returns the registered area of side
func (c *Controller) Zone(side engine.Side) (core.Area, bool) {
	i := zoneIndex(side)
	return c.zones[i], c.zoneSet[i]
}

// HitTest returns the zone containing p, left checked first
func (c *Controller) HitTest(p core.Point) (engine.Side, bool) {
	for _, side := range [...]engine.Side{engine.SideLeft, engine.SideRight} {
		i := zoneIndex(side)
		if c.zoneSet[i] && c.zones[i].Contains(p) {
			return side, true
		}
	}
	return engine.SideLeft, false
}

func zoneIndex(side engine.Side) int {
	if side == engine.SideRight {
		return 1
	}
	return 0
}
