// Package catalog holds the fixed set of weighted items a player can place on the balance.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors
var (
	ErrEmptyCatalog   = errors.New("catalog has no items")
	ErrMissingID      = errors.New("item id is required")
	ErrDuplicateID    = errors.New("duplicate item id")
	ErrInvalidWeight  = errors.New("item weight must be positive and finite")
	ErrUnknownVersion = errors.New("unsupported catalog version")
)

// Item is a comparable entity shown in the tray
type Item struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Names  map[string]string `yaml:"names,omitempty"`
	Weight float64           `yaml:"weight"`
	Icon   string            `yaml:"icon"`
}

// DisplayName returns the localized name, falling back to Name
func (i Item) DisplayName(locale string) string {
	if n, ok := i.Names[locale]; ok && n != "" {
		return n
	}
	return i.Name
}

// Catalog is an immutable, ordered item list with id lookup
type Catalog struct {
	items []Item
	byID  map[string]int
}

// New validates items and builds a catalog
// Ids must be unique and non-empty, weights positive and finite
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingID)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
		}
		if !(it.Weight > 0) || math.IsInf(it.Weight, 0) {
			return nil, fmt.Errorf("item %q weight %v: %w", it.ID, it.Weight, ErrInvalidWeight)
		}
		if it.Name == "" {
			it.Name = it.ID
		}
		it.Names = copyNames(it.Names)
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns a copy of the items in catalog order
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

// Len returns the item count
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at index i in catalog order
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i].clone(), true
}

// Lookup resolves an item by id
func (c *Catalog) Lookup(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx].clone(), true
}

// clone returns it with its own Names map
func (i Item) clone() Item {
	i.Names = copyNames(i.Names)
	return i
}

func copyNames(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
