// Package catalog holds the menu catalog model, its JSON store, and the
// ingredient set operations shared by menu-cli and menu-utils.
package catalog

import (
	"encoding/json"
	"strings"
)

// MenuItem is a named dish and the processed ingredients it requires,
// in insertion order. Members of the file object other than name and
// processed are kept in Extra and written back unchanged.
type MenuItem struct {
	Name      string                     `json:"name"`
	Processed []string                   `json:"processed"`
	Extra     map[string]json.RawMessage `json:"-"`
}

// Catalog is the canonical in-memory shape of a menu data file. Extra holds
// top-level members other than items.
type Catalog struct {
	Items []*MenuItem                `json:"items"`
	Extra map[string]json.RawMessage `json:"-"`
}

// HasProcessed reports whether the item already lists label, ignoring case.
func (it *MenuItem) HasProcessed(label string) bool {
	for _, p := range it.Processed {
		if strings.EqualFold(p, label) {
			return true
		}
	}
	return false
}

// Append adds label to the end of the processed list.
func (it *MenuItem) Append(label string) {
	it.Processed = append(it.Processed, label)
}

// Find returns the first item whose name matches name case-insensitively,
// or nil when there is none.
func (c *Catalog) Find(name string) *MenuItem {
	for _, it := range c.Items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// Ensure returns the item matching name, appending a new empty item when no
// match exists. The second result reports whether an item was created.
func (c *Catalog) Ensure(name string) (*MenuItem, bool) {
	if it := c.Find(name); it != nil {
		return it, false
	}
	it := &MenuItem{Name: name, Processed: []string{}}
	c.Items = append(c.Items, it)
	return it, true
}

// HasProcessed reports whether label appears under any item, ignoring case.
func (c *Catalog) HasProcessed(label string) bool {
	for _, p := range c.DistinctProcessed() {
		if strings.EqualFold(p, label) {
			return true
		}
	}
	return false
}

// Names returns item names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Items))
	for i, it := range c.Items {
		names[i] = it.Name
	}
	return names
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.Items)
}
