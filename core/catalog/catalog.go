// Package catalog - Authoritative component price catalog
// Defines the closed set of canonical component ids with unit prices.
// This is the source of truth the composition mapper targets.
package catalog

import "github.com/shopspring/decimal"

// ComponentCategory classifies a catalog component
type ComponentCategory string

const (
	CategoryCamera      ComponentCategory = "camera"
	CategoryRecorder    ComponentCategory = "recorder"
	CategoryStorage     ComponentCategory = "storage"
	CategoryBackupPower ComponentCategory = "backup_power"
	CategoryService     ComponentCategory = "service"
	CategoryAccessory   ComponentCategory = "accessory"
)

// Component is a catalog entry for a single purchasable part
type Component struct {
	// ID is the canonical component key, unique across categories
	ID string `json:"id"`

	// DisplayName is the human-readable component name
	DisplayName string `json:"display_name"`

	// UnitPrice is the per-unit price, never negative
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Category classifies the component
	Category ComponentCategory `json:"category"`
}

// Catalog holds the full component price table
type Catalog struct {
	entries map[string]*Component
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*Component),
	}
}

// Register adds a component to the catalog
func (c *Catalog) Register(entry Component) {
	c.entries[entry.ID] = &entry
}

// Get returns a component entry
func (c *Catalog) Get(id string) (*Component, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

// Lookup returns the unit price for a component id.
// Unknown ids resolve to zero so a malformed specification field degrades
// to a zero-cost contribution instead of aborting a batch run.
func (c *Catalog) Lookup(id string) decimal.Decimal {
	if entry, ok := c.entries[id]; ok {
		return entry.UnitPrice
	}
	return decimal.Zero
}

// Has reports whether an id is a recognized canonical key
func (c *Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// ListByCategory returns all component ids in a category
func (c *Catalog) ListByCategory(category ComponentCategory) []string {
	var result []string
	for id, entry := range c.entries {
		if entry.Category == category {
			result = append(result, id)
		}
	}
	return result
}

// Len returns the number of registered components
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Stats returns per-category component counts
func (c *Catalog) Stats() Stats {
	stats := Stats{
		ByCategory: make(map[ComponentCategory]int),
	}
	for _, entry := range c.entries {
		stats.Total++
		stats.ByCategory[entry.Category]++
	}
	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Total      int
	ByCategory map[ComponentCategory]int
}
