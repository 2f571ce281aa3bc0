package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed products.json
var productsJSON []byte

// Entry is one purchasable product. Inventory is an advisory stock count;
// nothing in this service reserves or decrements it.
type Entry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
}

// Catalog is a static, read-only product list queried by exact id.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New loads the embedded product list.
func New() (*Catalog, error) {
	return Parse(productsJSON)
}

func Parse(raw []byte) (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("parse catalog: entry %d has no id", i)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate id %q", e.ID)
		}
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}, nil
}

// Find returns the entry with the given id.
func (c *Catalog) Find(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// List returns all entries in catalog order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
