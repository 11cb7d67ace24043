package services

import (
	"errors"
	"fmt"
)

var ErrFoodNotFound = errors.New("food not found in catalog")

// NamedPortion is one of a food's predefined serving sizes.
type NamedPortion struct {
	Name        string  `json:"name"`
	Grams       float64 `json:"grams"`
	Description string  `json:"description"`
}

// CatalogEntry is a fixed nutrition reference record for one known food.
// Portions keep their definition order; the first one is the default when a
// size hint cannot be mapped.
type CatalogEntry struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	ProteinPer100g float64            `json:"protein_per_100g"`
	Portions       []NamedPortion     `json:"portions"`
	PrepModifiers  map[string]float64 `json:"-"`
	VisualCues     []string           `json:"visual_cues,omitempty"`
	Keywords       []string           `json:"-"`
}

// Portion returns the named portion, if defined for this entry.
func (e *CatalogEntry) Portion(name string) (NamedPortion, bool) {
	for _, p := range e.Portions {
		if p.Name == name {
			return p, true
		}
	}
	return NamedPortion{}, false
}

// PrepModifier returns the protein multiplier for a preparation method.
// Unknown or empty preparation is a no-op.
func (e *CatalogEntry) PrepModifier(preparation string) float64 {
	if m, ok := e.PrepModifiers[preparation]; ok {
		return m
	}
	return 1.0
}

// Catalog is the in-memory nutrition reference, built once at process start
// and read-only afterwards, so it is safe to share across requests.
type Catalog struct {
	entries []*CatalogEntry
	byID    map[string]*CatalogEntry
}

// NewCatalog builds the catalog from the compiled-in food data and validates
// every entry. A bad entry means the process must not start.
func NewCatalog() (*Catalog, error) {
	return newCatalogFrom(catalogData())
}

func newCatalogFrom(entries []*CatalogEntry) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*CatalogEntry, len(entries))}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.ID, err)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", e.ID)
		}
		c.entries = append(c.entries, e)
		c.byID[e.ID] = e
	}
	return c, nil
}

func validateEntry(e *CatalogEntry) error {
	if e.ID == "" {
		return errors.New("missing id")
	}
	if e.Name == "" {
		return errors.New("missing display name")
	}
	if e.ProteinPer100g < 0 {
		return fmt.Errorf("negative protein per 100g: %v", e.ProteinPer100g)
	}
	if len(e.Portions) == 0 {
		return errors.New("no named portions")
	}
	seen := make(map[string]bool, len(e.Portions))
	for _, p := range e.Portions {
		if p.Name == "" {
			return errors.New("portion with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate portion %q", p.Name)
		}
		seen[p.Name] = true
		if p.Grams <= 0 {
			return fmt.Errorf("portion %q has non-positive grams", p.Name)
		}
	}
	return nil
}

// Lookup returns the entry for a stable food id.
func (c *Catalog) Lookup(id string) (*CatalogEntry, error) {
	if e, ok := c.byID[id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFoodNotFound, id)
}

// All returns every entry in definition order.
func (c *Catalog) All() []*CatalogEntry {
	return c.entries
}

// Len reports the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }
