// internal/methylase/catalog.go
package methylase

import (
	"errors"
	"fmt"
)

// Catalog is a read-only, ordered collection of methylases. Iteration order
// is insertion order; report ordering depends on it, so it is never sorted.
type Catalog struct {
	entries []Methylase
	byName  map[string]int
}

var (
	ErrNotFound  = errors.New("methylase not found")
	ErrDuplicate = errors.New("duplicate methylase name")
)

// NewCatalog builds a catalog from entries, preserving their order.
func NewCatalog(entries []Methylase) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Methylase, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, m := range entries {
		if _, dup := c.byName[m.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, m.Name)
		}
		c.byName[m.Name] = len(c.entries)
		c.entries = append(c.entries, m)
	}
	return c, nil
}

// Get looks a methylase up by name.
func (c *Catalog) Get(name string) (Methylase, error) {
	i, ok := c.byName[name]
	if !ok {
		return Methylase{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.entries[i], nil
}

// Entries returns the ordered entry list. Callers must not mutate it.
func (c *Catalog) Entries() []Methylase { return c.entries }

// Len is the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Select returns a sub-catalog restricted to the named entries, in the
// order the names are given.
func (c *Catalog) Select(names []string) (*Catalog, error) {
	picked := make([]Methylase, 0, len(names))
	for _, n := range names {
		m, err := c.Get(n)
		if err != nil {
			return nil, err
		}
		picked = append(picked, m)
	}
	return NewCatalog(picked)
}
