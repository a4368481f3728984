package puzzle

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
)

// HeavySize is the cell count from which a piece counts as heavy.
// Heavy pieces get more likely as difficulty rises.
const HeavySize = 5

// CatalogEntry is a registered piece with its base draw weight.
type CatalogEntry struct {
	Piece  Piece
	Weight float64
}

// Heavy reports whether the entry's piece is a heavy piece.
func (e CatalogEntry) Heavy() bool {
	return e.Piece.Size() >= HeavySize
}

// Catalog is the set of pieces the generator draws from, keyed by ID.
// Saved games refer to pieces by catalog ID and rotation.
type Catalog struct {
	entries *intmap.Map[int, CatalogEntry]
	ids     []int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: intmap.New[int, CatalogEntry](32),
	}
}

// Register adds a piece under its ID.
// Panics if the ID is already registered or the piece has no cells.
func (c *Catalog) Register(p Piece, weight float64) {
	if p.IsEmpty() {
		panic(fmt.Sprintf("puzzle: piece %q has no cells", p.Name))
	}
	if _, exists := c.entries.Get(p.ID); exists {
		panic(fmt.Sprintf("puzzle: piece id %d already registered", p.ID))
	}
	c.entries.Put(p.ID, CatalogEntry{Piece: p, Weight: weight})
	c.ids = append(c.ids, p.ID)
	slices.Sort(c.ids)
}

// Get returns the piece registered under id in its catalog orientation.
func (c *Catalog) Get(id int) (Piece, bool) {
	e, ok := c.entries.Get(id)
	if !ok {
		return Piece{}, false
	}
	return e.Piece, true
}

// Entries returns all entries ordered by ID.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(c.ids))
	for _, id := range c.ids {
		e, _ := c.entries.Get(id)
		out = append(out, e)
	}
	return out
}

// Len returns the number of registered pieces.
func (c *Catalog) Len() int {
	return c.entries.Len()
}

var defaultCatalog = newDefaultCatalog()

// DefaultCatalog returns the standard piece set.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func newDefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register(ParseShape(1, "dot", core.ColorYellow, "#"), 1.0)
	c.Register(ParseShape(2, "domino", core.ColorGreen, "##"), 1.5)
	c.Register(ParseShape(3, "tromino", core.ColorCyan, "###"), 1.5)
	c.Register(ParseShape(4, "line4", core.ColorBlue, "####"), 1.0)
	c.Register(ParseShape(5, "line5", core.ColorRed, "#####"), 0.6)
	c.Register(ParseShape(6, "corner", core.ColorTeal,
		"##",
		"#.",
	), 1.5)
	c.Register(ParseShape(7, "square", core.ColorOrange,
		"##",
		"##",
	), 1.5)
	c.Register(ParseShape(8, "block", core.ColorMagenta,
		"###",
		"###",
		"###",
	), 0.4)
	c.Register(ParseShape(9, "bigcorner", core.ColorPink,
		"###",
		"#..",
		"#..",
	), 0.6)
	c.Register(ParseShape(10, "tee", core.ColorMagenta,
		"###",
		".#.",
	), 1.0)
	c.Register(ParseShape(11, "ess", core.ColorGreen,
		".##",
		"##.",
	), 0.8)
	c.Register(ParseShape(12, "zed", core.ColorRed,
		"##.",
		".##",
	), 0.8)
	c.Register(ParseShape(13, "ell", core.ColorOrange,
		"#.",
		"#.",
		"##",
	), 1.0)
	c.Register(ParseShape(14, "jay", core.ColorBlue,
		".#",
		".#",
		"##",
	), 1.0)
	return c
}
