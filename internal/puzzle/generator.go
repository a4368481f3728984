package puzzle

import (
	"math/rand"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

// Generator draws random pieces from a catalog. Heavy pieces become more
// likely as the difficulty level rises.
type Generator struct {
	rng        *rand.Rand
	catalog    *Catalog
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator seeded for reproducible draws.
func NewGenerator(seed int64, catalog *Catalog, difficulty *config.DifficultyManager) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		catalog:    catalog,
		difficulty: difficulty,
	}
}

// Next returns a random piece in a random orientation.
func (g *Generator) Next(score, moves int) Piece {
	entries := g.catalog.Entries()
	if len(entries) == 0 {
		return Piece{}
	}

	weights := make([]float64, len(entries))
	total := 0.0
	for i, e := range entries {
		w := e.Weight
		if e.Heavy() && g.difficulty != nil {
			w = g.difficulty.HeavyWeight(w, score, moves)
		}
		weights[i] = w
		total += w
	}

	pick := entries[len(entries)-1].Piece
	if total > 0 {
		r := g.rng.Float64() * total
		for i, w := range weights {
			if r < w {
				pick = entries[i].Piece
				break
			}
			r -= w
		}
	}

	return pick.RotateN(g.rng.Intn(4))
}
