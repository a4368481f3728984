package puzzle

import "github.com/vovakirdan/tui-blockpuzzle/internal/config"

// Resolver converts a drop gesture's pointer position into the board cell
// of the dropped piece's top-left corner.
type Resolver struct {
	Blocks       int     // Board side length in cells
	FieldWidth   float64 // Playing field width in density-independent units
	AnchorOffset int     // Rows between the pointer and the drag shadow
}

// NewResolver builds the touch-screen resolver described by cfg.
func NewResolver(cfg config.BlockPuzzleConfig) Resolver {
	return Resolver{
		Blocks:       cfg.Board.Blocks,
		FieldWidth:   cfg.Drag.FieldWidth,
		AnchorOffset: cfg.Drag.AnchorOffset,
	}
}

// CellSize returns the edge length of one cell in density-independent units.
func (r Resolver) CellSize() float64 {
	if r.Blocks <= 0 || r.FieldWidth <= 0 {
		return 1
	}
	return r.FieldWidth / float64(r.Blocks)
}

// Resolve maps a raw pointer position to a board position.
//
// Pixels are divided by density, then by the cell size. The pointer sits
// AnchorOffset rows below the piece's bottom row, so the vertical coordinate
// is moved up by that offset plus the piece's height span. Both coordinates
// are truncated toward zero, never rounded. The result may be off the board.
func (r Resolver) Resolve(raw PointF, density float64, box BoundingBox) Position {
	if density <= 0 {
		density = 1
	}
	x := raw.X / density
	y := raw.Y / density

	cell := r.CellSize()
	x /= cell
	y = y/cell - float64(r.AnchorOffset) - float64(box.MaxY-box.MinY)

	return Position{X: int(x), Y: int(y)}
}
