package puzzle

import (
	"slices"
	"strings"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
)

// Piece is a fixed arrangement of occupied cells. Offsets are normalized so
// the bounding box starts at (0, 0) and are kept sorted row by row.
// A Piece is a value: Rotate returns a new piece and never touches a board.
// The zero Piece has no cells and marks an empty slot.
type Piece struct {
	ID       int
	Name     string
	Color    core.Color
	Rotation int // Quarter turns clockwise from the catalog orientation (0-3)
	cells    []Position
}

// NewPiece builds a piece from arbitrary offsets. Duplicates are dropped and
// the shape is normalized.
func NewPiece(id int, name string, color core.Color, offsets ...Position) Piece {
	return Piece{
		ID:    id,
		Name:  name,
		Color: color,
		cells: normalize(offsets),
	}
}

// ParseShape builds a piece from rows of '#' (filled) and '.' (empty).
func ParseShape(id int, name string, color core.Color, rows ...string) Piece {
	var offsets []Position
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				offsets = append(offsets, P(x, y))
			}
		}
	}
	return NewPiece(id, name, color, offsets...)
}

// IsEmpty reports whether the piece has no cells.
func (p Piece) IsEmpty() bool {
	return len(p.cells) == 0
}

// Size returns the number of cells of the piece.
func (p Piece) Size() int {
	return len(p.cells)
}

// Cells returns a copy of the piece's offsets.
func (p Piece) Cells() []Position {
	return slices.Clone(p.cells)
}

// Box returns the bounding box of the piece's offsets.
func (p Piece) Box() BoundingBox {
	if len(p.cells) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{
		MinX: p.cells[0].X, MaxX: p.cells[0].X,
		MinY: p.cells[0].Y, MaxY: p.cells[0].Y,
	}
	for _, c := range p.cells[1:] {
		box.MinX = min(box.MinX, c.X)
		box.MaxX = max(box.MaxX, c.X)
		box.MinY = min(box.MinY, c.Y)
		box.MaxY = max(box.MaxY, c.Y)
	}
	return box
}

// Rotate returns the piece turned 90 degrees clockwise with a recomputed
// bounding box.
func (p Piece) Rotate() Piece {
	rotated := make([]Position, len(p.cells))
	for i, c := range p.cells {
		rotated[i] = Position{X: -c.Y, Y: c.X}
	}
	p.cells = normalize(rotated)
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// RotateN applies Rotate n times (mod 4).
func (p Piece) RotateN(n int) Piece {
	n = ((n % 4) + 4) % 4
	for range n {
		p = p.Rotate()
	}
	return p
}

// SameShape reports whether two pieces occupy the same offsets.
func (p Piece) SameShape(other Piece) bool {
	return slices.Equal(p.cells, other.cells)
}

// Rows draws the shape as rows of '#' and '.'.
func (p Piece) Rows() []string {
	if p.IsEmpty() {
		return nil
	}
	box := p.Box()
	grid := make([][]byte, box.Height())
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", box.Width()))
	}
	for _, c := range p.cells {
		grid[c.Y][c.X] = '#'
	}
	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}
	return rows
}

// String returns the piece name and its shape on one line.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "<empty>"
	}
	return p.Name + " " + strings.Join(p.Rows(), "/")
}

// normalize shifts offsets so the minimum x and y are zero, drops
// duplicates and sorts by row then column.
func normalize(offsets []Position) []Position {
	if len(offsets) == 0 {
		return nil
	}
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets[1:] {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}

	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, Position{X: o.X - minX, Y: o.Y - minY})
	}
	slices.SortFunc(out, func(a, b Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return slices.Compact(out)
}
