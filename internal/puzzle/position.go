// Package puzzle implements the block placement puzzle: pieces, the board,
// drop coordinate resolution, placement validation, line clearing, scoring
// and the game state machine. It has no UI dependencies; callers apply the
// returned outcome values to whatever presentation they own.
package puzzle

import "fmt"

// Position is a cell coordinate on the board.
// X increases to the right, Y increases downward.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// PointF is a raw pointer position in device pixels.
type PointF struct {
	X float64
	Y float64
}

// BoundingBox is the inclusive extent of a piece's offsets.
type BoundingBox struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Width returns the number of columns the box spans.
func (b BoundingBox) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows the box spans.
func (b BoundingBox) Height() int {
	return b.MaxY - b.MinY + 1
}
