package puzzle

import (
	"fmt"
	"strings"
)

// Cell is the state of one board cell. Zero is empty; any other value is
// filled and carries the color of the piece that filled it.
type Cell uint8

// Empty is the state of an unoccupied cell.
const Empty Cell = 0

// Board is a fixed-size square grid. Its dimensions never change after
// creation. Only Commit mutates a board.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an empty board with the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Cell returns the cell at (x, y). Out-of-bounds cells read as Empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.size+x]
}

// Filled reports whether the cell at (x, y) is occupied.
func (b *Board) Filled(x, y int) bool {
	return b.Cell(x, y) != Empty
}

func (b *Board) set(x, y int, c Cell) {
	b.cells[y*b.size+x] = c
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// RowFull reports whether every cell in row y is filled.
func (b *Board) RowFull(y int) bool {
	for x := range b.size {
		if !b.Filled(x, y) {
			return false
		}
	}
	return true
}

// ColFull reports whether every cell in column x is filled.
func (b *Board) ColFull(x int) bool {
	for y := range b.size {
		if !b.Filled(x, y) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		size:  b.size,
		cells: make([]Cell, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

const cellDigits = "123456789abcdefghijklmnopqrstuvwxyz"

// Rows encodes the board as one string per row: '.' for empty cells and a
// digit or letter for the color of filled cells.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for y := range b.size {
		sb.Reset()
		for x := range b.size {
			c := b.Cell(x, y)
			switch {
			case c == Empty:
				sb.WriteByte('.')
			case int(c) <= len(cellDigits):
				sb.WriteByte(cellDigits[c-1])
			default:
				sb.WriteByte(cellDigits[len(cellDigits)-1])
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// BoardFromRows decodes a board written by Rows. The board must be square.
func BoardFromRows(rows []string) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("board has no rows")
	}
	b := NewBoard(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), size)
		}
		for x := range size {
			ch := row[x]
			if ch == '.' {
				continue
			}
			i := strings.IndexByte(cellDigits, ch)
			if i < 0 {
				return nil, fmt.Errorf("row %d: invalid cell %q", y, ch)
			}
			b.set(x, y, Cell(i+1))
		}
	}
	return b, nil
}
