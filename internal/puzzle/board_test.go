package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(10)
	assert.Equal(t, 10, b.Size())
	assert.Equal(t, 0, b.FilledCount())
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(9, 9))
	assert.False(t, b.InBounds(10, 0))
	assert.False(t, b.InBounds(0, -1))
	assert.Equal(t, Empty, b.Cell(-1, 3), "out-of-bounds cells read as empty")

	assert.Equal(t, 1, NewBoard(0).Size())
}

func TestBoardRowsRoundTrip(t *testing.T) {
	rows := []string{
		"1...",
		".2..",
		"..c.",
		"z..9",
	}
	b, err := BoardFromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 5, b.FilledCount())
	assert.Equal(t, Cell(1), b.Cell(0, 0))
	assert.Equal(t, Cell(12), b.Cell(2, 2))
	assert.Equal(t, Cell(9), b.Cell(3, 3))
	assert.Equal(t, rows, b.Rows())
}

func TestBoardFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"not square", []string{"...", "..."}},
		{"ragged", []string{"..", "..."}},
		{"invalid cell", []string{"..", ".#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoardFromRows(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestBoardFullLines(t *testing.T) {
	b := NewBoard(4)
	fillBoard(b, func(x, y int) bool { return y != 1 && x != 2 })

	assert.True(t, b.RowFull(1))
	assert.False(t, b.RowFull(0))
	assert.True(t, b.ColFull(2))
	assert.False(t, b.ColFull(0))
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(4)
	c := b.Clone()
	c.set(1, 1, 3)
	assert.Equal(t, Empty, b.Cell(1, 1))
	assert.Equal(t, Cell(3), c.Cell(1, 1))
}
