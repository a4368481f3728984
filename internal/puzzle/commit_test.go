package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoring(t *testing.T) {
	s := DefaultScoring()
	assert.Equal(t, Scoring{CellPoints: 1, LinePoints: 10}, s)
	assert.Equal(t, 5, s.PlacementScore(5))
	assert.Equal(t, 0, s.ClearBonus(0))
	assert.Equal(t, 10, s.ClearBonus(1))
	assert.Equal(t, 40, s.ClearBonus(2))
	assert.Equal(t, 90, s.ClearBonus(3))
}

func TestCommitWithoutClear(t *testing.T) {
	b := NewBoard(10)
	p := catalogPiece(t, "tee")
	out := Commit(b, p, P(3, 4), DefaultScoring())

	assert.Equal(t, 4, out.PlacedCells)
	assert.Equal(t, 4, out.ScoreDelta)
	assert.Zero(t, out.Lines())
	assert.Equal(t, 4, b.FilledCount())
	for _, c := range p.Cells() {
		assert.Equal(t, Cell(p.Color), b.Cell(3+c.X, 4+c.Y))
	}
}

func TestCommitClearsRow(t *testing.T) {
	b := NewBoard(10)
	fillBoard(b, func(x, y int) bool { return y != 9 || x == 9 })
	b.set(0, 8, 1)

	out := Commit(b, catalogPiece(t, "dot"), P(9, 9), DefaultScoring())

	assert.Equal(t, []int{9}, out.Rows)
	assert.Empty(t, out.Cols)
	assert.Equal(t, 1, out.PlacementScore)
	assert.Equal(t, 10, out.ClearBonus)
	assert.Equal(t, 11, out.ScoreDelta)
	assert.Equal(t, 1, b.FilledCount(), "only the cell above the row survives")
	assert.True(t, b.Filled(0, 8))
	assert.True(t, out.Cleared(4, 9))
	assert.False(t, out.Cleared(0, 8))
}

func TestCommitClearsRowAndColumnTogether(t *testing.T) {
	b := NewBoard(10)
	fillBoard(b, func(x, y int) bool { return !(y == 0 || x == 9) || (x == 9 && y == 0) })

	out := Commit(b, catalogPiece(t, "dot"), P(9, 0), DefaultScoring())

	assert.Equal(t, []int{0}, out.Rows)
	assert.Equal(t, []int{9}, out.Cols)
	assert.Equal(t, 2, out.Lines())
	assert.Equal(t, 40, out.ClearBonus)
	assert.Equal(t, 41, out.ScoreDelta)
	assert.Equal(t, 0, b.FilledCount())
}

func TestCommitClearsSimultaneousRows(t *testing.T) {
	b := NewBoard(10)
	fillBoard(b, func(x, y int) bool { return y > 1 || x >= 8 })

	out := Commit(b, catalogPiece(t, "square"), P(8, 0), DefaultScoring())

	assert.Equal(t, []int{0, 1}, out.Rows)
	assert.Empty(t, out.Cols)
	assert.Equal(t, 4, out.PlacementScore)
	assert.Equal(t, 40, out.ClearBonus)
	assert.Equal(t, 44, out.ScoreDelta)
	assert.Equal(t, 0, b.FilledCount())
}

func TestCommitCustomScoring(t *testing.T) {
	b := NewBoard(4)
	fillBoard(b, func(x, y int) bool { return y != 0 || x == 0 })

	out := Commit(b, catalogPiece(t, "dot"), P(0, 0), Scoring{CellPoints: 2, LinePoints: 5})
	assert.Equal(t, 2+5, out.ScoreDelta)
}
