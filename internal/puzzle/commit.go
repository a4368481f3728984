package puzzle

import "github.com/vovakirdan/tui-blockpuzzle/internal/config"

// Scoring is the tunable scoring policy.
type Scoring struct {
	CellPoints int // Points per placed cell
	LinePoints int // Bonus is LinePoints * k * k for k lines cleared at once
}

// DefaultScoring returns the built-in scoring policy.
func DefaultScoring() Scoring {
	return ScoringFromConfig(config.DefaultConfig().Scoring)
}

// ScoringFromConfig converts the YAML scoring section.
func ScoringFromConfig(cfg config.ScoringConfig) Scoring {
	return Scoring{
		CellPoints: cfg.CellPoints,
		LinePoints: cfg.LinePoints,
	}
}

// PlacementScore returns the base score for placing cells cells.
func (s Scoring) PlacementScore(cells int) int {
	return s.CellPoints * cells
}

// ClearBonus returns the bonus for lines cleared by one placement.
// Simultaneous clears grow quadratically: one commit clearing two lines
// scores more than two commits clearing one each.
func (s Scoring) ClearBonus(lines int) int {
	return s.LinePoints * lines * lines
}

// ClearOutcome reports what a committed placement did to the board.
type ClearOutcome struct {
	Rows           []int // Cleared rows, ascending
	Cols           []int // Cleared columns, ascending
	PlacedCells    int
	PlacementScore int
	ClearBonus     int
	ScoreDelta     int
}

// Lines returns the number of cleared rows and columns.
func (o ClearOutcome) Lines() int {
	return len(o.Rows) + len(o.Cols)
}

// Cleared reports whether cell (x, y) was part of a cleared line.
func (o ClearOutcome) Cleared(x, y int) bool {
	for _, r := range o.Rows {
		if r == y {
			return true
		}
	}
	for _, c := range o.Cols {
		if c == x {
			return true
		}
	}
	return false
}

// Commit places piece at pos, clears full lines and scores the move.
// The caller must have validated the placement; Commit does not re-check.
//
// Full rows and columns are determined once against the board after the
// piece is placed and then cleared together, so clearing one line never
// changes whether another qualifies.
func Commit(b *Board, p Piece, pos Position, s Scoring) ClearOutcome {
	color := pieceCell(p)
	for _, c := range p.cells {
		abs := pos.Add(c)
		b.set(abs.X, abs.Y, color)
	}

	var out ClearOutcome
	for y := range b.Size() {
		if b.RowFull(y) {
			out.Rows = append(out.Rows, y)
		}
	}
	for x := range b.Size() {
		if b.ColFull(x) {
			out.Cols = append(out.Cols, x)
		}
	}

	for _, y := range out.Rows {
		for x := range b.Size() {
			b.set(x, y, Empty)
		}
	}
	for _, x := range out.Cols {
		for y := range b.Size() {
			b.set(x, y, Empty)
		}
	}

	out.PlacedCells = p.Size()
	out.PlacementScore = s.PlacementScore(out.PlacedCells)
	out.ClearBonus = s.ClearBonus(out.Lines())
	out.ScoreDelta = out.PlacementScore + out.ClearBonus
	return out
}

// Rotate returns piece turned 90 degrees clockwise. It is a pure transform.
func Rotate(p Piece) Piece {
	return p.Rotate()
}

// pieceCell returns the non-empty cell value a piece fills cells with.
func pieceCell(p Piece) Cell {
	if p.Color == 0 {
		return 1
	}
	return Cell(p.Color)
}
