package puzzle

// PlacementResult is the outcome of checking a piece at a position.
type PlacementResult int

const (
	Accepted PlacementResult = iota
	RejectedOutOfBounds
	RejectedOverlap
)

// String returns a human-readable name for the result.
func (r PlacementResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedOutOfBounds:
		return "out of bounds"
	case RejectedOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Validate checks whether piece fits at pos. It has no side effects.
// Out-of-bounds takes precedence over overlap. A piece without cells fits
// anywhere.
func Validate(b *Board, p Piece, pos Position) PlacementResult {
	for _, c := range p.cells {
		abs := pos.Add(c)
		if !b.InBounds(abs.X, abs.Y) {
			return RejectedOutOfBounds
		}
	}
	for _, c := range p.cells {
		abs := pos.Add(c)
		if b.Filled(abs.X, abs.Y) {
			return RejectedOverlap
		}
	}
	return Accepted
}

// HasAnyLegalPlacement reports whether piece fits anywhere on the board.
func HasAnyLegalPlacement(b *Board, p Piece) bool {
	box := p.Box()
	for y := -box.MinY; y+box.MaxY < b.Size(); y++ {
		for x := -box.MinX; x+box.MaxX < b.Size(); x++ {
			if Validate(b, p, P(x, y)) == Accepted {
				return true
			}
		}
	}
	return false
}

// LegalPlacements returns every position where piece fits, row by row.
func LegalPlacements(b *Board, p Piece) []Position {
	var out []Position
	box := p.Box()
	for y := -box.MinY; y+box.MaxY < b.Size(); y++ {
		for x := -box.MinX; x+box.MaxX < b.Size(); x++ {
			if Validate(b, p, P(x, y)) == Accepted {
				out = append(out, P(x, y))
			}
		}
	}
	return out
}
