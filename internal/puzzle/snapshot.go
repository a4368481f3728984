package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned when a saved game cannot be restored.
var ErrInvalidSnapshot = errors.New("puzzle: invalid snapshot")

// SlotSnapshot records the piece held by one slot.
type SlotSnapshot struct {
	Index    int `yaml:"index"`
	PieceID  int `yaml:"piece"`
	Rotation int `yaml:"rotation"`
}

// Snapshot captures everything needed to resume a game.
type Snapshot struct {
	Blocks    int            `yaml:"blocks"`
	Board     []string       `yaml:"board"`
	Slots     []SlotSnapshot `yaml:"slots"`
	Score     int            `yaml:"score"`
	LastDelta int            `yaml:"last_delta"`
	Moves     int            `yaml:"moves"`
	Rotating  bool           `yaml:"rotating"`
	GameOver  bool           `yaml:"game_over"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Blocks:    g.board.Size(),
		Board:     g.board.Rows(),
		Score:     g.score,
		LastDelta: g.lastDelta,
		Moves:     g.moves,
		Rotating:  g.rotating,
		GameOver:  g.gameOver,
	}
	for _, index := range SlotIndices {
		p := g.slots[slotPos(index)]
		if p.IsEmpty() {
			continue
		}
		s.Slots = append(s.Slots, SlotSnapshot{
			Index:    index,
			PieceID:  p.ID,
			Rotation: p.Rotation,
		})
	}
	return s
}

// Restore replaces the game state with a snapshot. The game is left
// unchanged when the snapshot does not fit this game's board or catalog.
// Empty active slots are refilled and a game with no playable piece is over.
func (g *Game) Restore(s Snapshot) error {
	if s.Blocks != g.cfg.Board.Blocks {
		return fmt.Errorf("%w: board is %dx%d, expected %d", ErrInvalidSnapshot, s.Blocks, s.Blocks, g.cfg.Board.Blocks)
	}
	board, err := BoardFromRows(s.Board)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if board.Size() != s.Blocks {
		return fmt.Errorf("%w: board has %d rows, expected %d", ErrInvalidSnapshot, board.Size(), s.Blocks)
	}

	var slots [slotCount]Piece
	for _, ss := range s.Slots {
		if !ValidSlot(ss.Index) {
			return fmt.Errorf("%w: unknown slot %d", ErrInvalidSnapshot, ss.Index)
		}
		p, ok := g.catalog.Get(ss.PieceID)
		if !ok {
			return fmt.Errorf("%w: unknown piece %d", ErrInvalidSnapshot, ss.PieceID)
		}
		slots[slotPos(ss.Index)] = p.RotateN(ss.Rotation)
	}

	g.board = board
	g.slots = slots
	g.score = s.Score
	g.lastDelta = s.LastDelta
	g.moves = s.Moves
	g.rotating = s.Rotating
	g.refill()
	g.gameOver = s.GameOver || !g.anyPlayable()
	return nil
}
