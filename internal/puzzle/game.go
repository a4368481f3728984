package puzzle

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

// Slot indices. Slots 1 to 3 hold the active pieces; the parking slot holds
// one piece set aside by the player.
const (
	ParkingIndex = -1
	slotCount    = 4
	activeSlots  = 3
)

// SlotIndices lists every slot index in display order.
var SlotIndices = []int{1, 2, 3, ParkingIndex}

var (
	// ErrGameOver is returned for moves attempted after the game ended.
	ErrGameOver = errors.New("puzzle: game is over")
	// ErrUnknownSlot is returned for slot indices other than 1, 2, 3 and -1.
	ErrUnknownSlot = errors.New("puzzle: unknown slot")
	// ErrNoPiece is returned when the addressed slot is empty.
	ErrNoPiece = errors.New("puzzle: slot is empty")
	// ErrNotRotating is returned by RotateSlot outside rotating mode.
	ErrNotRotating = errors.New("puzzle: rotating mode is off")
)

// ValidSlot reports whether index names a slot.
func ValidSlot(index int) bool {
	return (index >= 1 && index <= activeSlots) || index == ParkingIndex
}

// slotPos maps a slot index to its array position. index must be valid.
func slotPos(index int) int {
	if index == ParkingIndex {
		return slotCount - 1
	}
	return index - 1
}

// OutcomeKind classifies what a gesture did.
type OutcomeKind int

const (
	OutcomeNoop     OutcomeKind = iota // Nothing changed
	OutcomePlaced                      // Piece committed to the board
	OutcomeParked                      // Piece moved to the parking slot
	OutcomeRotated                     // Piece rotated in its slot
	OutcomeRejected                    // Move impossible, nothing changed
)

// String returns a human-readable name for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoop:
		return "noop"
	case OutcomePlaced:
		return "placed"
	case OutcomeParked:
		return "parked"
	case OutcomeRotated:
		return "rotated"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is returned by every state-changing gesture. The UI applies it to
// its views; the game never touches presentation state itself.
type Outcome struct {
	Kind       OutcomeKind
	Index      int
	Position   Position        // Target cell for board drops
	Result     PlacementResult // Validation result for board drops
	Clear      ClearOutcome    // Lines cleared by a placement
	ScoreDelta int
	Refilled   bool // Slots 1-3 were refilled with new pieces
	GameOver   bool // The gesture ended the game
}

// Options configures a new Game.
type Options struct {
	Config      config.BlockPuzzleConfig
	Seed        int64
	Catalog     *Catalog // DefaultCatalog() when nil
	Persistence Persistence
	Feedback    Feedback
	Logger      *log.Logger
}

// Game owns the board and all game state. It is not safe for concurrent use;
// the UI delivers one gesture at a time.
type Game struct {
	cfg         config.BlockPuzzleConfig
	catalog     *Catalog
	generator   *Generator
	resolver    Resolver
	scoring     Scoring
	persistence Persistence
	feedback    Feedback
	logger      *log.Logger

	board     *Board
	slots     [slotCount]Piece
	score     int
	lastDelta int
	moves     int
	rotating  bool
	gameOver  bool
}

// New creates a game. Call InitGame or NewGame before playing.
func New(opts Options) *Game {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	feedback := opts.Feedback
	if feedback == nil {
		feedback = NopFeedback{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:         opts.Config,
		catalog:     catalog,
		generator:   NewGenerator(opts.Seed, catalog, config.NewDifficultyManager(opts.Config.Difficulty)),
		resolver:    NewResolver(opts.Config),
		scoring:     ScoringFromConfig(opts.Config.Scoring),
		persistence: opts.Persistence,
		feedback:    feedback,
		logger:      logger,
		board:       NewBoard(opts.Config.Board.Blocks),
	}
}

// InitGame resumes the saved game if there is one, otherwise starts a new
// game. Corrupt saves are logged and replaced. When the store cannot be read
// the new game is kept in memory only, so the stored game survives until the
// player makes a move.
func (g *Game) InitGame() {
	if g.persistence == nil {
		g.NewGame()
		return
	}

	snap, ok, err := g.persistence.Load()
	switch {
	case err != nil:
		g.reportPersistence("could not load saved game", err)
		g.reset()
		return
	case ok:
		if err := g.Restore(snap); err != nil {
			g.logger.Warn("discarding saved game", "error", err)
			break
		}
		g.logger.Debug("restored saved game", "score", g.score, "moves", g.moves)
		return
	}
	g.NewGame()
}

// NewGame resets to an empty board with fresh pieces and zero score.
func (g *Game) NewGame() {
	g.reset()
	g.save()
}

func (g *Game) reset() {
	g.board = NewBoard(g.cfg.Board.Blocks)
	g.slots = [slotCount]Piece{}
	g.score = 0
	g.lastDelta = 0
	g.moves = 0
	g.rotating = false
	g.gameOver = false
	g.refill()
	g.gameOver = !g.anyPlayable()
	g.logger.Debug("new game")
}

// NeedsNewGameConfirmation reports whether starting over would throw away a
// running game worth keeping.
func (g *Game) NeedsNewGameConfirmation() bool {
	return !g.gameOver && g.score >= g.cfg.NewGame.ConfirmThreshold
}

// Drop resolves a drag gesture's pixel position and dispatches it.
func (g *Game) Drop(targetIsParking bool, index int, raw PointF, density float64) (Outcome, error) {
	if !ValidSlot(index) {
		return Outcome{Index: index}, fmt.Errorf("%w: %d", ErrUnknownSlot, index)
	}
	pos := g.resolver.Resolve(raw, density, g.slots[slotPos(index)].Box())
	return g.Dispatch(targetIsParking, index, pos)
}

// Dispatch applies a drop of the piece in slot index either onto the board
// at pos or onto the parking slot.
func (g *Game) Dispatch(targetIsParking bool, index int, pos Position) (Outcome, error) {
	out := Outcome{Index: index, Position: pos}
	if g.gameOver {
		return out, ErrGameOver
	}
	if !ValidSlot(index) {
		return out, fmt.Errorf("%w: %d", ErrUnknownSlot, index)
	}
	piece := g.slots[slotPos(index)]
	if piece.IsEmpty() {
		return out, fmt.Errorf("%w: %d", ErrNoPiece, index)
	}

	if targetIsParking {
		return g.park(out, index, piece), nil
	}
	return g.place(out, index, piece, pos), nil
}

func (g *Game) park(out Outcome, index int, piece Piece) Outcome {
	if index == ParkingIndex {
		out.Kind = OutcomeNoop
		return out
	}
	parking := slotPos(ParkingIndex)
	if !g.slots[parking].IsEmpty() {
		out.Kind = OutcomeRejected
		g.feedback.MoveImpossible()
		return out
	}

	g.slots[parking] = piece
	g.slots[slotPos(index)] = Piece{}
	out.Kind = OutcomeParked
	out.Refilled = g.refill()
	out.GameOver = g.settle()
	g.save()
	return out
}

func (g *Game) place(out Outcome, index int, piece Piece, pos Position) Outcome {
	out.Result = Validate(g.board, piece, pos)
	if out.Result != Accepted {
		out.Kind = OutcomeRejected
		g.feedback.MoveImpossible()
		return out
	}

	out.Kind = OutcomePlaced
	out.Clear = Commit(g.board, piece, pos, g.scoring)
	out.ScoreDelta = out.Clear.ScoreDelta
	g.score += out.ScoreDelta
	g.lastDelta = out.ScoreDelta
	g.moves++
	g.slots[slotPos(index)] = Piece{}

	if out.Clear.Lines() > 0 {
		g.feedback.LinesCleared(out.Clear)
	}
	out.Refilled = g.refill()
	out.GameOver = g.settle()
	g.logger.Debug("piece placed",
		"piece", piece.Name,
		"at", pos,
		"lines", out.Clear.Lines(),
		"delta", out.ScoreDelta,
	)
	g.save()
	return out
}

// ToggleRotatingMode switches between dragging and rotating pieces and
// returns the new mode. It does nothing once the game is over.
func (g *Game) ToggleRotatingMode() bool {
	if g.gameOver {
		return g.rotating
	}
	g.rotating = !g.rotating
	g.save()
	return g.rotating
}

// RotateSlot turns the piece in slot index clockwise. Only allowed in
// rotating mode. Each rotation costs the configured penalty, and the game
// ends if no piece fits anywhere afterwards.
func (g *Game) RotateSlot(index int) (Outcome, error) {
	out := Outcome{Index: index}
	if g.gameOver {
		return out, ErrGameOver
	}
	if !g.rotating {
		return out, ErrNotRotating
	}
	if !ValidSlot(index) {
		return out, fmt.Errorf("%w: %d", ErrUnknownSlot, index)
	}
	pos := slotPos(index)
	if g.slots[pos].IsEmpty() {
		return out, fmt.Errorf("%w: %d", ErrNoPiece, index)
	}

	g.slots[pos] = Rotate(g.slots[pos])
	out.Kind = OutcomeRotated

	if penalty := g.cfg.Rotation.Penalty; penalty > 0 {
		delta := -min(penalty, g.score)
		g.score += delta
		g.lastDelta = delta
		out.ScoreDelta = delta
	}
	out.GameOver = g.settle()
	g.save()
	return out, nil
}

// refill draws three new pieces once slots 1-3 are all empty.
func (g *Game) refill() bool {
	for i := range activeSlots {
		if !g.slots[i].IsEmpty() {
			return false
		}
	}
	for i := range activeSlots {
		g.slots[i] = g.generator.Next(g.score, g.moves)
	}
	return true
}

// settle updates the game-over flag and reports whether the game just ended.
func (g *Game) settle() bool {
	if g.anyPlayable() {
		return false
	}
	g.gameOver = true
	g.logger.Info("game over", "score", g.score, "moves", g.moves)
	g.feedback.GameOver(g.score)
	return true
}

func (g *Game) anyPlayable() bool {
	for _, index := range SlotIndices {
		if g.Playable(index) {
			return true
		}
	}
	return false
}

func (g *Game) save() {
	if g.persistence == nil {
		return
	}
	if err := g.persistence.Save(g.Snapshot()); err != nil {
		g.reportPersistence("could not save game", err)
	}
}

func (g *Game) reportPersistence(msg string, err error) {
	g.logger.Warn(msg, "error", err)
	g.feedback.PersistenceFailed(err)
}

// Playable reports whether the piece in slot index fits somewhere on the
// board. Empty and unknown slots are not playable; the UI greys them out.
func (g *Game) Playable(index int) bool {
	if !ValidSlot(index) {
		return false
	}
	p := g.slots[slotPos(index)]
	return !p.IsEmpty() && HasAnyLegalPlacement(g.board, p)
}

// Slot returns the piece in slot index; ok is false for empty or unknown slots.
func (g *Game) Slot(index int) (Piece, bool) {
	if !ValidSlot(index) {
		return Piece{}, false
	}
	p := g.slots[slotPos(index)]
	return p, !p.IsEmpty()
}

// Board returns a copy of the board for rendering.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Cell returns the state of one board cell.
func (g *Game) Cell(x, y int) Cell {
	return g.board.Cell(x, y)
}

// Blocks returns the board side length.
func (g *Game) Blocks() int {
	return g.board.Size()
}

// Check validates a hypothetical drop of slot index at pos without changing
// anything. The UI uses it for placement previews.
func (g *Game) Check(index int, pos Position) PlacementResult {
	p, ok := g.Slot(index)
	if !ok {
		return RejectedOutOfBounds
	}
	return Validate(g.board, p, pos)
}

// Fits returns how many board positions accept the piece in slot index.
func (g *Game) Fits(index int) int {
	p, ok := g.Slot(index)
	if !ok {
		return 0
	}
	return len(LegalPlacements(g.board, p))
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// LastDelta returns the score change of the most recent scoring gesture.
func (g *Game) LastDelta() int { return g.lastDelta }

// Moves returns the number of pieces placed on the board.
func (g *Game) Moves() int { return g.moves }

// Rotating reports whether rotating mode is on.
func (g *Game) Rotating() bool { return g.rotating }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Status summarizes the game for the platform.
type Status struct {
	Score     int
	LastDelta int
	Moves     int
	Rotating  bool
	GameOver  bool
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return Status{
		Score:     g.score,
		LastDelta: g.lastDelta,
		Moves:     g.moves,
		Rotating:  g.rotating,
		GameOver:  g.gameOver,
	}
}
