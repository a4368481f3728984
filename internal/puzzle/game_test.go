package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

func TestNewGame(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())

	for _, index := range []int{1, 2, 3} {
		_, ok := g.Slot(index)
		assert.True(t, ok, "slot %d", index)
	}
	_, ok := g.Slot(ParkingIndex)
	assert.False(t, ok)
	assert.Equal(t, Status{}, g.Status())
	assert.Equal(t, 10, g.Blocks())
	assert.Equal(t, 1, g.store.saves, "new game is saved")
}

func TestNewGameResets(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "dot"), catalogPiece(t, "line4"))
	_, err := g.Dispatch(false, 1, P(0, 0))
	require.NoError(t, err)
	g.ToggleRotatingMode()

	g.NewGame()

	assert.Equal(t, Status{}, g.Status())
	assert.Equal(t, 0, g.Board().FilledCount())
	_, ok := g.Slot(ParkingIndex)
	assert.False(t, ok)
}

func TestDropPlacesPiece(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "dot"), catalogPiece(t, "line4"), catalogPiece(t, "line4"))

	out, err := g.Drop(false, 1, PointF{X: 570, Y: 690}, 2)
	require.NoError(t, err)

	assert.Equal(t, OutcomePlaced, out.Kind)
	assert.Equal(t, Accepted, out.Result)
	assert.Equal(t, P(9, 9), out.Position)
	assert.Equal(t, 1, out.ScoreDelta)
	assert.False(t, out.Refilled)
	assert.False(t, out.GameOver)

	assert.True(t, g.Board().Filled(9, 9))
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 1, g.LastDelta())
	assert.Equal(t, 1, g.Moves())
	_, ok := g.Slot(1)
	assert.False(t, ok, "placed piece leaves its slot")

	require.NotNil(t, g.store.saved)
	assert.Equal(t, 1, g.store.saved.Score)
}

func TestRejectedDropChangesNothing(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "dot"), catalogPiece(t, "line4"), catalogPiece(t, "line4"))
	g.board.set(9, 9, 1)
	before := g.Snapshot()
	saves := g.store.saves

	out, err := g.Drop(false, 1, PointF{X: 570, Y: 690}, 2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out.Kind)
	assert.Equal(t, RejectedOverlap, out.Result)

	out, err = g.Dispatch(false, 2, P(8, 0))
	require.NoError(t, err)
	assert.Equal(t, RejectedOutOfBounds, out.Result)

	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, 2, g.feedback.impossible)
	assert.Equal(t, saves, g.store.saves)
}

func TestPlacingLastPieceRefills(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "dot"))

	out, err := g.Dispatch(false, 1, P(4, 4))
	require.NoError(t, err)
	assert.True(t, out.Refilled)
	for _, index := range []int{1, 2, 3} {
		_, ok := g.Slot(index)
		assert.True(t, ok, "slot %d", index)
	}
}

func TestLineClearScoresAndNotifies(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "dot"), catalogPiece(t, "line4"), catalogPiece(t, "line4"))
	fillBoard(g.board, func(x, y int) bool { return y != 0 || x == 9 })

	out, err := g.Dispatch(false, 1, P(9, 0))
	require.NoError(t, err)

	assert.Equal(t, []int{0}, out.Clear.Rows)
	assert.Equal(t, 11, out.ScoreDelta)
	assert.Equal(t, 11, g.Score())
	assert.Equal(t, 0, g.Board().FilledCount())
	require.Len(t, g.feedback.cleared, 1)
	assert.Equal(t, 1, g.feedback.cleared[0].Lines())
}

func TestParking(t *testing.T) {
	dot := catalogPiece(t, "dot")
	g := newTestGame(t, config.DefaultConfig(), dot, catalogPiece(t, "domino"), catalogPiece(t, "tromino"))

	out, err := g.Dispatch(true, 1, Position{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeParked, out.Kind)
	assert.False(t, out.Refilled)
	parked, ok := g.Slot(ParkingIndex)
	require.True(t, ok)
	assert.Equal(t, dot.ID, parked.ID)
	_, ok = g.Slot(1)
	assert.False(t, ok)

	out, err = g.Dispatch(true, 2, Position{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out.Kind, "parking holds one piece")
	assert.Equal(t, 1, g.feedback.impossible)

	out, err = g.Dispatch(true, ParkingIndex, Position{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, out.Kind)

	out, err = g.Dispatch(false, ParkingIndex, P(0, 0))
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaced, out.Kind)
	_, ok = g.Slot(ParkingIndex)
	assert.False(t, ok)
	assert.Equal(t, 1, g.Score(), "parked piece scores like any other")
}

func TestParkingLastActivePieceRefills(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "dot"))

	out, err := g.Dispatch(true, 1, Position{})
	require.NoError(t, err)
	assert.True(t, out.Refilled)
	_, ok := g.Slot(ParkingIndex)
	assert.True(t, ok)
}

func TestGameOverWhenNothingFits(t *testing.T) {
	domino := catalogPiece(t, "domino")
	g := newTestGame(t, config.DefaultConfig(), domino, domino, domino)
	fillBoard(g.board, func(x, y int) bool { return x == 0 && y == 0 })

	out, err := g.Dispatch(true, 1, Position{})
	require.NoError(t, err)
	assert.True(t, out.GameOver)
	assert.True(t, g.GameOver())
	assert.Equal(t, []int{0}, g.feedback.gameOvers)
	require.NotNil(t, g.store.saved)
	assert.True(t, g.store.saved.GameOver)

	_, err = g.Dispatch(false, 2, P(0, 0))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.False(t, g.ToggleRotatingMode())
	assert.False(t, g.NeedsNewGameConfirmation())
}

func TestParkedPieceKeepsGameAlive(t *testing.T) {
	domino := catalogPiece(t, "domino")
	g := newTestGame(t, config.DefaultConfig(), domino, domino, domino, catalogPiece(t, "dot"))
	fillBoard(g.board, func(x, y int) bool { return x == 0 && y == 0 })
	g.ToggleRotatingMode()

	out, err := g.RotateSlot(1)
	require.NoError(t, err)
	assert.False(t, out.GameOver)
	assert.False(t, g.Playable(1))
	assert.True(t, g.Playable(ParkingIndex))
}

func TestRotateSlot(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "line4"), catalogPiece(t, "dot"))

	_, err := g.RotateSlot(1)
	assert.ErrorIs(t, err, ErrNotRotating)

	assert.True(t, g.ToggleRotatingMode())
	require.NotNil(t, g.store.saved)
	assert.True(t, g.store.saved.Rotating)

	out, err := g.RotateSlot(1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRotated, out.Kind)
	p, _ := g.Slot(1)
	assert.Equal(t, []string{"#", "#", "#", "#"}, p.Rows())
	assert.Equal(t, 1, p.Rotation)
	assert.Equal(t, 0, g.Score())

	_, err = g.RotateSlot(3)
	assert.ErrorIs(t, err, ErrNoPiece)

	assert.False(t, g.ToggleRotatingMode())
}

func TestRotatePenalty(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rotation.Penalty = 5
	g := newTestGame(t, cfg, catalogPiece(t, "line4"))
	g.ToggleRotatingMode()

	g.score = 12
	out, err := g.RotateSlot(1)
	require.NoError(t, err)
	assert.Equal(t, -5, out.ScoreDelta)
	assert.Equal(t, 7, g.Score())

	g.score = 3
	_, err = g.RotateSlot(1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score(), "score never goes negative")
	assert.Equal(t, -3, g.LastDelta())
}

func TestRotationCanEndGame(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "tromino"))
	fillBoard(g.board, func(x, y int) bool { return y == 0 && x < 3 })
	require.True(t, g.Playable(1))
	g.ToggleRotatingMode()

	out, err := g.RotateSlot(1)
	require.NoError(t, err)
	assert.True(t, out.GameOver)
	assert.True(t, g.GameOver())
}

func TestNeedsNewGameConfirmation(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	assert.False(t, g.NeedsNewGameConfirmation())

	g.score = 9
	assert.False(t, g.NeedsNewGameConfirmation())

	g.score = 10
	assert.True(t, g.NeedsNewGameConfirmation())

	g.gameOver = true
	assert.False(t, g.NeedsNewGameConfirmation())
}

func TestGestureErrors(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "dot"))

	_, err := g.Dispatch(false, 4, P(0, 0))
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = g.Drop(false, 0, PointF{}, 1)
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = g.Dispatch(false, 2, P(0, 0))
	assert.ErrorIs(t, err, ErrNoPiece)

	g.ToggleRotatingMode()
	_, err = g.RotateSlot(-2)
	assert.ErrorIs(t, err, ErrUnknownSlot)

	assert.False(t, g.Playable(5))
	assert.Equal(t, RejectedOutOfBounds, g.Check(2, P(0, 0)))
	assert.Equal(t, Accepted, g.Check(1, P(0, 0)))
}

func TestInitGameRestoresSave(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "dot"), catalogPiece(t, "square"), catalogPiece(t, "tee"))
	_, err := g.Dispatch(false, 1, P(2, 3))
	require.NoError(t, err)
	_, err = g.Dispatch(true, 3, Position{})
	require.NoError(t, err)

	resumed := New(Options{Config: config.DefaultConfig(), Seed: 2, Persistence: g.store})
	resumed.InitGame()

	assert.Equal(t, g.Snapshot(), resumed.Snapshot())
	assert.True(t, resumed.Board().Filled(2, 3))
	parked, ok := resumed.Slot(ParkingIndex)
	require.True(t, ok)
	assert.Equal(t, "tee", parked.Name)
}

func TestInitGameWithoutSave(t *testing.T) {
	fb := &fakeFeedback{}
	store := &fakePersistence{loadErr: errDisk}
	g := New(Options{Config: config.DefaultConfig(), Persistence: store, Feedback: fb})
	g.InitGame()

	assert.Equal(t, []error{errDisk}, fb.persistErrs)
	_, ok := g.Slot(1)
	assert.True(t, ok, "a failed load starts a new game")

	bare := New(Options{Config: config.DefaultConfig()})
	bare.InitGame()
	_, ok = bare.Slot(3)
	assert.True(t, ok)
}

func TestInitGameLoadErrorKeepsStoredGame(t *testing.T) {
	src := newTestGame(t, config.DefaultConfig())
	src.score = 777
	snap := src.Snapshot()

	store := &fakePersistence{saved: &snap, loadErr: errDisk}
	g := New(Options{Config: config.DefaultConfig(), Persistence: store})
	g.InitGame()

	assert.Equal(t, 0, g.Score())
	_, ok := g.Slot(1)
	assert.True(t, ok, "play continues with a fresh game")
	assert.Equal(t, 0, store.saves, "the fresh game is not written over the stored one")
	assert.Equal(t, 777, store.saved.Score)

	store.loadErr = nil
	resumed := New(Options{Config: config.DefaultConfig(), Persistence: store})
	resumed.InitGame()
	assert.Equal(t, 777, resumed.Score())
}

func TestInitGameDiscardsIncompatibleSave(t *testing.T) {
	store := &fakePersistence{saved: &Snapshot{Blocks: 8, Score: 500}}
	g := New(Options{Config: config.DefaultConfig(), Persistence: store})
	g.InitGame()

	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 10, g.Blocks())
	assert.Equal(t, 10, store.saved.Blocks, "new game replaces the bad save")
}

func TestSaveFailureDoesNotStopPlay(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "dot"), catalogPiece(t, "line4"), catalogPiece(t, "line4"))
	g.store.saveErr = errDisk

	out, err := g.Dispatch(false, 1, P(0, 0))
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaced, out.Kind)
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, []error{errDisk}, g.feedback.persistErrs)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "placed", OutcomePlaced.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}

func TestFits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.Blocks = 4
	g := newTestGame(t, cfg, catalogPiece(t, "dot"), catalogPiece(t, "line4"), Piece{})

	assert.Equal(t, 16, g.Fits(1))
	assert.Equal(t, 4, g.Fits(2), "one per row")
	assert.Equal(t, 0, g.Fits(3))
	assert.Equal(t, 0, g.Fits(7))
}
