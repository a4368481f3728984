package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

// catalogPiece returns the default catalog piece with the given name.
func catalogPiece(t *testing.T, name string) Piece {
	t.Helper()
	for _, e := range DefaultCatalog().Entries() {
		if e.Piece.Name == name {
			return e.Piece
		}
	}
	t.Fatalf("no catalog piece named %q", name)
	return Piece{}
}

// fillBoard fills every cell of b for which keep returns false.
func fillBoard(b *Board, keep func(x, y int) bool) {
	for y := range b.Size() {
		for x := range b.Size() {
			if !keep(x, y) {
				b.set(x, y, 1)
			}
		}
	}
}

type fakeFeedback struct {
	impossible  int
	cleared     []ClearOutcome
	gameOvers   []int
	persistErrs []error
}

func (f *fakeFeedback) MoveImpossible() { f.impossible++ }
func (f *fakeFeedback) LinesCleared(out ClearOutcome) { f.cleared = append(f.cleared, out) }
func (f *fakeFeedback) GameOver(score int) { f.gameOvers = append(f.gameOvers, score) }
func (f *fakeFeedback) PersistenceFailed(err error) { f.persistErrs = append(f.persistErrs, err) }

type fakePersistence struct {
	saved   *Snapshot
	saves   int
	saveErr error
	loadErr error
}

func (p *fakePersistence) Save(s Snapshot) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.saved = &s
	return nil
}

func (p *fakePersistence) Load() (Snapshot, bool, error) {
	if p.loadErr != nil {
		return Snapshot{}, false, p.loadErr
	}
	if p.saved == nil {
		return Snapshot{}, false, nil
	}
	return *p.saved, true, nil
}

var errDisk = errors.New("disk full")

type testGame struct {
	*Game
	feedback *fakeFeedback
	store    *fakePersistence
}

// newTestGame starts a seeded game on the default configuration and
// replaces the drawn pieces with slots (1, 2, 3, parking).
func newTestGame(t *testing.T, cfg config.BlockPuzzleConfig, slots ...Piece) testGame {
	t.Helper()
	fb := &fakeFeedback{}
	store := &fakePersistence{}
	g := New(Options{
		Config:      cfg,
		Seed:        1,
		Persistence: store,
		Feedback:    fb,
	})
	g.NewGame()
	require.False(t, g.GameOver())
	if len(slots) > 0 {
		g.slots = [slotCount]Piece{}
		copy(g.slots[:], slots)
	}
	return testGame{Game: g, feedback: fb, store: store}
}
