package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

func TestSnapshotYAML(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig(),
		catalogPiece(t, "corner"), catalogPiece(t, "line4").RotateN(1), Piece{}, catalogPiece(t, "ess"))
	_, err := g.Dispatch(false, 1, P(0, 0))
	require.NoError(t, err)
	g.ToggleRotatingMode()

	data, err := yaml.Marshal(g.Snapshot())
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	resumed := New(Options{Config: config.DefaultConfig()})
	require.NoError(t, resumed.Restore(decoded))
	assert.Equal(t, g.Snapshot(), resumed.Snapshot())

	p, ok := resumed.Slot(2)
	require.True(t, ok)
	assert.Equal(t, []string{"#", "#", "#", "#"}, p.Rows())
	assert.True(t, resumed.Rotating())
	assert.Equal(t, g.Cell(0, 0), resumed.Cell(0, 0))
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	valid := newTestGame(t, config.DefaultConfig()).Snapshot()

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{"wrong board size", func(s *Snapshot) { s.Blocks = 8 }},
		{"short board", func(s *Snapshot) { s.Board = s.Board[:9] }},
		{"bad cell", func(s *Snapshot) { s.Board[0] = "#........." }},
		{"unknown slot", func(s *Snapshot) { s.Slots[0].Index = 5 }},
		{"unknown piece", func(s *Snapshot) { s.Slots[0].PieceID = 999 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Board = append([]string(nil), valid.Board...)
			s.Slots = append([]SlotSnapshot(nil), valid.Slots...)
			tt.mutate(&s)

			g := newTestGame(t, config.DefaultConfig(), catalogPiece(t, "dot"))
			before := g.Snapshot()
			err := g.Restore(s)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Equal(t, before, g.Snapshot(), "failed restore leaves the game unchanged")
		})
	}
}

func TestRestoreRefillsEmptySlots(t *testing.T) {
	empty := make([]string, 10)
	full := make([]string, 10)
	for y := range empty {
		empty[y] = ".........."
		full[y] = "1111111111"
	}

	g := New(Options{Config: config.DefaultConfig(), Seed: 4})
	require.NoError(t, g.Restore(Snapshot{Blocks: 10, Board: empty, Score: 30}))
	for _, index := range []int{1, 2, 3} {
		assert.True(t, g.Playable(index), "slot %d", index)
	}
	assert.False(t, g.GameOver())
	assert.Equal(t, 30, g.Score())
	_, err := g.Dispatch(false, 1, P(0, 0))
	assert.NoError(t, err)

	stuck := New(Options{Config: config.DefaultConfig(), Seed: 4})
	require.NoError(t, stuck.Restore(Snapshot{Blocks: 10, Board: full}))
	assert.True(t, stuck.GameOver(), "nothing fits on a full board")
	_, ok := stuck.Slot(1)
	assert.True(t, ok)
}
