package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blockpuzzle/internal/puzzle"
)

// SaveGame stores the running game of a profile, replacing any earlier save.
func (s *Store) SaveGame(profile string, snap puzzle.Snapshot) error {
	state, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (profile, state, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		profile, string(state),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved game of a profile. ok is false when the profile
// has no save.
func (s *Store) LoadGame(profile string) (snap puzzle.Snapshot, ok bool, err error) {
	var state string
	err = s.db.QueryRow(
		"SELECT state FROM saved_games WHERE profile = ?",
		profile,
	).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return puzzle.Snapshot{}, false, nil
	}
	if err != nil {
		return puzzle.Snapshot{}, false, fmt.Errorf("storage: cannot load game: %w", err)
	}

	if err := yaml.Unmarshal([]byte(state), &snap); err != nil {
		return puzzle.Snapshot{}, false, fmt.Errorf("storage: cannot decode game: %w", err)
	}
	return snap, true, nil
}

// DeleteGame removes the saved game of a profile.
func (s *Store) DeleteGame(profile string) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	return nil
}

// GameSlot persists one profile's running game.
type GameSlot struct {
	store   *Store
	profile string
}

// Slot returns the saved game slot of a profile.
func (s *Store) Slot(profile string) *GameSlot {
	return &GameSlot{store: s, profile: profile}
}

// Profile returns the profile the slot belongs to.
func (g *GameSlot) Profile() string {
	return g.profile
}

// Save implements puzzle.Persistence.
func (g *GameSlot) Save(snap puzzle.Snapshot) error {
	return g.store.SaveGame(g.profile, snap)
}

// Load implements puzzle.Persistence.
func (g *GameSlot) Load() (puzzle.Snapshot, bool, error) {
	return g.store.LoadGame(g.profile)
}

// RecordScore adds the finished game to the high score table.
func (g *GameSlot) RecordScore(score, moves int) error {
	_, err := g.store.SaveScore(g.profile, score, moves)
	return err
}

// HighScore returns the best score of the slot's profile.
func (g *GameSlot) HighScore() (int, error) {
	return g.store.HighScore(g.profile)
}

var _ puzzle.Persistence = (*GameSlot)(nil)
