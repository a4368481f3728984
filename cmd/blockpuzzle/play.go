package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
	"github.com/vovakirdan/tui-blockpuzzle/internal/platform/tui"
	"github.com/vovakirdan/tui-blockpuzzle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagProfile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play or resume a game",
	Long: `Start playing. An unfinished game saved for the profile is resumed.

Controls:
  Arrows/hjkl   - Move the board cursor
  1/2/3, 0      - Select a slot (0 is the parking slot)
  Enter/Space   - Place the selected piece at the cursor
  X             - Park the selected piece
  R             - Toggle rotating mode (then 1/2/3/0 rotate)
  N             - New game
  Tab           - High scores
  Q/Ctrl+C      - Quit
  Mouse         - Drag a piece from a slot onto the board or parking slot

Difficulty options:
  easy   - Start with few heavy pieces, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  blockpuzzle play
  blockpuzzle play --difficulty hard
  blockpuzzle play --profile alice
  blockpuzzle play --config ./my-puzzle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom puzzle config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProfile, "profile", defaultProfile(), "Save slot and score name")
}

// defaultProfile names the save slot after the OS user.
func defaultProfile() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "default"
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "blockpuzzle")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open the store (optional, continue without saving on error)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Games and scores will not be saved.")
		logger.Warn("storage unavailable", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "profile", flagProfile, "blocks", cfg.Board.Blocks, "seed", flagSeed)

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
			Profile: flagProfile,
		},
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
