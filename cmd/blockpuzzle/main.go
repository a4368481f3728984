// blockpuzzle is a block placement puzzle for the terminal.
//
// Usage:
//
//	blockpuzzle play          - Play (or resume) a game
//	blockpuzzle serve         - Start SSH server for remote play
//	blockpuzzle scores        - Show high scores and player stats
//	blockpuzzle pieces        - List the piece catalog
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible piece draws
//	--db <path>          - Set database path (default: ~/.blockpuzzle/blockpuzzle.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where play writes its log (the screen belongs to the game)
//
// Every global flag may also be set through a BLOCKPUZZLE_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// envDefaults is resolved before any init so flag defaults can use it.
var envDefaults, envErr = loadEnvDefaults()

func loadEnvDefaults() (config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Env{
			DBPath:   "~/.blockpuzzle/blockpuzzle.db",
			LogLevel: "info",
			LogFile:  "~/.blockpuzzle/blockpuzzle.log",
		}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockpuzzle",
	Short: "Block Puzzle - Fit pieces, clear lines",
	Long: `Block Puzzle is a terminal block placement game. Drag pieces from the
three slots onto the board, complete rows and columns to clear them, and
keep a spare piece in the parking slot.

Available commands:
  play     - Play or resume your saved game
  serve    - Start SSH server for remote play
  scores   - View high scores
  pieces   - Show the piece catalog

Examples:
  blockpuzzle play
  blockpuzzle play --difficulty hard
  blockpuzzle serve --ssh :2222
  blockpuzzle scores --tui`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if envErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", envErr)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to scores and saved games database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envDefaults.LogFile, "Log file used while playing")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(piecesCmd)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the --log-file for appending. An empty path discards logs.
func openLogFile() (io.WriteCloser, error) {
	if flagLogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadConfig reads the puzzle config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.BlockPuzzleConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.BlockPuzzleConfig{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.BlockPuzzleConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
