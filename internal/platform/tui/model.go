package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blockpuzzle/internal/config"
	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
	"github.com/vovakirdan/tui-blockpuzzle/internal/puzzle"
	"github.com/vovakirdan/tui-blockpuzzle/internal/storage"
)

// Options configures a puzzle screen.
type Options struct {
	Config  config.BlockPuzzleConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; without it nothing is saved
	Logger  *log.Logger
}

// dragState tracks a mouse drag that started on a slot.
type dragState struct {
	active bool
	index  int
	x, y   int // Last pointer position in screen cells
}

// GameModel is the Bubble Tea model for the puzzle screen.
type GameModel struct {
	game     *puzzle.Game
	slot     *storage.GameSlot
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	resolver puzzle.Resolver
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	fb       *feedback
	flash    flash

	cursor     puzzle.Position
	selected   int // Selected slot index, 0 for none
	drag       dragState
	confirming bool
	scoreSaved bool
	best       int
	scoreboard *ScoreboardModel
	quitting   bool
}

// terminalResolver maps mouse positions on the board. One terminal cell is
// two resolver units wide, matching the two-column board cells.
func terminalResolver(cfg config.BlockPuzzleConfig) puzzle.Resolver {
	return puzzle.Resolver{
		Blocks:       cfg.Board.Blocks,
		FieldWidth:   float64(cfg.Board.Blocks * cellW),
		AnchorOffset: cfg.Drag.TerminalAnchorOffset,
	}
}

// NewGameModel creates the puzzle screen and resumes the profile's saved game.
func NewGameModel(opts Options) GameModel {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.Profile == "" {
		rt.Profile = core.DefaultConfig().Profile
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fb := &feedback{}
	m := GameModel{
		store:    opts.Store,
		logger:   logger,
		runtime:  rt,
		resolver: terminalResolver(opts.Config),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		fb:       fb,
	}

	gameOpts := puzzle.Options{
		Config:   opts.Config,
		Seed:     rt.Seed,
		Feedback: fb,
		Logger:   logger,
	}
	if opts.Store != nil {
		m.slot = opts.Store.Slot(rt.Profile)
		gameOpts.Persistence = m.slot
		if best, err := m.slot.HighScore(); err == nil {
			m.best = best
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}

	m.game = puzzle.New(gameOpts)
	m.game.InitGame()
	// A restored finished game was recorded when it ended.
	m.scoreSaved = m.game.GameOver()
	m.cursor = puzzle.P(m.game.Blocks()/2, m.game.Blocks()/2)
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return tea.SetWindowTitle("blockpuzzle")
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.flash.active() {
			return m, nil
		}
		m.flash.frames--
		if m.flash.active() {
			return m, tickCmd(flashRate)
		}
		return m, nil
	}

	return m, nil
}

func (m GameModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	updated, cmd := m.scoreboard.Update(msg)
	sb := updated.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirming {
		m.confirming = false
		if action == core.ActionConfirm {
			m.startNewGame()
		} else {
			m.fb.say("Keep playing", core.ColorGray)
		}
		return m, nil
	}

	return m.apply(action)
}

// apply performs a puzzle action.
func (m GameModel) apply(action core.Action) (tea.Model, tea.Cmd) {
	blocks := m.game.Blocks()

	if index, ok := action.SlotIndex(); ok {
		if m.game.Rotating() {
			return m.rotate(index)
		}
		m.selectSlot(index)
		return m, nil
	}

	switch action {
	case core.ActionUp:
		m.cursor.Y = core.Clamp(m.cursor.Y-1, 0, blocks-1)
	case core.ActionDown:
		m.cursor.Y = core.Clamp(m.cursor.Y+1, 0, blocks-1)
	case core.ActionLeft:
		m.cursor.X = core.Clamp(m.cursor.X-1, 0, blocks-1)
	case core.ActionRight:
		m.cursor.X = core.Clamp(m.cursor.X+1, 0, blocks-1)

	case core.ActionPlace:
		if m.selected == 0 {
			m.fb.say("Select a piece with 1, 2, 3 or 0", core.ColorGray)
			return m, nil
		}
		return m.dispatch(false, m.selected, m.cursor)

	case core.ActionPark:
		if m.selected == 0 {
			return m, nil
		}
		return m.dispatch(true, m.selected, puzzle.Position{})

	case core.ActionToggleRotate:
		m.selected = 0
		if m.game.ToggleRotatingMode() {
			m.fb.say("Rotating mode: press 1, 2, 3 or 0 to rotate", core.ColorCyan)
		} else {
			m.fb.say("Rotating mode off", core.ColorGray)
		}

	case core.ActionNewGame:
		if m.game.NeedsNewGameConfirmation() {
			m.confirming = true
			return m, nil
		}
		m.startNewGame()

	case core.ActionCancel:
		m.selected = 0
		m.drag = dragState{}

	case core.ActionScores:
		sb := NewScoreboardModel(m.store, m.runtime.Profile, m.runtime.ScreenW, m.runtime.ScreenH)
		sb.embedded = true
		m.scoreboard = &sb
		return m, sb.Init()
	}

	return m, nil
}

func (m *GameModel) selectSlot(index int) {
	if m.selected == index {
		m.selected = 0
		return
	}
	if _, ok := m.game.Slot(index); !ok {
		m.fb.say("That slot is empty", core.ColorGray)
		return
	}
	m.selected = index
}

func (m GameModel) rotate(index int) (tea.Model, tea.Cmd) {
	m.fb.clear()
	out, err := m.game.RotateSlot(index)
	if err != nil {
		m.reject(err)
		return m, nil
	}
	return m.finish(out)
}

// dispatch sends a drop gesture to the game and applies its outcome.
func (m GameModel) dispatch(targetIsParking bool, index int, pos puzzle.Position) (tea.Model, tea.Cmd) {
	m.fb.clear()
	out, err := m.game.Dispatch(targetIsParking, index, pos)
	if err != nil {
		m.reject(err)
		return m, nil
	}
	if out.Kind == puzzle.OutcomePlaced || out.Kind == puzzle.OutcomeParked {
		m.selected = 0
	}
	return m.finish(out)
}

// finish runs the bookkeeping shared by every accepted gesture.
func (m GameModel) finish(out puzzle.Outcome) (tea.Model, tea.Cmd) {
	if out.GameOver {
		m.recordScore()
	}
	if f, ok := m.fb.takeFlash(); ok {
		wasActive := m.flash.active()
		m.flash = f
		if !wasActive {
			return m, tickCmd(flashRate)
		}
	}
	return m, nil
}

func (m *GameModel) reject(err error) {
	switch {
	case errors.Is(err, puzzle.ErrGameOver):
		m.fb.say("The game is over. Press n for a new game.", core.ColorRed)
	case errors.Is(err, puzzle.ErrNoPiece):
		m.selected = 0
		m.fb.say("That slot is empty", core.ColorGray)
	default:
		m.logger.Debug("gesture rejected", "error", err)
	}
}

// recordScore adds a finished game to the high score table once.
func (m *GameModel) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	score := m.game.Score()
	m.best = core.Max(m.best, score)
	if m.slot == nil || score == 0 {
		return
	}
	if err := m.slot.RecordScore(score, m.game.Moves()); err != nil {
		m.logger.Warn("could not record score", "error", err)
	}
}

func (m *GameModel) startNewGame() {
	m.game.NewGame()
	m.selected = 0
	m.drag = dragState{}
	m.flash = flash{}
	m.scoreSaved = false
	m.fb.say("New game", core.ColorGreen)
}

// handleMouse implements drag and drop: press on a slot picks the piece up
// (or rotates it in rotating mode), release over the board drops it and
// release over the parking slot parks it.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := newLayout(m.runtime.ScreenW, m.game.Blocks())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if pos, ok := l.cellAt(msg.X, msg.Y); ok {
			// Clicking the board moves the keyboard cursor there.
			m.cursor = pos
			return m, nil
		}
		index, ok := l.slotAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if m.game.Rotating() {
			return m.rotate(index)
		}
		if _, ok := m.game.Slot(index); !ok {
			return m, nil
		}
		m.selected = index
		m.drag = dragState{active: true, index: index, x: msg.X, y: msg.Y}

	case tea.MouseActionMotion:
		if m.drag.active {
			m.drag.x, m.drag.y = msg.X, msg.Y
		}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		drag := m.drag
		m.drag = dragState{}

		if index, ok := l.slotAt(msg.X, msg.Y); ok && index == puzzle.ParkingIndex {
			return m.dispatch(true, drag.index, puzzle.Position{})
		}
		if !l.board.Contains(msg.X, msg.Y) {
			// Dropped elsewhere: the piece stays selected for the keyboard.
			return m, nil
		}
		piece, _ := m.game.Slot(drag.index)
		pos := m.resolver.Resolve(l.rawPointer(msg.X, msg.Y), 1, piece.Box())
		return m.dispatch(false, drag.index, pos)
	}

	return m, nil
}

// target returns the board position a drop would use right now.
func (m GameModel) target(l layout) (puzzle.Position, bool) {
	if !m.drag.active {
		return m.cursor, true
	}
	if !l.board.Contains(m.drag.x, m.drag.y) {
		return puzzle.Position{}, false
	}
	piece, _ := m.game.Slot(m.drag.index)
	return m.resolver.Resolve(l.rawPointer(m.drag.x, m.drag.y), 1, piece.Box()), true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	helpView := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	l := newLayout(m.runtime.ScreenW, m.game.Blocks())
	height := core.Max(l.height(), m.runtime.ScreenH-lipgloss.Height(helpView))
	m.screen.Resize(core.Max(m.runtime.ScreenW, l.width), height)
	m.draw(l)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Game returns the underlying puzzle game.
func (m GameModel) Game() *puzzle.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
