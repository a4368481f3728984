package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
	"github.com/vovakirdan/tui-blockpuzzle/internal/puzzle"
)

// Layout constants. Board cells are two columns wide so they look square.
const (
	cellW      = 2
	slotCells  = 5 // Largest piece extent a slot can show
	headerRows = 2
	slotGap    = 1
)

// layout places the board, the slots and the text rows on screen.
type layout struct {
	frame  core.Rect    // Board frame
	board  core.Rect    // Board cells inside the frame
	slots  [4]core.Rect // Slot boxes in puzzle.SlotIndices order
	left   int          // Left edge of the content
	width  int          // Content width
	status int          // Status line row
}

func newLayout(screenW, blocks int) layout {
	frameW := blocks*cellW + 2
	slotW := slotCells*cellW + 2
	slotH := slotCells + 2
	slotsW := len(puzzle.SlotIndices)*slotW + (len(puzzle.SlotIndices)-1)*slotGap

	var l layout
	l.width = core.Max(frameW, slotsW)
	l.left = core.Max(0, (screenW-l.width)/2)

	l.frame = core.NewRect(l.left+(l.width-frameW)/2, headerRows, frameW, blocks+2)
	l.board = l.frame.Inset(1)

	slotX := l.left + (l.width-slotsW)/2
	for i := range l.slots {
		l.slots[i] = core.NewRect(slotX+i*(slotW+slotGap), l.frame.Bottom(), slotW, slotH)
	}
	l.status = l.frame.Bottom() + slotH
	return l
}

// height returns the number of rows the layout needs.
func (l layout) height() int {
	return l.status + 1
}

// cellAt maps a screen position to the board cell under it.
func (l layout) cellAt(x, y int) (puzzle.Position, bool) {
	if !l.board.Contains(x, y) {
		return puzzle.Position{}, false
	}
	lx, ly := l.board.Local(x, y)
	return puzzle.P(lx/cellW, ly), true
}

// slotAt maps a screen position to the slot index under it.
func (l layout) slotAt(x, y int) (int, bool) {
	for i, r := range l.slots {
		if r.Contains(x, y) {
			return puzzle.SlotIndices[i], true
		}
	}
	return 0, false
}

// rawPointer converts a screen position into resolver units: one unit per
// column horizontally and two per row vertically, with the board's top-left
// corner at the origin.
func (l layout) rawPointer(x, y int) puzzle.PointF {
	lx, ly := l.board.Local(x, y)
	return puzzle.PointF{X: float64(lx), Y: float64(ly * cellW)}
}

// draw renders the whole puzzle screen into m.screen.
func (m GameModel) draw(l layout) {
	s := m.screen
	s.Clear()
	status := m.game.Status()

	m.drawHeader(l, status)

	frameColor := core.ColorGray
	if status.Rotating {
		frameColor = core.ColorCyan
	}
	s.DrawBox(l.frame, frameColor)
	m.drawBoard(l)
	m.drawPreview(l)

	for i, index := range puzzle.SlotIndices {
		m.drawSlot(l.slots[i], index)
	}

	switch {
	case m.confirming:
		s.DrawTextColor(l.left, l.status, fmt.Sprintf("Start a new game and lose %d points? (y/n)", status.Score), core.ColorYellow)
	case m.fb.status.text != "":
		s.DrawTextColor(l.left, l.status, m.fb.status.text, m.fb.status.color)
	}
}

func (m GameModel) drawHeader(l layout, status puzzle.Status) {
	s := m.screen
	title := "BLOCK PUZZLE"
	titleColor := core.ColorCyan
	if status.GameOver {
		title = "GAME OVER"
		titleColor = core.ColorRed
	}
	s.DrawTextColor(l.left, 0, title, titleColor)

	score := fmt.Sprintf("Score %d", status.Score)
	if status.LastDelta != 0 && !status.GameOver {
		score += fmt.Sprintf(" (%+d)", status.LastDelta)
	}
	s.DrawTextColor(l.left+l.width-len(score), 0, score, core.ColorWhite)

	info := fmt.Sprintf("Moves %d  Best %d", status.Moves, core.Max(m.best, status.Score))
	if m.selected != 0 && !status.GameOver {
		info += fmt.Sprintf("  Fits %d", m.game.Fits(m.selected))
	}
	s.DrawTextColor(l.left, 1, info, core.ColorGray)
	if status.Rotating {
		mode := "ROTATING"
		s.DrawTextColor(l.left+l.width-len(mode), 1, mode, core.ColorCyan)
	}
}

func (m GameModel) drawBoard(l layout) {
	for y := range m.game.Blocks() {
		for x := range m.game.Blocks() {
			sx, sy := l.board.X+x*cellW, l.board.Y+y
			switch c := m.game.Cell(x, y); {
			case m.flash.active() && m.flash.lit(x, y):
				m.screen.DrawTextColor(sx, sy, "▓▓", core.ColorWhite)
			case c != puzzle.Empty:
				m.screen.DrawTextColor(sx, sy, "██", core.Color(c))
			default:
				m.screen.DrawTextColor(sx, sy, " ·", core.ColorDim)
			}
		}
	}
}

// drawPreview paints the selected piece where a drop would put it, or the
// keyboard cursor when nothing is selected.
func (m GameModel) drawPreview(l layout) {
	if m.game.GameOver() || m.game.Rotating() {
		return
	}

	target, ok := m.target(l)
	if !ok {
		return
	}
	piece, ok := m.game.Slot(m.selected)
	if !ok {
		if !m.drag.active {
			m.screen.DrawTextColor(l.board.X+target.X*cellW, l.board.Y+target.Y, "[]", core.ColorWhite)
		}
		return
	}

	color := piece.Color
	if m.game.Check(m.selected, target) != puzzle.Accepted {
		color = core.ColorRed
	}
	for _, c := range piece.Cells() {
		p := target.Add(c)
		if p.X < 0 || p.Y < 0 || p.X >= m.game.Blocks() || p.Y >= m.game.Blocks() {
			continue
		}
		m.screen.DrawTextColor(l.board.X+p.X*cellW, l.board.Y+p.Y, "▒▒", color)
	}
}

func (m GameModel) drawSlot(r core.Rect, index int) {
	s := m.screen
	boxColor := core.ColorGray
	if index == m.selected {
		boxColor = core.ColorWhite
	}
	s.DrawBox(r, boxColor)

	label := fmt.Sprintf(" %d ", index)
	if index == puzzle.ParkingIndex {
		label = " P "
	}
	s.DrawTextColor(r.X+1, r.Y, label, boxColor)

	piece, ok := m.game.Slot(index)
	if !ok {
		return
	}
	color := piece.Color
	if !m.game.Playable(index) {
		color = core.ColorDim
	}
	box := piece.Box()
	inner := r.Inset(1)
	ox := inner.X + (slotCells-box.Width())/2*cellW
	oy := inner.Y + (slotCells-box.Height())/2
	for _, c := range piece.Cells() {
		s.DrawTextColor(ox+c.X*cellW, oy+c.Y, "██", color)
	}
}
