package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
	"github.com/vovakirdan/tui-blockpuzzle/internal/puzzle"
)

// statusLine is the one-line message under the board.
type statusLine struct {
	text  string
	color core.Color
}

// feedback collects puzzle notifications during one Update call.
// The model drains it after each gesture.
type feedback struct {
	status  statusLine
	flash   flash
	flashed bool // A new flash started since the last drain
}

func (f *feedback) MoveImpossible() {
	f.status = statusLine{text: "Move impossible", color: core.ColorRed}
}

func (f *feedback) LinesCleared(out puzzle.ClearOutcome) {
	f.flash = flash{rows: out.Rows, cols: out.Cols, frames: flashFrames}
	f.flashed = true

	text := "1 line cleared"
	if n := out.Lines(); n > 1 {
		text = fmt.Sprintf("%d lines cleared", n)
	}
	f.status = statusLine{text: fmt.Sprintf("%s  +%d", text, out.ClearBonus), color: core.ColorYellow}
}

func (f *feedback) GameOver(score int) {
	f.status = statusLine{text: fmt.Sprintf("Game over! Final score %d. Press n for a new game.", score), color: core.ColorRed}
}

func (f *feedback) PersistenceFailed(err error) {
	f.status = statusLine{text: "Could not save game: " + err.Error(), color: core.ColorOrange}
}

func (f *feedback) say(text string, color core.Color) {
	f.status = statusLine{text: text, color: color}
}

func (f *feedback) clear() {
	f.status = statusLine{}
}

// takeFlash returns a flash started since the last call.
func (f *feedback) takeFlash() (flash, bool) {
	if !f.flashed {
		return flash{}, false
	}
	f.flashed = false
	return f.flash, true
}

var _ puzzle.Feedback = (*feedback)(nil)
