// Package tui provides the Bubble Tea integration for the block puzzle.
// It handles the terminal UI loop, input mapping, and animations.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clear-flash animation timing.
const (
	flashRate   = 12 // Frames per second
	flashFrames = 6  // Frames per cleared-lines flash
)

// TickMsg is sent to advance the clear-flash animation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// flash tracks the cleared-lines animation. The game clears lines at once;
// the animation only paints over cells that are already empty.
type flash struct {
	rows, cols []int
	frames     int
}

func (f flash) active() bool {
	return f.frames > 0
}

// lit reports whether the flash paints cell (x, y) in the current frame.
func (f flash) lit(x, y int) bool {
	if f.frames%2 == 0 {
		return false
	}
	for _, r := range f.rows {
		if r == y {
			return true
		}
	}
	for _, c := range f.cols {
		if c == x {
			return true
		}
	}
	return false
}
