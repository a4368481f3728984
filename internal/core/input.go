package core

// Action represents a semantic puzzle action, abstracted from physical keys
// and mouse buttons. The platform maps input to actions; the puzzle view
// never sees raw key names.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move cursor up
	ActionDown               // Down arrow, j - move cursor down
	ActionLeft               // Left arrow, h - move cursor left
	ActionRight              // Right arrow, l - move cursor right
	ActionSelect1            // 1 - select (or rotate) slot 1
	ActionSelect2            // 2 - select (or rotate) slot 2
	ActionSelect3            // 3 - select (or rotate) slot 3
	ActionSelectParking      // 0 - select the parking slot
	ActionPlace              // Enter, Space - place selected piece at cursor
	ActionPark               // x - move selected piece to parking
	ActionToggleRotate       // r - toggle rotating mode
	ActionNewGame            // n - start a new game
	ActionConfirm            // y - confirm dialog
	ActionCancel             // Esc - cancel dialog / deselect
	ActionScores             // Tab - show high scores
	ActionQuit               // q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionSelectParking:
		return "SelectParking"
	case ActionPlace:
		return "Place"
	case ActionPark:
		return "Park"
	case ActionToggleRotate:
		return "ToggleRotate"
	case ActionNewGame:
		return "NewGame"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SlotIndex returns the slot index a selection action refers to.
// Slots are 1, 2, 3 and -1 for parking; ok is false for other actions.
func (a Action) SlotIndex() (index int, ok bool) {
	switch a {
	case ActionSelect1:
		return 1, true
	case ActionSelect2:
		return 2, true
	case ActionSelect3:
		return 3, true
	case ActionSelectParking:
		return -1, true
	}
	return 0, false
}
