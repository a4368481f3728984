package puzzle

// Feedback is notified of events the player should notice. The game never
// depends on anything a Feedback does.
type Feedback interface {
	MoveImpossible()
	LinesCleared(out ClearOutcome)
	GameOver(score int)
	PersistenceFailed(err error)
}

// NopFeedback ignores all notifications.
type NopFeedback struct{}

func (NopFeedback) MoveImpossible() {}
func (NopFeedback) LinesCleared(ClearOutcome) {}
func (NopFeedback) GameOver(int) {}
func (NopFeedback) PersistenceFailed(error) {}

// Persistence stores the running game between sessions.
// Load returns ok=false when nothing has been saved yet.
type Persistence interface {
	Save(s Snapshot) error
	Load() (s Snapshot, ok bool, err error)
}
