package core

// Event is a semantic notification emitted by the game for the audio layer
// and other observers. Whether anything reacts has no effect on game state.
type Event int

const (
	EventMove   Event = iota // a tile slid into the gap
	EventSolved              // the puzzle transitioned to solved
	EventHint                // a hint highlight started
	EventClick               // a menu button was pressed
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventMove:
		return "move"
	case EventSolved:
		return "solved"
	case EventHint:
		return "hint"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}
