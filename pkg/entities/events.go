package entities

// Event is a symbolic notification emitted by the game for presentation
// collaborators such as sound playback.
type Event string

const (
	EventBet        Event = "bet"
	EventCard       Event = "card"
	EventWin        Event = "win"
	EventLose       Event = "lose"
	EventShuffle    Event = "shuffle"
	EventDoubleDown Event = "doubleDown"
)

// Events lists every event the game can emit
var Events = []Event{EventBet, EventCard, EventWin, EventLose, EventShuffle, EventDoubleDown}

// String returns the string representation of the event
func (e Event) String() string {
	return string(e)
}
