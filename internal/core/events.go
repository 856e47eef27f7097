package core

import "time"

// EventKind identifies what happened inside a game.
type EventKind string

const (
	// EventGameEnded fires once when a game reaches a terminal status.
	EventGameEnded EventKind = "game_ended"
	// EventTileReached fires when a move produces a new highest tile for the session.
	EventTileReached EventKind = "tile_reached"
	// EventWinTileReached fires the first time the win tile appears (soft win).
	EventWinTileReached EventKind = "win_tile_reached"
)

// Event is a game lifecycle notification consumed by persistence and UI layers.
// Fields irrelevant to a kind are left zero.
type Event struct {
	Kind      EventKind
	GameID    string // registry ID, e.g. "2048_time"; filled in by the host
	Session   string // unique per played game
	Value     int    // tile value for tile events
	Won       bool
	Status    string
	Score     int
	Moves     int
	MaxTile   int
	BoardSize int
	Elapsed   time.Duration
}

// Listener receives game events synchronously.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(ev Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}
