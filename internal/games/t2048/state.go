package t2048

import "time"

// Status is the lifecycle state of a session.
type Status string

const (
	StatusInProgress  Status = "in_progress"
	StatusWon         Status = "won"
	StatusLost        Status = "lost"
	StatusTimeExpired Status = "time_expired"
)

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

// Won reports whether the status counts as a win in stats.
func (s Status) Won() bool {
	return s == StatusWon
}

// State is a read-only view of a game for renderers and tests.
type State struct {
	Session    string
	Mode       Mode
	Grid       Grid
	Score      int
	Moves      int
	Status     Status
	MaxTile    int
	WinTile    int
	WinReached bool
	Remaining  time.Duration // TimeAttack only
	Elapsed    time.Duration
	CanUndo    bool
	Hint       Direction
	HasHint    bool
}

// State returns a copy-safe view of the current game.
func (g *Game) State() State {
	return State{
		Session:    g.session,
		Mode:       g.mode,
		Grid:       g.grid.Clone(),
		Score:      g.score,
		Moves:      g.moves,
		Status:     g.status,
		MaxTile:    g.grid.MaxTile(),
		WinTile:    g.winTile,
		WinReached: g.winReached,
		Remaining:  g.remaining,
		Elapsed:    g.elapsed,
		CanUndo:    !g.status.Terminal() && g.history.CanUndo(),
		Hint:       g.hint,
		HasHint:    g.hasHint,
	}
}
