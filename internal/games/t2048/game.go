package t2048

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TickInterval is the amount of time one Tick accounts for.
const TickInterval = time.Second

// Options configures a Game. Zero fields take the package defaults.
type Options struct {
	Mode            Mode
	Size            int
	WinTile         int
	Spawn4          float64
	HistoryCapacity int
}

// DefaultOptions returns classic rules on a 4x4 board.
func DefaultOptions() Options {
	return Options{
		Mode:            Classic(),
		Size:            BoardSize,
		WinTile:         DefaultWinTile,
		Spawn4:          DefaultSpawn4,
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Size < MinBoardSize {
		o.Size = d.Size
	}
	if o.WinTile < 2 {
		o.WinTile = d.WinTile
	}
	if o.Spawn4 < 0 || o.Spawn4 > 1 {
		o.Spawn4 = d.Spawn4
	}
	if o.HistoryCapacity < 1 {
		o.HistoryCapacity = d.HistoryCapacity
	}
	return o
}

// Game owns one 2048 session: the board, score, status, undo history and timers.
// It is single-writer and never blocks; time advances only through Tick.
type Game struct {
	opts    Options
	spawner *Spawner
	history *History

	session    string
	mode       Mode
	grid       Grid
	score      int
	moves      int
	status     Status
	winTile    int
	winReached bool
	sessionMax int
	remaining  time.Duration
	elapsed    time.Duration

	hint    Direction
	hasHint bool

	listeners []core.Listener
}

// NewGame creates a game and starts its first session.
func NewGame(opts Options, src Source) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:    opts,
		spawner: NewSpawner(src, opts.Spawn4),
		history: NewHistory(opts.HistoryCapacity),
		winTile: opts.WinTile,
	}
	g.Reset(opts.Mode, opts.Size)
	return g
}

// Subscribe registers a listener. Listeners are called in registration order.
func (g *Game) Subscribe(l core.Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Reset starts a new session on an empty size×size board with two spawned tiles.
// A size below MinBoardSize falls back to the configured size.
func (g *Game) Reset(mode Mode, size int) {
	if size < MinBoardSize {
		size = g.opts.Size
	}

	g.session = uuid.NewString()
	g.mode = mode
	g.grid = NewGrid(size)
	g.score = 0
	g.moves = 0
	g.status = StatusInProgress
	g.winReached = false
	g.elapsed = 0
	g.remaining = 0
	if mode.Kind == ModeTimeAttack {
		g.remaining = mode.TimeLimit
	}
	g.hasHint = false

	g.spawner.Spawn(&g.grid)
	g.spawner.Spawn(&g.grid)
	g.sessionMax = g.grid.MaxTile()

	g.history.Clear()
	g.pushHistory()
}

// Move slides the board in dir. It returns false when the game is over,
// the direction is invalid, or nothing on the board would move.
func (g *Game) Move(dir Direction) bool {
	if g.status.Terminal() || !dir.Valid() {
		return false
	}

	res := Apply(g.grid, dir)
	if !res.Moved {
		return false
	}

	g.grid = res.Grid
	g.score += res.Gained
	g.moves++
	g.hasHint = false
	g.spawner.Spawn(&g.grid)

	g.evaluate()
	g.pushHistory()
	return true
}

// evaluate checks milestones and terminal conditions after a move.
func (g *Game) evaluate() {
	if maxTile := g.grid.MaxTile(); maxTile > g.sessionMax {
		g.sessionMax = maxTile
		g.emit(core.Event{Kind: core.EventTileReached, Value: maxTile})
	}

	if g.mode.Kind == ModeTarget && g.score >= g.mode.Target {
		g.status = StatusWon
	}

	if !g.winReached && g.grid.Contains(g.winTile) {
		g.winReached = true
		g.emit(core.Event{Kind: core.EventWinTileReached, Value: g.winTile})
	}

	if g.status == StatusInProgress && IsGameOver(g.grid) {
		g.status = StatusLost
	}

	if g.status.Terminal() {
		g.emitEnded()
	}
}

// Undo restores the previous snapshot. It is a no-op on a finished game
// or when there is nothing to go back to. Events are not re-emitted.
func (g *Game) Undo() bool {
	if g.status.Terminal() {
		return false
	}

	snap, ok := g.history.Undo()
	if !ok {
		return false
	}

	g.grid = snap.Grid
	g.score = snap.Score
	g.moves = snap.Moves
	g.hasHint = false
	return true
}

// Hint computes the suggested direction and keeps it for display until the next move.
// It only looks at the board, so a finished game that can still slide gets a hint too.
func (g *Game) Hint() (Direction, bool) {
	dir, ok := Suggest(g.grid)
	g.hint, g.hasHint = dir, ok
	return dir, ok
}

// Tick advances session time by one TickInterval.
// In time attack it counts down and ends the game when the clock runs out.
func (g *Game) Tick() {
	if g.status.Terminal() {
		return
	}

	g.elapsed += TickInterval

	if g.mode.Kind != ModeTimeAttack {
		return
	}

	g.remaining -= TickInterval
	if g.remaining <= 0 {
		g.remaining = 0
		g.status = StatusTimeExpired
		g.emitEnded()
	}
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.grid.Clone()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Session returns the current session id.
func (g *Game) Session() string {
	return g.session
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) pushHistory() {
	g.history.Push(Snapshot{Grid: g.grid, Score: g.score, Moves: g.moves})
}

func (g *Game) emitEnded() {
	g.emit(core.Event{
		Kind:      core.EventGameEnded,
		Won:       g.status.Won(),
		Status:    string(g.status),
		Score:     g.score,
		Moves:     g.moves,
		MaxTile:   g.grid.MaxTile(),
		BoardSize: g.grid.Size(),
		Elapsed:   g.elapsed,
	})
}

func (g *Game) emit(ev core.Event) {
	ev.Session = g.session
	ev.GameID = g.mode.ID()
	for _, l := range g.listeners {
		l.OnEvent(ev)
	}
}
