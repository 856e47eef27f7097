package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return NewCabinet(ModeClassic)
	})
	registry.Register(IDTimeAttack, func() registry.Game {
		return NewCabinet(ModeTimeAttack)
	})
	registry.Register(IDTarget, func() registry.Game {
		return NewCabinet(ModeTarget)
	})
}

// Cabinet hosts a Game inside the fixed-tick arcade loop.
// It maps actions to moves and turns every TickRate steps into one Game.Tick.
type Cabinet struct {
	kind ModeKind
	game *Game

	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	paused   bool
	tooSmall bool
	banner   bool // soft-win banner, cleared on the next move
	best     int

	listeners []core.Listener
	pending   []core.Event
}

// NewCabinet returns an unstarted cabinet for the given mode. Call Reset before Step.
func NewCabinet(kind ModeKind) *Cabinet {
	return &Cabinet{kind: kind}
}

// ID returns the registry identifier.
func (c *Cabinet) ID() string {
	return c.mode(core.RuntimeConfig{}).ID()
}

// Title returns the display name.
func (c *Cabinet) Title() string {
	return c.mode(core.RuntimeConfig{}).Title()
}

// Game exposes the hosted session. Nil before the first Reset.
func (c *Cabinet) Game() *Game {
	return c.game
}

// Subscribe registers a listener that survives restarts.
func (c *Cabinet) Subscribe(l core.Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
	if c.game != nil {
		c.game.Subscribe(l)
	}
}

// SetBest sets the high score shown in the HUD.
func (c *Cabinet) SetBest(score int) {
	c.best = score
}

func (c *Cabinet) mode(cfg core.RuntimeConfig) Mode {
	switch c.kind {
	case ModeTimeAttack:
		return TimeAttack(cfg.TimeLimit)
	case ModeTarget:
		return TargetScore(cfg.TargetScore)
	default:
		return Classic()
	}
}

// Reset starts a fresh session using the rules in cfg.
func (c *Cabinet) Reset(cfg core.RuntimeConfig) {
	c.tick = 0
	c.tickRate = cfg.TickRate
	if c.tickRate <= 0 {
		c.tickRate = core.DefaultConfig().TickRate
	}
	c.paused = false
	c.banner = false
	c.pending = nil

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c.game = NewGame(Options{
		Mode:            c.mode(cfg),
		Size:            cfg.BoardSize,
		WinTile:         cfg.WinTile,
		Spawn4:          cfg.Spawn4,
		HistoryCapacity: cfg.HistoryCapacity,
	}, rand.New(rand.NewSource(seed)))

	c.game.Subscribe(core.ListenerFunc(c.collect))
	for _, l := range c.listeners {
		c.game.Subscribe(l)
	}

	c.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (c *Cabinet) Resize(w, h int) {
	c.screenW = w
	c.screenH = h
	c.checkScreenSize()
}

func (c *Cabinet) checkScreenSize() {
	size := BoardSize
	if c.game != nil {
		size = c.game.grid.Size()
	}
	minW, minH := boardWidth(size)+4, boardHeight(size)+hudHeight+2
	c.tooSmall = c.screenW < minW || c.screenH < minH
}

func (c *Cabinet) collect(ev core.Event) {
	if ev.Kind == core.EventWinTileReached {
		c.banner = true
	}
	c.pending = append(c.pending, ev)
}

// Step advances the cabinet by one arcade tick.
func (c *Cabinet) Step(in core.InputFrame) core.StepResult {
	c.tick++
	c.pending = nil

	if c.tooSmall {
		return c.result()
	}

	if in.Has(core.ActionPause) {
		c.paused = !c.paused
	}
	if c.paused {
		return c.result()
	}

	if c.tick%uint64(c.tickRate) == 0 {
		c.game.Tick()
	}

	switch {
	case in.Has(core.ActionUndo):
		if c.game.Undo() {
			c.banner = false
		}
	case in.Has(core.ActionHint):
		c.game.Hint()
	default:
		if dir, ok := directionFor(in); ok {
			shown := c.banner
			c.banner = false
			if !c.game.Move(dir) {
				c.banner = shown
			}
		}
	}

	return c.result()
}

// directionFor picks the first direction action present in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (c *Cabinet) result() core.StepResult {
	var events []core.Event
	if len(c.pending) > 0 {
		events = append(events, c.pending...)
	}
	return core.StepResult{State: c.State(), Events: events}
}

// State returns the arcade-level view of the session.
func (c *Cabinet) State() core.GameState {
	if c.game == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    c.game.score,
		GameOver: c.game.status.Terminal(),
		Paused:   c.paused || c.tooSmall,
	}
}
