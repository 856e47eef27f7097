// Package console runs 2048 as a line-based game for terminals without
// alternate screen support.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const helpText = `Commands:
  w/a/s/d or up/left/down/right   move
  u, undo                         undo the last move
  h, hint                         suggest a move
  n, new                          start a new game
  help                            show this help
  q, quit                         quit`

// Console drives a Game from text commands.
// Session time is caught up from the clock before every command.
type Console struct {
	game *t2048.Game
	out  io.Writer
	now  func() time.Time
	last time.Time
}

// New returns a console for game writing to out. A nil clock uses time.Now.
func New(game *t2048.Game, out io.Writer, now func() time.Time) *Console {
	if now == nil {
		now = time.Now
	}
	c := &Console{game: game, out: out, now: now, last: now()}
	game.Subscribe(core.ListenerFunc(c.onEvent))
	return c
}

func (c *Console) onEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventWinTileReached:
		fmt.Fprintf(c.out, "You reached %d! Keep going.\n", ev.Value)
	case core.EventGameEnded:
		fmt.Fprintf(c.out, "%s  Score: %d  Max tile: %d  Moves: %d\n",
			endTitle(t2048.Status(ev.Status)), ev.Score, ev.MaxTile, ev.Moves)
	}
}

func endTitle(s t2048.Status) string {
	switch s {
	case t2048.StatusWon:
		return "You win!"
	case t2048.StatusTimeExpired:
		return "Time's up!"
	default:
		return "Game over!"
	}
}

// catchUp feeds one Tick per whole second passed since the last command.
func (c *Console) catchUp() {
	now := c.now()
	for now.Sub(c.last) >= t2048.TickInterval {
		c.last = c.last.Add(t2048.TickInterval)
		c.game.Tick()
	}
}

// Execute runs one command line and reports whether the player quit.
func (c *Console) Execute(line string) (quit bool) {
	c.catchUp()

	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "":
		return false
	case "q", "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(c.out, helpText)
		return false
	case "n", "new":
		c.game.Reset(c.game.Mode(), c.game.Grid().Size())
		c.last = c.now()
	case "u", "undo":
		if !c.game.Undo() {
			fmt.Fprintln(c.out, "Nothing to undo.")
		}
	case "h", "hint":
		if dir, ok := c.game.Hint(); ok {
			fmt.Fprintf(c.out, "Hint: %s %s\n", dir.Arrow(), dir)
		} else {
			fmt.Fprintln(c.out, "No moves left.")
		}
		return false
	default:
		dir, ok := t2048.ParseDirection(cmd)
		if !ok {
			fmt.Fprintf(c.out, "Unknown command %q. Type help for commands.\n", cmd)
			return false
		}
		if c.game.Status().Terminal() {
			fmt.Fprintln(c.out, "The game is over. Type n for a new game or q to quit.")
			return false
		}
		if !c.game.Move(dir) {
			fmt.Fprintln(c.out, "Cannot move in that direction.")
			return false
		}
	}

	c.Render()
	return false
}

// Render prints the board and the status line.
func (c *Console) Render() {
	st := c.game.State()
	fmt.Fprint(c.out, st.Grid.String())

	info := fmt.Sprintf("Score: %d  Moves: %d", st.Score, st.Moves)
	switch st.Mode.Kind {
	case t2048.ModeTimeAttack:
		info += fmt.Sprintf("  Time left: %ds", int(st.Remaining/time.Second))
	case t2048.ModeTarget:
		info += fmt.Sprintf("  Target: %d", st.Mode.Target)
	}
	fmt.Fprintln(c.out, info)
}

// Prompt returns the readline prompt for the current state.
func (c *Console) Prompt() string {
	return fmt.Sprintf("%s [%d]> ", c.game.Mode(), c.game.Score())
}

// Run reads commands from the terminal until the player quits or input ends.
func Run(game *t2048.Game) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".t2048")
		if os.MkdirAll(dir, 0o755) == nil {
			historyFile = filepath.Join(dir, "console_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "2048> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("console: cannot start readline: %w", err)
	}
	defer rl.Close()

	c := New(game, rl.Stdout(), nil)
	fmt.Fprintf(c.out, "=== %s ===\n", game.Mode().Title())
	fmt.Fprintln(c.out, "Type help for commands.")
	c.Render()

	for {
		rl.SetPrompt(c.Prompt())
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("console: read failed: %w", err)
		}
		if c.Execute(line) {
			return nil
		}
	}
}
