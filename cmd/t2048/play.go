package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: classic).

Modes:
  classic  - Merge tiles until the board locks
  time     - Score as much as you can before the clock runs out
  target   - Reach the target score

Controls:
  Arrows/WASD  - Slide
  U            - Undo
  H            - Hint
  P/Esc        - Pause
  R            - Restart (paused or after game over)
  B/Esc        - Back (paused or after game over)
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer 4 spawns, deep undo
  normal - Rules from the config file
  hard   - More 4 spawns, a single undo

Examples:
  t2048 play
  t2048 play time
  t2048 play target --difficulty hard
  t2048 play --size 6
  t2048 play --plain
  t2048 play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-based console instead of the full-screen UI")
}

func runPlay(_ *cobra.Command, args []string) {
	modeName := "classic"
	if len(args) > 0 {
		modeName = args[0]
	}

	cfg, err := runtimeConfig()
	if err != nil {
		fatal("%v", err)
	}

	mode, ok := t2048.ParseMode(modeName, cfg.TimeLimit, cfg.TargetScore)
	if !ok {
		fatal("unknown mode %q (run 't2048 list' to see available modes)", modeName)
	}

	logger := newLogger()
	store := openStore(logger)

	if flagPlain {
		err = runPlain(mode, cfg, store, logger)
	} else {
		var game registry.Game
		game, err = registry.Create(mode.ID())
		if err == nil {
			_, err = tui.Run(game, store, cfg, logger)
		}
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if err != nil {
		fatal("%v", err)
	}
}

// runPlain plays mode in the readline console.
func runPlain(mode t2048.Mode, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := t2048.NewGame(t2048.Options{
		Mode:            mode,
		Size:            cfg.BoardSize,
		WinTile:         cfg.WinTile,
		Spawn4:          cfg.Spawn4,
		HistoryCapacity: cfg.HistoryCapacity,
	}, rand.New(rand.NewSource(seed)))
	game.Subscribe(storage.NewRecorder(store, logger))

	return console.Run(game)
}
