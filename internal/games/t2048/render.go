package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 4
)

func boardWidth(size int) int {
	return size*cellWidth + 1
}

func boardHeight(size int) int {
	return size*cellHeight + 1
}

// tileColor maps a tile value to its display color.
func tileColor(v int) core.Color {
	switch {
	case v <= 2:
		return core.ColorWhite
	case v == 4:
		return core.ColorBrightWhite
	case v == 8:
		return core.ColorYellow
	case v == 16:
		return core.ColorOrange
	case v == 32:
		return core.ColorBrightRed
	case v == 64:
		return core.ColorRed
	case v == 128:
		return core.ColorBrightYellow
	case v == 256:
		return core.ColorBrightGreen
	case v == 512:
		return core.ColorGreen
	case v == 1024:
		return core.ColorBrightCyan
	case v == 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

// Render draws the session to the screen.
func (c *Cabinet) Render(dst *core.Screen) {
	dst.Clear()
	if c.game == nil {
		return
	}

	if c.tooSmall {
		c.renderTooSmall(dst)
		return
	}

	size := c.game.grid.Size()
	boardW := boardWidth(size)
	boardH := boardHeight(size)

	boardX := (c.screenW - boardW) / 2
	boardY := hudHeight + 1

	c.renderHUD(dst, boardX, boardW)
	c.renderBoard(dst, boardX, boardY)
	dst.DrawTextColor((c.screenW-len(c.Controls()))/2, boardY+boardH+1, c.Controls(), core.ColorGray)
	c.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (c *Cabinet) renderTooSmall(dst *core.Screen) {
	y := c.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, best, mode info and the current hint.
func (c *Cabinet) renderHUD(dst *core.Screen, boardX, boardW int) {
	st := c.game.State()

	title := st.Mode.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", st.Score))
	best := st.Score
	if c.best > best {
		best = c.best
	}
	bestStr := fmt.Sprintf("Best: %d", best)
	dst.DrawText(boardX+boardW-len(bestStr), 1, bestStr)

	var info string
	switch st.Mode.Kind {
	case ModeTimeAttack:
		info = "Time left: " + formatClock(st.Remaining)
	case ModeTarget:
		info = fmt.Sprintf("Target: %d", st.Mode.Target)
	default:
		info = "Time: " + formatClock(st.Elapsed)
	}
	dst.DrawText(boardX, 2, info)
	movesStr := fmt.Sprintf("Moves: %d", st.Moves)
	dst.DrawText(boardX+boardW-len(movesStr), 2, movesStr)

	if st.HasHint {
		dst.DrawTextColor(boardX, 3, "Hint: "+st.Hint.Arrow()+" "+st.Hint.String(), core.ColorCyan)
	}
	if st.CanUndo {
		undo := "U: undo"
		dst.DrawTextColor(boardX+boardW-len(undo), 3, undo, core.ColorGray)
	}
}

// renderBoard draws the grid lines and tiles.
func (c *Cabinet) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := c.game.grid.Size()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, corner(x, y, size))

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range size {
		for col := range size {
			val := c.game.grid.Get(r, col)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			pad := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + r*cellHeight + 1
			dst.DrawTextColor(cellX+pad, cellY, valStr, tileColor(val))
		}
	}
}

// corner picks the box-drawing rune for grid intersection (x, y).
func corner(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause, win and game-over boxes.
func (c *Cabinet) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2
	st := c.game.State()

	switch {
	case c.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case st.Status == StatusWon:
		drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", st.Score), "Press R to restart")
	case st.Status == StatusTimeExpired:
		drawOverlay(dst, centerX, centerY, "TIME'S UP", fmt.Sprintf("Score: %d", st.Score), "Press R to restart")
	case st.Status == StatusLost:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", st.MaxTile), "Press R to restart")
	case c.banner:
		drawOverlay(dst, centerX, centerY, fmt.Sprintf("You reached %d!", st.WinTile), "Keep going")
	}
}

// drawOverlay draws a centered boxed message.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.CenteredRect(centerX, centerY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (c *Cabinet) Controls() string {
	return "Arrows/WASD: Move | U: Undo | H: Hint | P: Pause | R: Restart | Q: Quit"
}
