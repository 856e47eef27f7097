package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the default board dimension.
const BoardSize = 4

// MinBoardSize is the smallest playable board.
const MinBoardSize = 2

// ErrInvalidGrid is returned when a grid breaks the board invariants.
var ErrInvalidGrid = errors.New("t2048: invalid grid")

// Direction represents a move direction.
// The declaration order is the hint tie-break order.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions returns all directions in canonical order.
func Directions() []Direction {
	return []Direction{DirLeft, DirRight, DirUp, DirDown}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Arrow returns a one-rune arrow for HUD display.
func (d Direction) Arrow() string {
	switch d {
	case DirLeft:
		return "←"
	case DirRight:
		return "→"
	case DirUp:
		return "↑"
	case DirDown:
		return "↓"
	default:
		return "·"
	}
}

// ParseDirection accepts direction names and WASD letters.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "a", "l":
		return DirLeft, true
	case "right", "d", "r":
		return DirRight, true
	case "up", "w", "u":
		return DirUp, true
	case "down", "s":
		return DirDown, true
	default:
		return 0, false
	}
}

// cell maps the k-th element of line `line`, in travel order, to board coordinates.
// k = 0 is the edge tiles slide toward. Extraction and write-back share this mapping.
func (d Direction) cell(n, line, k int) (row, col int) {
	switch d {
	case DirRight:
		return line, n - 1 - k
	case DirUp:
		return k, line
	case DirDown:
		return n - 1 - k, line
	default:
		return line, k
	}
}

// Cell identifies a board position.
type Cell struct {
	Row, Col int
}

// Grid is an NxN board stored row-major. Zero means empty.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an empty n×n grid.
func NewGrid(n int) Grid {
	if n < 0 {
		n = 0
	}
	return Grid{size: n, cells: make([]int, n*n)}
}

// GridFromRows builds a grid from rows and validates it.
func GridFromRows(rows [][]int) (Grid, error) {
	n := len(rows)
	g := NewGrid(n)
	for r, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), n)
		}
		copy(g.cells[r*n:], row)
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.size
}

// Get returns the value at (row, col). Out-of-range positions read as 0.
func (g Grid) Get(row, col int) int {
	if row < 0 || col < 0 || row >= g.size || col >= g.size {
		return 0
	}
	return g.cells[row*g.size+col]
}

// Set writes value at (row, col). Out-of-range positions are ignored.
func (g Grid) Set(row, col, value int) {
	if row < 0 || col < 0 || row >= g.size || col >= g.size {
		return
	}
	g.cells[row*g.size+col] = value
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []int {
	out := make([]int, g.size)
	if r >= 0 && r < g.size {
		copy(out, g.cells[r*g.size:(r+1)*g.size])
	}
	return out
}

// Rows returns a deep copy of the board as rows.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := Grid{size: g.size, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	count := 0
	for _, v := range g.cells {
		if v == 0 {
			count++
		}
	}
	return count
}

// IsFull returns true if there is no empty cell.
func (g Grid) IsFull() bool {
	return g.EmptyCount() == 0
}

// MaxTile returns the maximum tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Contains reports whether any cell holds value.
func (g Grid) Contains(value int) bool {
	for _, v := range g.cells {
		if v == value {
			return true
		}
	}
	return false
}

// HasMerge returns true if any horizontally or vertically adjacent tiles are equal and non-empty.
func (g Grid) HasMerge() bool {
	n := g.size
	for r := range n {
		for c := range n {
			val := g.Get(r, c)
			if val == 0 {
				continue
			}
			if c < n-1 && g.Get(r, c+1) == val {
				return true
			}
			if r < n-1 && g.Get(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func (g Grid) CanMove() bool {
	return !g.IsFull() || g.HasMerge()
}

// Validate checks the board invariants: N >= 2 and every tile is 0 or a power of two >= 2.
func (g Grid) Validate() error {
	if g.size < MinBoardSize {
		return fmt.Errorf("%w: size %d below %d", ErrInvalidGrid, g.size, MinBoardSize)
	}
	for i, v := range g.cells {
		if v == 0 {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, i/g.size, i%g.size, v)
		}
	}
	return nil
}

// String renders the board as a plain text table.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.MaxTile()))
	if width < 4 {
		width = 4
	}

	sep := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", g.size) + "\n"

	var sb strings.Builder
	sb.WriteString(sep)
	for r := range g.size {
		sb.WriteString("|")
		for c := range g.size {
			v := g.Get(r, c)
			if v == 0 {
				fmt.Fprintf(&sb, " %*s |", width, ".")
			} else {
				fmt.Fprintf(&sb, " %*d |", width, v)
			}
		}
		sb.WriteString("\n")
		sb.WriteString(sep)
	}
	return sb.String()
}
