package t2048

// MoveResult is the outcome of applying a direction to a grid.
// Grid is always a fresh copy and never aliases the input.
type MoveResult struct {
	Grid   Grid
	Moved  bool
	Gained int
}

// SlideLine slides and merges a single line toward index 0.
// Returns a new line of the same length and the score gained from merges.
// A tile produced by a merge never merges again in the same pass.
func SlideLine(line []int) (out []int, gained int) {
	out = make([]int, len(line))
	writePos := 0
	mergeable := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if mergeable && out[writePos-1] == v {
			out[writePos-1] *= 2
			gained += out[writePos-1]
			mergeable = false
			continue
		}

		out[writePos] = v
		writePos++
		mergeable = true
	}

	return out, gained
}

// Apply performs a move in the given direction without touching g.
func Apply(g Grid, dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{Grid: g.Clone()}
	}

	n := g.Size()
	next := NewGrid(n)
	line := make([]int, n)
	res := MoveResult{Grid: next}

	for l := range n {
		for k := range n {
			r, c := dir.cell(n, l, k)
			line[k] = g.Get(r, c)
		}

		slid, gained := SlideLine(line)
		res.Gained += gained

		for k, v := range slid {
			if v != line[k] {
				res.Moved = true
			}
			r, c := dir.cell(n, l, k)
			next.Set(r, c, v)
		}
	}

	return res
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(g Grid) bool {
	return !g.CanMove()
}
