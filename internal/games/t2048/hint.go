package t2048

// Suggest picks the direction whose result scores best on
// empty cells * 100 + max tile. Ties go to the earlier direction in
// Directions order. Returns false when no direction changes the board.
func Suggest(g Grid) (Direction, bool) {
	best := Direction(0)
	bestScore := -1
	found := false

	for _, dir := range Directions() {
		res := Apply(g, dir)
		if !res.Moved {
			continue
		}
		score := res.Grid.EmptyCount()*100 + res.Grid.MaxTile()
		if score > bestScore {
			best = dir
			bestScore = score
			found = true
		}
	}

	return best, found
}
