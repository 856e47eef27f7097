package t2048

// DefaultSpawn4 is the probability of spawning a 4 instead of a 2.
const DefaultSpawn4 = 0.10

// Source is the randomness a Spawner draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on empty cells.
type Spawner struct {
	Src    Source
	Spawn4 float64
}

// NewSpawner returns a spawner with the given 4-tile probability.
// Probabilities outside [0, 1] fall back to DefaultSpawn4.
func NewSpawner(src Source, spawn4 float64) *Spawner {
	if spawn4 < 0 || spawn4 > 1 {
		spawn4 = DefaultSpawn4
	}
	return &Spawner{Src: src, Spawn4: spawn4}
}

// Spawn puts a 2 or a 4 on a uniformly chosen empty cell.
// On a full grid it does nothing and returns false.
func (s *Spawner) Spawn(g *Grid) (Cell, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[s.Src.Intn(len(empty))]

	value := 2
	if s.Src.Float64() < s.Spawn4 {
		value = 4
	}

	g.Set(cell.Row, cell.Col, value)
	return cell, true
}
