package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource replays fixed random values. Exhausted ints yield 0, exhausted floats yield 0.5.
type scriptSource struct {
	ints   []int
	floats []float64
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestSpawnPicksEmptyCell(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0},
		{4, 0},
	})
	sp := NewSpawner(&scriptSource{ints: []int{1}, floats: []float64{0.95}}, 0.10)

	cell, ok := sp.Spawn(&g)

	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 1}, cell)
	assert.Equal(t, 2, g.Get(1, 1))
	assert.Equal(t, 0, g.Get(0, 1))
}

func TestSpawnFour(t *testing.T) {
	g := NewGrid(2)
	sp := NewSpawner(&scriptSource{floats: []float64{0.05}}, 0.10)

	cell, ok := sp.Spawn(&g)

	require.True(t, ok)
	assert.Equal(t, 4, g.Get(cell.Row, cell.Col))
}

func TestSpawnFullGridIsNoop(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4},
		{8, 16},
	})
	before := g.Clone()

	_, ok := NewSpawner(rand.New(rand.NewSource(1)), 0.10).Spawn(&g)

	assert.False(t, ok)
	assert.True(t, g.Equal(before))
}

func TestSpawnDistribution(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(42)), 0.10)
	fours := 0
	const trials = 10000

	for range trials {
		g := NewGrid(4)
		cell, ok := sp.Spawn(&g)
		require.True(t, ok)
		switch v := g.Get(cell.Row, cell.Col); v {
		case 4:
			fours++
		case 2:
		default:
			t.Fatalf("spawned %d", v)
		}
	}

	assert.InDelta(t, 0.10, float64(fours)/trials, 0.02)
}

func TestNewSpawnerClampsProbability(t *testing.T) {
	assert.Equal(t, DefaultSpawn4, NewSpawner(nil, 1.5).Spawn4)
	assert.Equal(t, DefaultSpawn4, NewSpawner(nil, -0.1).Spawn4)
	assert.Equal(t, 0.25, NewSpawner(nil, 0.25).Spawn4)
}
