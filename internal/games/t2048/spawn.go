package t2048

import "math/rand"

// DefaultFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.10

// Spawner places new tiles on random empty cells.
type Spawner struct {
	rng             *rand.Rand
	FourProbability float64
}

// NewSpawner creates a spawner with its own deterministic RNG.
func NewSpawner(seed int64, fourProbability float64) *Spawner {
	return &Spawner{
		rng:             rand.New(rand.NewSource(seed)),
		FourProbability: fourProbability,
	}
}

// Value draws the value of the next tile: 2, or 4 with FourProbability.
func (s *Spawner) Value() int {
	if s.rng.Float64() < s.FourProbability {
		return 4
	}
	return 2
}

// Spawn inserts one new tile. It returns ErrBoardFull when no cell is free.
func (s *Spawner) Spawn(b *Board, l Layout) (*Tile, error) {
	row, col, err := b.RandomEmptyCell(s.rng)
	if err != nil {
		return nil, err
	}
	t := NewTile(s.Value(), row, col, l)
	if err := b.Insert(t); err != nil {
		return nil, err
	}
	return t, nil
}
