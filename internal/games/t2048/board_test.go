package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestBoardInsertGetRemove(t *testing.T) {
	l := DefaultLayout()
	b := NewBoard()

	tile := NewTile(2, 1, 2, l)
	if err := b.Insert(tile); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got := b.Get(1, 2); got != tile {
		t.Errorf("Get(1, 2) = %v, want inserted tile", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	err := b.Insert(NewTile(4, 1, 2, l))
	if !errors.Is(err, ErrOccupiedCell) {
		t.Errorf("Insert on taken cell error = %v, want ErrOccupiedCell", err)
	}
	if b.Get(1, 2) != tile {
		t.Error("failed Insert must not replace the existing tile")
	}

	err = b.Insert(NewTile(2, GridSize, 0, l))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Insert outside grid error = %v, want ErrOutOfBounds", err)
	}

	b.Remove(tile)
	if b.Get(1, 2) != nil || b.Len() != 0 {
		t.Error("Remove should unregister the tile")
	}

	// Removing twice, or a tile that never was on the board, is a no-op.
	b.Remove(tile)
	b.Remove(NewTile(2, 0, 0, l))
	if b.Len() != 0 {
		t.Errorf("Len() = %d after redundant removes, want 0", b.Len())
	}

	if b.Get(-1, 0) != nil || b.Get(0, GridSize) != nil {
		t.Error("Get outside the grid should return nil")
	}
}

func TestBoardRelocate(t *testing.T) {
	l := DefaultLayout()
	b := FromValues([GridSize][GridSize]int{
		{2, 4, 0, 0},
	}, l)
	tile := b.Get(0, 0)

	if err := b.relocate(tile, 0, 1); !errors.Is(err, ErrOccupiedCell) {
		t.Fatalf("relocate onto a tile error = %v, want ErrOccupiedCell", err)
	}
	if b.Get(0, 0) != tile || tile.Col != 0 || b.Len() != 2 {
		t.Error("failed relocate should leave the tile where it was")
	}

	if err := b.relocate(tile, 0, 2); err != nil {
		t.Fatalf("relocate() error = %v", err)
	}
	if b.Get(0, 0) != nil || b.Get(0, 2) != tile || b.Len() != 2 {
		t.Error("relocate should move the registration")
	}
}

func TestRandomEmptyCell(t *testing.T) {
	l := DefaultLayout()
	rng := rand.New(rand.NewSource(1))

	b := FromValues([GridSize][GridSize]int{
		{2, 2, 2, 2},
		{2, 0, 2, 2},
		{2, 2, 2, 0},
		{2, 2, 2, 2},
	}, l)

	seen := map[[2]int]int{}
	for range 200 {
		row, col, err := b.RandomEmptyCell(rng)
		if err != nil {
			t.Fatalf("RandomEmptyCell() error = %v", err)
		}
		if b.Get(row, col) != nil {
			t.Fatalf("RandomEmptyCell() = (%d, %d), which is occupied", row, col)
		}
		seen[[2]int{row, col}]++
	}
	if len(seen) != 2 {
		t.Errorf("expected both empty cells to be picked, got %v", seen)
	}

	if err := b.Insert(NewTile(2, 1, 1, l)); err != nil {
		t.Fatal(err)
	}
	if err := b.Insert(NewTile(2, 2, 3, l)); err != nil {
		t.Fatal(err)
	}
	if !b.IsFull() {
		t.Fatal("board should be full")
	}
	if _, _, err := b.RandomEmptyCell(rng); !errors.Is(err, ErrBoardFull) {
		t.Errorf("RandomEmptyCell on full board error = %v, want ErrBoardFull", err)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name   string
		values [GridSize][GridSize]int
		want   bool
	}{
		{
			name:   "empty cells",
			values: [GridSize][GridSize]int{{2, 4}, {4, 2}},
			want:   true,
		},
		{
			name: "full with horizontal pair",
			values: [GridSize][GridSize]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 8, 8},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "full with vertical pair",
			values: [GridSize][GridSize]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 16},
				{4, 2, 4, 16},
			},
			want: true,
		},
		{
			name: "stuck",
			values: [GridSize][GridSize]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromValues(tt.values, DefaultLayout())
			if got := b.CanMove(); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoardAggregates(t *testing.T) {
	b := FromValues([GridSize][GridSize]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 16},
	}, DefaultLayout())

	if b.MaxTile() != 128 {
		t.Errorf("MaxTile() = %d, want 128", b.MaxTile())
	}
	if b.Sum() != 150 {
		t.Errorf("Sum() = %d, want 150", b.Sum())
	}

	tiles := b.Tiles()
	if len(tiles) != 4 || tiles[0].Value != 2 || tiles[3].Value != 16 {
		t.Errorf("Tiles() should be row-major, got %d tiles", len(tiles))
	}

	clone := b.Clone()
	clone.Get(0, 0).Value = 1024
	if b.Get(0, 0).Value != 2 {
		t.Error("Clone should not share tiles with the original")
	}
}

func TestFormatValues(t *testing.T) {
	got := FormatValues([GridSize][GridSize]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
	})
	want := "  2   .   .   .\n" +
		"  . 128   .   .\n" +
		"  .   .   .   .\n" +
		"  .   .   .   ."
	if got != want {
		t.Errorf("FormatValues() =\n%s\nwant\n%s", got, want)
	}
}

func TestTileGeometry(t *testing.T) {
	l := DefaultLayout()
	tile := NewTile(8, 2, 3, l)

	if tile.X != 100+3*150 || tile.Y != 140+2*150 {
		t.Errorf("NewTile pixel = (%d, %d)", tile.X, tile.Y)
	}
	if !tile.Settled(l) {
		t.Error("new tile should be settled")
	}

	tile.Move(-20, 0)
	if tile.Settled(l) {
		t.Error("moved tile should not be settled")
	}
	tile.SetPosition(2, 2, l)
	if !tile.Settled(l) || tile.X != 400 {
		t.Errorf("SetPosition should snap, got x=%d", tile.X)
	}

	ranks := map[int]int{2: 0, 4: 1, 8: 2, 1024: 9, 2048: 10, 1: -1, 0: -1}
	for v, want := range ranks {
		if got := Rank(v); got != want {
			t.Errorf("Rank(%d) = %d, want %d", v, got, want)
		}
	}
}
