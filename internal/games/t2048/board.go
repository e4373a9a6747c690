package t2048

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Board maps grid coordinates to tiles. At most one tile occupies a cell.
type Board struct {
	cells [GridSize][GridSize]*Tile
	count int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// FromValues builds a board from a grid of values, 0 meaning empty.
func FromValues(values [GridSize][GridSize]int, l Layout) *Board {
	b := NewBoard()
	for row := range GridSize {
		for col := range GridSize {
			if v := values[row][col]; v != 0 {
				// Cells of a fresh board are free, Insert cannot fail.
				_ = b.Insert(NewTile(v, row, col, l))
			}
		}
	}
	return b
}

func inGrid(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// Get returns the tile at (row, col), or nil.
func (b *Board) Get(row, col int) *Tile {
	if !inGrid(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// Insert registers a tile at its current (row, col).
func (b *Board) Insert(t *Tile) error {
	if !inGrid(t.Row, t.Col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, t.Row, t.Col)
	}
	if b.cells[t.Row][t.Col] != nil {
		return fmt.Errorf("%w: (%d, %d)", ErrOccupiedCell, t.Row, t.Col)
	}
	b.cells[t.Row][t.Col] = t
	b.count++
	return nil
}

// Remove unregisters a tile. It is a no-op if the tile is not on the board.
func (b *Board) Remove(t *Tile) {
	if !b.Contains(t) {
		return
	}
	b.cells[t.Row][t.Col] = nil
	b.count--
}

// Contains reports whether t is registered at its own coordinate.
func (b *Board) Contains(t *Tile) bool {
	return t != nil && inGrid(t.Row, t.Col) && b.cells[t.Row][t.Col] == t
}

// relocate moves a registered tile to another cell.
func (b *Board) relocate(t *Tile, row, col int) error {
	b.Remove(t)
	oldRow, oldCol := t.Row, t.Col
	t.Row, t.Col = row, col
	if err := b.Insert(t); err != nil {
		t.Row, t.Col = oldRow, oldCol
		b.cells[oldRow][oldCol] = t
		b.count++
		return err
	}
	return nil
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return b.count
}

// IsFull returns true iff every cell is occupied.
func (b *Board) IsFull() bool {
	return b.count == CellCount
}

// Tiles returns the tiles in row-major order.
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, b.count)
	for row := range GridSize {
		for col := range GridSize {
			if t := b.cells[row][col]; t != nil {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() [][2]int {
	cells := make([][2]int, 0, CellCount-b.count)
	for row := range GridSize {
		for col := range GridSize {
			if b.cells[row][col] == nil {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

// RandomEmptyCell picks an unoccupied cell uniformly at random.
func (b *Board) RandomEmptyCell(rng *rand.Rand) (row, col int, err error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return 0, 0, ErrBoardFull
	}
	cell := empty[rng.Intn(len(empty))]
	return cell[0], cell[1], nil
}

// HasPossibleMerge returns true if any two adjacent tiles share a value.
func (b *Board) HasPossibleMerge() bool {
	for row := range GridSize {
		for col := range GridSize {
			t := b.cells[row][col]
			if t == nil {
				continue
			}
			if right := b.Get(row, col+1); right != nil && right.Value == t.Value {
				return true
			}
			if below := b.Get(row+1, col); below != nil && below.Value == t.Value {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some direction would change the board.
func (b *Board) CanMove() bool {
	return !b.IsFull() || b.HasPossibleMerge()
}

// MaxTile returns the highest value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.Tiles() {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	sum := 0
	for _, t := range b.Tiles() {
		sum += t.Value
	}
	return sum
}

// Values returns the board as a grid of values, 0 meaning empty.
func (b *Board) Values() [GridSize][GridSize]int {
	var v [GridSize][GridSize]int
	for _, t := range b.Tiles() {
		v[t.Row][t.Col] = t.Value
	}
	return v
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard()
	for _, t := range b.Tiles() {
		cp := *t
		c.cells[cp.Row][cp.Col] = &cp
		c.count++
	}
	return c
}

// Frame returns a render snapshot of the board.
func (b *Board) Frame(l Layout) Frame {
	f := Frame{Layout: l, Tiles: make([]TileView, 0, b.count)}
	for _, t := range b.Tiles() {
		f.Tiles = append(f.Tiles, t.view())
	}
	return f
}

// String formats the board as a plain grid of values, "." for empty cells.
func (b *Board) String() string {
	return FormatValues(b.Values())
}

// FormatValues renders a value grid as right-aligned columns.
func FormatValues(values [GridSize][GridSize]int) string {
	width := 1
	for _, row := range values {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var sb strings.Builder
	for r, row := range values {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
