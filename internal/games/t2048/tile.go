package t2048

import "math/bits"

// Tile is one numbered square.
// Row/Col are authoritative once the tile has settled; X/Y follow the
// animation and match Row/Col exactly whenever no move is in flight.
type Tile struct {
	Value int
	Row   int
	Col   int
	X     int
	Y     int
}

// NewTile creates a tile resting on the given cell.
func NewTile(value, row, col int, l Layout) *Tile {
	t := &Tile{Value: value}
	t.SetPosition(row, col, l)
	return t
}

// SetPosition places the tile on a cell and snaps its pixel position to it.
func (t *Tile) SetPosition(row, col int, l Layout) {
	t.Row = row
	t.Col = col
	t.X, t.Y = l.Pixel(row, col)
}

// Move shifts the pixel position without touching the settled cell.
func (t *Tile) Move(dx, dy int) {
	t.X += dx
	t.Y += dy
}

// Settled reports whether the pixel position matches the settled cell.
func (t *Tile) Settled(l Layout) bool {
	x, y := l.Pixel(t.Row, t.Col)
	return t.X == x && t.Y == y
}

// Rank returns log2(Value)-1: 0 for a 2, 1 for a 4 and so on.
func (t *Tile) Rank() int {
	return Rank(t.Value)
}

// Rank returns log2(value)-1 for a power of two, or -1 for anything smaller than 2.
func Rank(value int) int {
	if value < 2 {
		return -1
	}
	return bits.Len(uint(value)) - 2
}

// TileView is a read-only copy of a tile handed to renderers.
type TileView struct {
	Value int
	Row   int
	Col   int
	X     int
	Y     int
}

func (t *Tile) view() TileView {
	return TileView{Value: t.Value, Row: t.Row, Col: t.Col, X: t.X, Y: t.Y}
}

// Frame is the render snapshot of one animation step.
type Frame struct {
	Layout Layout
	Tiles  []TileView
}
