package t2048

// GridSize is the board dimension. Only 4x4 boards are supported.
const GridSize = 4

// CellCount is the number of cells on the board.
const CellCount = GridSize * GridSize

// Layout is the pixel geometry of the grid. Tile positions during a move are
// expressed in these units; front-ends scale them to whatever they draw on.
type Layout struct {
	OriginX int // Left edge of the grid
	OriginY int // Top edge of the grid
	CellW   int // Width of one cell
	CellH   int // Height of one cell
	Outline int // Thickness of the grid lines
}

// DefaultLayout returns a 600x600 grid inside an 800x800 window, 60px above
// the bottom edge.
func DefaultLayout() Layout {
	return Layout{
		OriginX: 100,
		OriginY: 140,
		CellW:   150,
		CellH:   150,
		Outline: 10,
	}
}

// Pixel returns the resting position of the given cell.
func (l Layout) Pixel(row, col int) (x, y int) {
	return l.OriginX + col*l.CellW, l.OriginY + row*l.CellH
}

// Width returns the grid width in pixels.
func (l Layout) Width() int {
	return GridSize * l.CellW
}

// Height returns the grid height in pixels.
func (l Layout) Height() int {
	return GridSize * l.CellH
}
