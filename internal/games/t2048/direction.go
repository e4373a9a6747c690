package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all moves in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// DirectionFromAction maps a directional action to a move.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// axis describes a move as the coordinate it varies and the way it travels.
// Left/Right vary columns and x; Up/Down vary rows and y. A sign of -1
// travels toward index 0, +1 toward index GridSize-1.
type axis struct {
	vertical bool
	sign     int
	extent   int // cell size along the axis, in pixels
	layout   Layout
}

func (d Direction) axis(l Layout) axis {
	a := axis{layout: l}
	switch d {
	case DirUp:
		a.vertical, a.sign = true, -1
	case DirDown:
		a.vertical, a.sign = true, 1
	case DirLeft:
		a.sign = -1
	default:
		a.sign = 1
	}
	a.extent = l.CellW
	if a.vertical {
		a.extent = l.CellH
	}
	return a
}

// index returns the tile's settled coordinate along the axis.
func (a axis) index(t *Tile) int {
	if a.vertical {
		return t.Row
	}
	return t.Col
}

// lane returns how many cells separate the tile from the travel edge.
// Leading tiles have the lowest lane, so sorting by lane gives the
// processing order of a pass.
func (a axis) lane(t *Tile) int {
	if a.sign < 0 {
		return a.index(t)
	}
	return GridSize - 1 - a.index(t)
}

// dist returns the tile's pixel distance from the travel edge.
func (a axis) dist(t *Tile) int {
	var off int
	if a.vertical {
		off = t.Y - a.layout.OriginY
	} else {
		off = t.X - a.layout.OriginX
	}
	if a.sign < 0 {
		return off
	}
	return (GridSize-1)*a.extent - off
}

// setDist moves the tile along the axis to the given distance from the edge.
func (a axis) setDist(t *Tile, d int) {
	off := d
	if a.sign > 0 {
		off = (GridSize-1)*a.extent - d
	}
	if a.vertical {
		t.Y = a.layout.OriginY + off
	} else {
		t.X = a.layout.OriginX + off
	}
}

// settledLane rounds a pixel distance up to a lane. Rounding toward the
// travel direction keeps a tile registered on the cell it is leaving until
// it reaches the next cell exactly.
func (a axis) settledLane(d int) int {
	if d <= 0 {
		return 0
	}
	return (d + a.extent - 1) / a.extent
}

// cell converts a lane on the tile's line back to grid coordinates.
func (a axis) cell(t *Tile, lane int) (row, col int) {
	idx := lane
	if a.sign > 0 {
		idx = GridSize - 1 - lane
	}
	if a.vertical {
		return idx, t.Col
	}
	return t.Row, idx
}

// ParseMoves parses a move script: direction names or letters separated by
// commas or spaces ("left, up"), or a run of letters ("LLUR").
func ParseMoves(s string) ([]Direction, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(tokens) == 1 {
		if _, err := ParseDirection(tokens[0]); err != nil {
			tokens = strings.Split(tokens[0], "")
		}
	}

	moves := make([]Direction, 0, len(tokens))
	for i, tok := range tokens {
		d, err := ParseDirection(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}
