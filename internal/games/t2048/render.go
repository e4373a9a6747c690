package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/core"
)

const (
	cellChars = 8 // Width of each cell in characters, including one border
	cellRows  = 4 // Height of each cell in rows, including one border

	boardChars = GridSize*cellChars + 1
	boardRows  = GridSize*cellRows + 1
	hudHeight  = 3

	minScreenW = boardChars + 2
	minScreenH = hudHeight + 1 + boardRows
)

// TileColor returns the background colour for a tile value.
func TileColor(value int) core.Color {
	rank := Rank(value)
	switch {
	case rank < 0:
		return core.ColorEmptyCell
	case rank >= int(core.ColorTileSuper-core.ColorTile2):
		return core.ColorTileSuper
	default:
		return core.ColorTile2 + core.Color(rank)
	}
}

// FontColor returns the text colour for a tile value.
func FontColor(value int) core.Color {
	if TileColor(value) == core.ColorTileSuper {
		return core.ColorFontLight
	}
	return core.ColorFont
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardChars) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	renderGrid(dst, boardX, boardY)
	renderTiles(dst, g.Frame(), boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawText(boardX+(boardChars-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(boardX+boardChars-len(info), 1, info)

	moves := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX+(boardChars-len(moves))/2, 2, moves)
}

// renderGrid draws the background and the outline of the 4x4 grid.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	dst.DrawRect(core.NewRect(boardX, boardY, boardChars, boardRows),
		core.Cell{Rune: ' ', FG: core.ColorOutline, BG: core.ColorBackground})

	for y := range GridSize + 1 {
		for x := range GridSize + 1 {
			px := boardX + x*cellChars
			py := boardY + y*cellRows

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < GridSize {
				for i := 1; i < cellChars; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < GridSize {
				for i := 1; i < cellRows; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles projects pixel positions onto character cells, so tiles glide
// across the grid while a move animates.
func renderTiles(dst *core.Screen, f Frame, boardX, boardY int) {
	l := f.Layout
	for _, t := range f.Tiles {
		x := boardX + 1 + core.Scale(t.X-l.OriginX, l.CellW, cellChars)
		y := boardY + 1 + core.Scale(t.Y-l.OriginY, l.CellH, cellRows)

		bg := TileColor(t.Value)
		fg := FontColor(t.Value)
		dst.DrawRect(core.NewRect(x, y, cellChars-1, cellRows-1), core.Cell{Rune: ' ', FG: fg, BG: bg})

		label := strconv.Itoa(t.Value)
		pad := max((cellChars-1-len(label))/2, 0)
		dst.DrawTextColored(x+pad, y+(cellRows-1)/2, label, fg, bg)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardChars/2
	centerY := boardY + boardRows/2

	switch {
	case g.err != nil:
		drawOverlay(dst, centerX, centerY, "INTERNAL ERROR", "Press Q to quit")
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER",
			fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, core.Cell{Rune: ' ', FG: core.ColorFont, BG: core.ColorOverlay})
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
