package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// labelSize shrinks the font for long numbers so they fit inside a tile.
func labelSize(value, base int) float64 {
	digits := len(strconv.Itoa(value))
	if digits <= 2 {
		return float64(base)
	}
	return float64(base) * 2.5 / float64(digits)
}

func drawEmptyCells(dst *ebiten.Image, l t2048.Layout) {
	vector.DrawFilledRect(dst, float32(l.OriginX), float32(l.OriginY),
		float32(l.Width()), float32(l.Height()), rgba(core.ColorEmptyCell), false)
}

func (w *Window) drawTile(dst *ebiten.Image, l t2048.Layout, t t2048.TileView) {
	vector.DrawFilledRect(dst, float32(t.X), float32(t.Y), float32(l.CellW), float32(l.CellH),
		rgba(t2048.TileColor(t.Value)), false)

	w.drawText(dst, strconv.Itoa(t.Value), labelSize(t.Value, w.cfg.Window.FontSize),
		float64(t.X)+float64(l.CellW)/2, float64(t.Y)+float64(l.CellH)/2,
		rgba(t2048.FontColor(t.Value)))
}

// drawGrid draws the inner lines and the outer outline over the tiles.
func drawGrid(dst *ebiten.Image, l t2048.Layout) {
	clr := rgba(core.ColorOutline)
	width := float32(max(l.Outline, 1))
	x0, y0 := float32(l.OriginX), float32(l.OriginY)
	x1, y1 := x0+float32(l.Width()), y0+float32(l.Height())

	for i := 1; i < t2048.GridSize; i++ {
		y := y0 + float32(i*l.CellH)
		vector.StrokeLine(dst, x0, y, x1, y, width, clr, false)
		x := x0 + float32(i*l.CellW)
		vector.StrokeLine(dst, x, y0, x, y1, width, clr, false)
	}
	vector.StrokeRect(dst, x0, y0, x1-x0, y1-y0, width, clr, false)
}

// drawHUD draws the score and move counter above the grid.
func (w *Window) drawHUD(dst *ebiten.Image, l t2048.Layout) {
	size := float64(w.cfg.Window.FontSize) / 2
	y := float64(l.OriginY) / 2
	clr := rgba(core.ColorFont)

	w.drawText(dst, "Score: "+strconv.Itoa(w.game.Score()), size,
		float64(l.OriginX)+float64(l.Width())/4, y, clr)
	w.drawText(dst, "Moves: "+strconv.Itoa(w.game.Moves()), size,
		float64(l.OriginX)+3*float64(l.Width())/4, y, clr)
}

// drawOverlay dims the board and shows centred lines of text.
func (w *Window) drawOverlay(dst *ebiten.Image, lines ...string) {
	bounds := dst.Bounds()
	r, g, b := core.ColorOverlay.RGB()
	shade := color.NRGBA{R: r, G: g, B: b, A: 0xc0}
	vector.DrawFilledRect(dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), shade, false)

	size := float64(w.cfg.Window.FontSize) * 0.8
	cx := float64(bounds.Dx()) / 2
	top := float64(bounds.Dy())/2 - size*float64(len(lines)-1)/2
	for i, line := range lines {
		w.drawText(dst, line, size, cx, top+float64(i)*size, rgba(core.ColorFont))
		size = float64(w.cfg.Window.FontSize) / 2
	}
}

// drawText draws s centred on (x, y).
func (w *Window) drawText(dst *ebiten.Image, s string, size, x, y float64, clr color.Color) {
	face := &text.GoTextFace{Source: w.font, Size: size}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
