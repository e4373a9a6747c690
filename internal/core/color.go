package core

import "fmt"

// Color identifies a palette entry for a screen cell.
// Front-ends resolve it to a concrete colour with RGB.
type Color uint8

// Palette entries. The tile shades follow the classic 2048 look.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorOutline
	ColorFont
	ColorFontLight
	ColorEmptyCell
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTileSuper // 2048 and above
	ColorOverlay
)

var palette = [...][3]uint8{
	ColorDefault:    {255, 255, 255},
	ColorBackground: {205, 192, 180},
	ColorOutline:    {187, 173, 160},
	ColorFont:       {119, 110, 101},
	ColorFontLight:  {249, 246, 242},
	ColorEmptyCell:  {205, 192, 180},
	ColorTile2:      {237, 229, 218},
	ColorTile4:      {238, 225, 201},
	ColorTile8:      {243, 178, 122},
	ColorTile16:     {246, 150, 101},
	ColorTile32:     {247, 124, 95},
	ColorTile64:     {247, 95, 59},
	ColorTile128:    {237, 208, 115},
	ColorTile256:    {237, 204, 99},
	ColorTile512:    {236, 202, 80},
	ColorTile1024:   {237, 197, 63},
	ColorTileSuper:  {60, 58, 50},
	ColorOverlay:    {250, 248, 239},
}

// RGB returns the colour components. Unknown entries resolve to ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		c = ColorDefault
	}
	p := palette[c]
	return p[0], p[1], p[2]
}

// Hex returns the colour as a #rrggbb string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
