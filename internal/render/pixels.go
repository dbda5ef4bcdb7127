package render

import "image/color"

// Palette holds the colours used to paint a grid.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Line  color.RGBA
}

// DefaultPalette paints live cells black on white with light gray rules.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Line:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// minLinedCell is the smallest cell size that still gets separator lines;
// below it the rule would swallow most of the cell.
const minLinedCell = 3

// CanvasSize returns the pixel dimensions of a w×h grid drawn at cell pixels
// per cell.
func CanvasSize(w, h, cell int) (int, int) {
	if cell <= 0 {
		cell = 1
	}
	return w * cell, h * cell
}

// fillGridRGBA paints a w×h grid of binary cells into buf, an RGBA image of
// CanvasSize(w, h, cell). Each cell is a cell×cell square whose top row and
// left column use the line colour.
func fillGridRGBA(buf []byte, cells []uint8, w, h, cell int, pal Palette) {
	if cell <= 0 {
		cell = 1
	}
	pw, ph := CanvasSize(w, h, cell)
	lined := cell >= minLinedCell
	for py := 0; py < ph; py++ {
		gy := py / cell
		rowRule := lined && py%cell == 0
		for px := 0; px < pw; px++ {
			gx := px / cell
			col := pal.Dead
			switch {
			case rowRule || (lined && px%cell == 0):
				col = pal.Line
			case cells[gy*w+gx] != 0:
				col = pal.Alive
			}
			base := (py*pw + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
