//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	cell int
	pal  Palette
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h grid drawn at cell pixels per
// cell.
func NewGridPainter(w, h, cell int, pal Palette) *GridPainter {
	if cell <= 0 {
		cell = 1
	}
	pw, ph := CanvasSize(w, h, cell)
	gp := &GridPainter{w: w, h: h, cell: cell, pal: pal, buf: make([]byte, 4*pw*ph)}
	gp.img = ebiten.NewImage(pw, ph)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillGridRGBA(gp.buf, cells, gp.w, gp.h, gp.cell, gp.pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return CanvasSize(gp.w, gp.h, gp.cell) }
