package render

import (
	"image/color"
	"testing"
)

func pixelAt(buf []byte, pw, x, y int) color.RGBA {
	base := (y*pw + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestCanvasSize(t *testing.T) {
	if w, h := CanvasSize(50, 50, 20); w != 1000 || h != 1000 {
		t.Fatalf("CanvasSize=%dx%d, expected 1000x1000", w, h)
	}
	if w, h := CanvasSize(4, 3, 0); w != 4 || h != 3 {
		t.Fatalf("CanvasSize with cell 0=%dx%d, expected 4x3", w, h)
	}
}

func TestFillGridRGBA(t *testing.T) {
	pal := DefaultPalette()
	const w, h, cell = 2, 2, 4
	cells := []uint8{1, 0, 0, 1}
	pw, ph := CanvasSize(w, h, cell)
	buf := make([]byte, 4*pw*ph)
	fillGridRGBA(buf, cells, w, h, cell, pal)

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, pal.Line},
		{2, 0, pal.Line},
		{0, 2, pal.Line},
		{4, 2, pal.Line},
		{2, 2, pal.Alive},
		{6, 2, pal.Dead},
		{2, 6, pal.Dead},
		{7, 7, pal.Alive},
	}
	for _, c := range checks {
		if got := pixelAt(buf, pw, c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d)=%v, expected %v", c.x, c.y, got, c.want)
		}
	}
}

func TestFillGridRGBASmallCellsSkipLines(t *testing.T) {
	pal := DefaultPalette()
	cells := []uint8{1, 0}
	pw, ph := CanvasSize(2, 1, 2)
	buf := make([]byte, 4*pw*ph)
	fillGridRGBA(buf, cells, 2, 1, 2, pal)
	if got := pixelAt(buf, pw, 0, 0); got != pal.Alive {
		t.Fatalf("pixel (0,0)=%v, expected alive colour", got)
	}
	if got := pixelAt(buf, pw, 2, 1); got != pal.Dead {
		t.Fatalf("pixel (2,1)=%v, expected dead colour", got)
	}
}
