//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hoverColor = color.RGBA{R: 220, G: 60, B: 60, A: 255}

// Overlay lets the mouse edit the grid: a click toggles a cell and dragging
// with the button held paints live cells. The hovered cell is outlined.
type Overlay struct {
	editor core.CellEditor
	size   core.Size
	cell   int

	hoverX, hoverY int
	hovering       bool
	painting       bool
	lastX, lastY   int
}

// NewOverlay constructs an overlay for a grid of size drawn at cell pixels
// per cell. A nil editor yields a hover-only overlay.
func NewOverlay(editor core.CellEditor, size core.Size, cell int) *Overlay {
	if cell <= 0 {
		cell = 1
	}
	return &Overlay{editor: editor, size: size, cell: cell}
}

// Update tracks the cursor and applies edits.
func (o *Overlay) Update() {
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, o.cell, o.size)
	o.hoverX, o.hoverY, o.hovering = x, y, ok

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		o.painting = false
		return
	}
	if o.editor == nil || !ok {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.editor.ToggleCell(x, y)
		o.painting = true
		o.lastX, o.lastY = x, y
		return
	}
	if o.painting && (x != o.lastX || y != o.lastY) {
		o.editor.SetCell(x, y, true)
		o.lastX, o.lastY = x, y
	}
}

// Draw outlines the hovered cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.hovering {
		return
	}
	c := float32(o.cell)
	vector.StrokeRect(screen, float32(o.hoverX)*c, float32(o.hoverY)*c, c, c, 1, hoverColor, false)
}
