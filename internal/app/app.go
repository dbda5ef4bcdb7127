//go:build ebiten

package app

import (
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cell     int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(session *Session, cfg Config) *Game {
	sim := session.Sim()
	size := sim.Size()
	editor, _ := sim.(core.CellEditor)
	g := &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H, cfg.Cell, render.DefaultPalette()),
		overlay:  ui.NewOverlay(editor, size, cfg.Cell),
		cell:     cfg.Cell,
		hudWidth: cfg.HUDWidth,
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(session, sim.Name(), cfg.HUDWidth)
	}
	return g
}

// WindowSize returns the outer size the window needs for the grid and HUD.
func (g *Game) WindowSize() (int, int) {
	w, h := g.gridSize()
	return w + g.hudWidth, h
}

func (g *Game) gridSize() (int, int) {
	s := g.session.Sim().Size()
	return render.CanvasSize(s.W, s.H, g.cell)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.session.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.session.Slower()
	}

	g.overlay.Update()
	if g.hud != nil {
		gw, _ := g.gridSize()
		g.hud.Update(gw)
	}

	g.session.Tick(time.Now())
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells())
	g.overlay.Draw(screen)
	if g.hud != nil {
		gw, gh := g.gridSize()
		g.hud.Draw(screen, gw, gh)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
