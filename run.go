package dicetray

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// Script, when set, drives the session from a loaded test script
	// instead of waiting for a human.
	Script *TestRunner
}

// game adapts a Tray plus a Pointer to the ebiten.Game interface. Layout
// drives Resize, Update drives input and Frame, Draw blits the tray's
// offscreen surface to the screen.
type game struct {
	tray    *Tray
	pointer *Pointer
	script  *TestRunner
	showFPS bool
	w, h    int
}

func (g *game) Update() error {
	if g.tray.Stopped() {
		return ebiten.Termination
	}
	if g.script != nil {
		g.script.step(g.tray, g.pointer)
	}
	g.pointer.Update()
	if fn := g.tray.updateFunc; fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.tray.Frame(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if s := g.tray.Surface(); s != nil {
		screen.DrawImage(s, nil)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.tray.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the tray with ebiten's game
// loop until Stop is called or the window closes. The first Layout call
// sizes the tray, so Resize beforehand is unnecessary.
//
// For full control over the loop, skip Run: implement ebiten.Game
// yourself and call Resize, Pointer.Update and Frame directly.
func Run(t *Tray, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "dicetray"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{tray: t, pointer: NewPointer(t), script: cfg.Script, showFPS: cfg.ShowFPS}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("dicetray: run: %w", err)
	}
	return nil
}
