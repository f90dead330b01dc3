// tabletop is the full dicetray demo: a configurable board of dice with
// structured logging of every interaction. Space switches the camera
// projection, P takes a screenshot, Escape quits. Settings come from
// tabletop.yaml and command-line flags (run with -h for the list).
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/cubeforge/dicetray"
)

var palette = []dicetray.Color{
	{R: 0.92, G: 0.34, B: 0.32, A: 1}, // red
	{R: 0.98, G: 0.69, B: 0.23, A: 1}, // amber
	{R: 0.38, G: 0.84, B: 0.51, A: 1}, // green
	{R: 0.36, G: 0.68, B: 0.95, A: 1}, // blue
	{R: 0.78, G: 0.48, B: 0.94, A: 1}, // violet
}

var allKinds = []dicetray.Kind{
	dicetray.D4, dicetray.D6, dicetray.D8, dicetray.D12, dicetray.D20,
}

// parseKinds maps config names to die kinds, skipping anything unknown.
// An empty or fully-unknown list falls back to all five kinds.
func parseKinds(names []string, log *zap.SugaredLogger) []dicetray.Kind {
	var kinds []dicetray.Kind
	for _, name := range names {
		switch name {
		case "d4":
			kinds = append(kinds, dicetray.D4)
		case "d6":
			kinds = append(kinds, dicetray.D6)
		case "d8":
			kinds = append(kinds, dicetray.D8)
		case "d12":
			kinds = append(kinds, dicetray.D12)
		case "d20":
			kinds = append(kinds, dicetray.D20)
		default:
			log.Warnw("unknown die kind in config", "kind", name)
		}
	}
	if len(kinds) == 0 {
		return allKinds
	}
	return kinds
}

// zapStore logs die transitions through the demo's structured logger.
type zapStore struct {
	log *zap.SugaredLogger
}

func (s zapStore) EmitEvent(e dicetray.DieEvent) {
	switch e.Type {
	case dicetray.EventStateChange:
		s.log.Debugw("die state change",
			"kind", e.Die.Kind.String(), "id", e.Die.ID,
			"from", e.From.String(), "to", e.To.String())
	case dicetray.EventDragStart:
		s.log.Infow("die grabbed", "kind", e.Die.Kind.String(), "id", e.Die.ID)
	case dicetray.EventDragEnd:
		s.log.Infow("die released", "kind", e.Die.Kind.String(), "id", e.Die.ID)
	}
}

func main() {
	flag.Parse()
	cfg, err := Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := initLogger(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()
	log.Infow("tabletop starting",
		"window", [2]int{cfg.Window.Width, cfg.Window.Height},
		"board", [2]int{cfg.Board.Rows, cfg.Board.Cols},
		"camera", cfg.Camera.Mode)

	tray := dicetray.NewTray()
	tray.ClearColor = dicetray.Color{R: 0.08, G: 0.16, B: 0.11, A: 1} // felt green
	tray.SetEntityStore(zapStore{log: log})
	if cfg.Logging.Level == "debug" {
		tray.SetDebugMode(true)
	}

	switch cfg.Camera.Mode {
	case "perspective":
		tray.Camera().SetMode(dicetray.ProjectionPerspective)
	case "orthographic", "":
	default:
		log.Warnw("unknown camera mode, using orthographic", "mode", cfg.Camera.Mode)
	}

	grid := dicetray.Grid{
		Rows:    cfg.Board.Rows,
		Cols:    cfg.Board.Cols,
		Gutter:  cfg.Board.Gutter,
		Padding: cfg.Board.Padding,
	}
	bounds := dicetray.Rect{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}
	kinds := parseKinds(cfg.Board.Dice, log)
	for i, slot := range grid.Rects(bounds) {
		tray.AddDie(kinds[i%len(kinds)], slot, dicetray.Style{Color: palette[i%len(palette)]})
	}

	tray.SetUpdateFunc(func() error {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			cam := tray.Camera()
			if cam.Mode == dicetray.ProjectionOrthographic {
				cam.SetMode(dicetray.ProjectionPerspective)
			} else {
				cam.SetMode(dicetray.ProjectionOrthographic)
			}
			tray.Sync()
			log.Infow("camera mode switched", "mode", cam.Mode)
		case inpututil.IsKeyJustPressed(ebiten.KeyP):
			tray.Screenshot("tabletop")
			log.Info("screenshot queued")
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			log.Info("stopping")
			tray.Stop()
		}
		return nil
	})

	if err := dicetray.Run(tray, dicetray.RunConfig{
		Title:   "Dicetray — Tabletop",
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	}); err != nil {
		log.Fatalw("run failed", "error", err)
	}
	log.Info("tabletop stopped")
}
