// stress fills the screen with a few hundred dice, all spinning and
// animating at once. A stress test for the dicetray rendering batch; run
// with the FPS overlay on and watch the frame time hold.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/cubeforge/dicetray"
)

const (
	screenW = 1280
	screenH = 720
	cols    = 32
	rows    = 18
)

func main() {
	tray := dicetray.NewTray()
	tray.ClearColor = dicetray.Color{R: 0.06, G: 0.06, B: 0.09, A: 1}

	kinds := []dicetray.Kind{
		dicetray.D4, dicetray.D6, dicetray.D8, dicetray.D12, dicetray.D20,
	}
	grid := dicetray.Grid{Rows: rows, Cols: cols, Gutter: 2, Padding: 8}
	for _, slot := range grid.Rects(dicetray.Rect{Width: screenW, Height: screenH}) {
		d := tray.AddDie(kinds[rand.IntN(len(kinds))], slot, dicetray.Style{
			Color: dicetray.Color{
				R: 0.4 + rand.Float64()*0.6,
				G: 0.4 + rand.Float64()*0.6,
				B: 0.4 + rand.Float64()*0.6,
				A: 1,
			},
		})
		d.Spin = rand.Float64() * 6.28
	}

	var frame int
	tray.SetUpdateFunc(func() error {
		frame++
		if frame == 30 {
			tray.ScreenshotDir = "docs/demos/stress"
			tray.Screenshot("thumbnail")
		}
		return nil
	})

	if err := dicetray.Run(tray, dicetray.RunConfig{
		Title:   "Dicetray — Stress",
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
	}); err != nil {
		log.Fatal(err)
	}
}
