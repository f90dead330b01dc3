package dicetray

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScalePerPixel = 1.0 / 150

// Tray is the top-level object that owns the dice, the camera, and the
// render surface. Dice tick and draw in insertion order. The tray never
// renders on its own: every frame is an explicit RenderFrame (or Frame)
// call, so callers decide exactly when pixels are produced.
//
// A new tray has no surface and a zero viewport; call Resize before the
// first render. All methods must be called from one goroutine.
type Tray struct {
	// ClearColor fills the surface at the start of every rendered frame.
	ClearColor Color

	// ScalePerPixel converts slot width to die scale under an orthographic
	// camera. Ignored under perspective.
	ScalePerPixel float64

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	camera   *Camera
	dice     []*Die
	surface  *ebiten.Image
	viewport Rect

	store      EntityStore
	updateFunc func() error
	stopped    bool
	debug      bool
	frames     uint64

	stepTime time.Duration

	batch           drawBatch
	screenshotQueue []string
}

// NewTray creates an empty tray with an orthographic camera.
func NewTray() *Tray {
	return &Tray{
		ClearColor:    Color{R: 0.09, G: 0.11, B: 0.13, A: 1},
		ScalePerPixel: defaultScalePerPixel,
		ScreenshotDir: "screenshots",
		camera:        NewCamera(),
	}
}

// Camera returns the tray's camera. Mutate it directly and the next sync
// or render picks the changes up.
func (t *Tray) Camera() *Camera {
	return t.camera
}

// AddDie creates a die of the given kind, pins it to the slot rectangle,
// and appends it to the tray. Insertion order is tick and draw order and
// never changes afterward. The die is synchronized immediately.
func (t *Tray) AddDie(kind Kind, slot Rect, style Style) *Die {
	d := newDie(kind, slot, style)
	d.tray = t
	t.dice = append(t.dice, d)
	t.syncDie(d)
	return d
}

// RemoveDie detaches a die from the tray, preserving the order of the rest.
// Removing a die that is not in the tray is a no-op.
func (t *Tray) RemoveDie(d *Die) {
	for i, x := range t.dice {
		if x == d {
			t.dice = append(t.dice[:i], t.dice[i+1:]...)
			d.tray = nil
			return
		}
	}
}

// Dice returns the tray's dice in insertion order. The returned slice MUST
// NOT be mutated.
func (t *Tray) Dice() []*Die {
	return t.dice
}

// Viewport returns the current viewport rectangle in screen pixels.
func (t *Tray) Viewport() Rect {
	return t.viewport
}

// Surface returns the offscreen render target, or nil before the first
// Resize.
func (t *Tray) Surface() *ebiten.Image {
	return t.surface
}

// Frames returns how many frames have been rendered so far.
func (t *Tray) Frames() uint64 {
	return t.frames
}

// Frame renders the current state, then advances every die by one tick of
// dt seconds. Render deliberately comes first: the frame shows the state
// the previous tick produced, and input flags set since then take effect
// in the update that follows.
func (t *Tray) Frame(dt float32) {
	t.RenderFrame()
	t.Step(dt)
}

// Step advances every die in insertion order: one state-machine update,
// then one animation update. It never draws.
func (t *Tray) Step(dt float32) {
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}
	for _, d := range t.dice {
		stateTable[d.state].update(d)
		d.anims.update(d, dt)
	}
	if t.debug {
		t.stepTime = time.Since(t0)
	}
}

// RenderFrame draws all dice to the surface exactly once. Before the first
// Resize there is no surface and the call is a no-op.
func (t *Tray) RenderFrame() {
	if t.surface == nil {
		return
	}
	var t0 time.Time
	if t.debug {
		t0 = time.Now()
	}

	t.surface.Fill(t.ClearColor.toRGBA())
	stats := t.renderDice(t.surface)

	if t.debug {
		stats.renderTime = time.Since(t0)
		stats.stepTime = t.stepTime
		stats.diceCount = len(t.dice)
		t.debugLog(stats)
	}

	t.flushScreenshots(t.surface)
	t.frames++
}

// Resize sets the viewport, recomputes the camera projection, reallocates
// the surface if the size changed, resynchronizes every die to its slot,
// and renders exactly one frame so the new layout is visible immediately.
func (t *Tray) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		panic("dicetray: Resize needs positive dimensions")
	}
	t.viewport = Rect{Width: float64(w), Height: float64(h)}
	t.camera.SetViewport(float64(w), float64(h))
	if t.surface == nil || t.surface.Bounds().Dx() != w || t.surface.Bounds().Dy() != h {
		t.surface = ebiten.NewImage(w, h)
	}
	t.Sync()
	t.RenderFrame()
}

// Sync resynchronizes every die to its slot. Call it after mutating the
// camera, for example switching its projection mode; Resize and SetSlot
// sync on their own.
func (t *Tray) Sync() {
	for _, d := range t.dice {
		t.syncDie(d)
	}
}

// SetUpdateFunc registers a callback that Run invokes once per frame,
// after input processing and before the tray steps. Returning an error
// stops the game loop.
func (t *Tray) SetUpdateFunc(fn func() error) {
	t.updateFunc = fn
}

// Stop marks the tray stopped. Run's game loop terminates on the next
// update; direct Frame or RenderFrame calls keep working.
func (t *Tray) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop has been called.
func (t *Tray) Stopped() bool {
	return t.stopped
}

// SetEntityStore sets the optional ECS bridge. Die state transitions are
// forwarded to it as DieEvents.
func (t *Tray) SetEntityStore(store EntityStore) {
	t.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and triangle stats are logged to stderr.
func (t *Tray) SetDebugMode(enabled bool) {
	t.debug = enabled
}

func (t *Tray) emit(ev DieEvent) {
	if t.store != nil {
		t.store.EmitEvent(ev)
	}
}
