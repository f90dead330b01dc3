package dicetray

import (
	"math"
	"testing"
)

// A 100x100 slot centered on the point (x, y).
func slotAt(x, y float64) Rect {
	return Rect{X: x - 50, Y: y - 50, Width: 100, Height: 100}
}

func TestSyncCenterSlotMapsToWorldOrigin(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)
	d := tray.AddDie(D6, slotAt(400, 300), Style{})

	if math.Abs(d.BasePos.X) > 1e-9 || math.Abs(d.BasePos.Y) > 1e-9 {
		t.Errorf("BasePos = (%f, %f), want (0, 0) for a screen-centered slot",
			d.BasePos.X, d.BasePos.Y)
	}
}

func TestSyncQuadrantsAndYFlip(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)

	// Upper-right quadrant of the screen: +X, +Y in world space. The default
	// orthographic camera shows a 10-unit-high, 800/600-aspect view.
	d := tray.AddDie(D6, slotAt(600, 150), Style{})
	if math.Abs(d.BasePos.X-10.0/3) > 1e-9 {
		t.Errorf("BasePos.X = %f, want %f", d.BasePos.X, 10.0/3)
	}
	if math.Abs(d.BasePos.Y-2.5) > 1e-9 {
		t.Errorf("BasePos.Y = %f, want 2.5 (screen Y grows downward)", d.BasePos.Y)
	}

	// Lower-left quadrant mirrors both signs.
	d2 := tray.AddDie(D6, slotAt(200, 450), Style{})
	if d2.BasePos.X >= 0 || d2.BasePos.Y >= 0 {
		t.Errorf("BasePos = (%f, %f), want both negative", d2.BasePos.X, d2.BasePos.Y)
	}
}

func TestSyncPreservesDepth(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)
	d := tray.AddDie(D6, slotAt(400, 300), Style{})

	d.BasePos.Z = 0.7 // as the drag state would set it
	d.SetSlot(slotAt(200, 200))

	if d.BasePos.Z != 0.7 {
		t.Errorf("BasePos.Z = %f after resync, want 0.7 untouched", d.BasePos.Z)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)
	d := tray.AddDie(D12, slotAt(123, 456), Style{})

	pos, scale := d.BasePos, d.BaseScale
	tray.syncDie(d)
	tray.syncDie(d)

	if d.BasePos != pos || d.BaseScale != scale {
		t.Errorf("resync changed the die: pos %v -> %v, scale %f -> %f",
			pos, d.BasePos, scale, d.BaseScale)
	}
}

func TestSyncZeroViewportFallsBackToCenter(t *testing.T) {
	tray := NewTray() // never resized
	d := tray.AddDie(D6, slotAt(9999, 9999), Style{})

	if math.Abs(d.BasePos.X) > 1e-12 || math.Abs(d.BasePos.Y) > 1e-12 {
		t.Errorf("BasePos = (%f, %f) with no viewport, want origin",
			d.BasePos.X, d.BasePos.Y)
	}
}

func TestSyncOrthoScaleFollowsSlotWidth(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)

	d := tray.AddDie(D6, Rect{X: 0, Y: 0, Width: 150, Height: 150}, Style{})
	if math.Abs(d.BaseScale-1.0) > 1e-9 {
		t.Errorf("BaseScale = %f for a 150px slot, want 1", d.BaseScale)
	}

	d.SetSlot(Rect{X: 0, Y: 0, Width: 300, Height: 300})
	if math.Abs(d.BaseScale-2.0) > 1e-9 {
		t.Errorf("BaseScale = %f after doubling the slot, want 2", d.BaseScale)
	}
}

func TestSyncPerspectiveScaleIsNeutral(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)
	d := tray.AddDie(D6, Rect{X: 0, Y: 0, Width: 300, Height: 300}, Style{})
	if d.BaseScale == 1 {
		t.Fatal("precondition: orthographic scale should differ from 1 for a 300px slot")
	}

	tray.Camera().SetMode(ProjectionPerspective)
	tray.Sync()

	if d.BaseScale != 1 {
		t.Errorf("BaseScale = %f under perspective, want 1", d.BaseScale)
	}
}

func TestSetSlotResyncsOnlyThatDie(t *testing.T) {
	tray := NewTray()
	tray.Resize(800, 600)
	a := tray.AddDie(D6, slotAt(200, 200), Style{})
	b := tray.AddDie(D8, slotAt(600, 400), Style{})

	bPos, bScale, bSlot := b.BasePos, b.BaseScale, b.Slot
	a.SetSlot(slotAt(100, 500))

	if b.BasePos != bPos || b.BaseScale != bScale || b.Slot != bSlot {
		t.Error("moving one die disturbed another")
	}
	if math.Abs(a.BasePos.X-(-5.0)) > 1e-9 {
		t.Errorf("moved die BasePos.X = %f, want -5", a.BasePos.X)
	}
}
