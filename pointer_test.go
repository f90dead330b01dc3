package dicetray

import "testing"

func TestInjectMoveHoversDie(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectMove(150, 150)
	p.Update()
	if !d.Hovered {
		t.Error("die under the pointer is not hovered")
	}

	p.InjectMove(500, 500)
	p.Update()
	if d.Hovered {
		t.Error("die stayed hovered after the pointer left")
	}
}

func TestInjectPressStartsDrag(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectPress(150, 150)
	p.Update()

	if !d.Dragged {
		t.Error("die under a press is not dragged")
	}
	if p.Active() != d {
		t.Error("Active() does not return the grabbed die")
	}
}

func TestDragSticksWhenPointerLeavesSlot(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectPress(150, 150)
	p.InjectMove(700, 50) // far outside the slot, button still down
	p.Update()
	p.Update()

	if !d.Dragged {
		t.Error("drag broke when the pointer left the slot")
	}
	if d.Hovered {
		t.Error("die is hovered with the pointer far away")
	}
	if p.Active() != d {
		t.Error("Active() lost the grabbed die mid-drag")
	}
}

func TestInjectReleaseEndsDrag(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectPress(150, 150)
	p.InjectRelease(150, 150)
	p.Update()
	p.Update()

	if d.Dragged {
		t.Error("die is still dragged after release")
	}
	if p.Active() != nil {
		t.Error("Active() is non-nil after release")
	}
}

func TestPressOnEmptySpaceGrabsNothing(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectPress(700, 700)
	p.Update()

	if d.Dragged || p.Active() != nil {
		t.Error("press on empty space started a drag")
	}

	p.InjectRelease(700, 700)
	p.Update() // release with nothing active must be harmless
}

func TestTopmostDieWinsOverlap(t *testing.T) {
	tray := NewTray()
	a := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	b := tray.AddDie(D8, Rect{X: 150, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	// (175, 150) lies inside both slots; the later die draws on top.
	p.InjectMove(175, 150)
	p.Update()
	if a.Hovered || !b.Hovered {
		t.Errorf("hover on overlap: a=%v b=%v, want only b", a.Hovered, b.Hovered)
	}

	p.InjectPress(175, 150)
	p.Update()
	if p.Active() != b {
		t.Error("press on overlap grabbed the wrong die")
	}
}

func TestPointerPositionTracksLastSample(t *testing.T) {
	p := NewPointer(NewTray())

	p.InjectMove(42, 7)
	p.Update()

	x, y := p.Position()
	if x != 42 || y != 7 {
		t.Errorf("Position() = (%f, %f), want (42, 7)", x, y)
	}
}

func TestPointerDrivesStateMachine(t *testing.T) {
	tray := NewTray()
	d := tray.AddDie(D6, Rect{X: 100, Y: 100, Width: 100, Height: 100}, Style{})
	p := NewPointer(tray)

	p.InjectPress(150, 150)
	p.Update()
	tray.Step(0.0625)
	if d.State() != StateDragged {
		t.Fatalf("state = %v after press, want dragged", d.State())
	}

	// Release with the pointer still on the die: idle first, hovered on the
	// following tick.
	p.InjectRelease(150, 150)
	p.Update()
	tray.Step(0.0625)
	if d.State() != StateIdle {
		t.Fatalf("state = %v right after release, want idle", d.State())
	}
	tray.Step(0.0625)
	if d.State() != StateHovered {
		t.Errorf("state = %v one tick after release, want hovered", d.State())
	}
}
