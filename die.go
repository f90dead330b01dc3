package dicetray

import "math"

// dieIDCounter is a plain counter (no atomic — dicetray is single-threaded).
var dieIDCounter uint64

// dieTilt is the fixed tilt about X applied to every die so the spin about Y
// reads as a tumble rather than a flat turntable rotation. A full +2π spin
// returns the die to the exact same orientation regardless of tilt.
const dieTilt = 0.42

// Die is one 3D die in a tray, pinned to a 2D layout slot. Base fields are
// owned by the slot synchronizer; Offset, AnimScale and Spin are owned by the
// visual state machine and its animations. Input flags (Hovered, Dragged) are
// written from outside, read by the state machine on the next Step.
type Die struct {
	ID   uint64
	Kind Kind

	// Geometry is the shared mesh for Kind. Never mutated through a die.
	Geometry *Geometry

	// Slot is the layout rectangle this die is pinned to, in screen pixels.
	// Change it with SetSlot so the world position follows.
	Slot Rect

	// BasePos is the world-space anchor derived from Slot. X and Y are
	// rewritten on every sync; Z belongs to the state machine.
	BasePos Vec3

	// BaseScale is the slot-derived scale factor (1 under perspective).
	BaseScale float64

	// Offset is the state-driven displacement on top of BasePos.
	Offset Vec3

	// AnimScale is the state-driven scale multiplier on top of BaseScale.
	AnimScale float64

	// Spin is the rotation angle about Y in radians, kept in [0, 2π) except
	// transiently while a settle animation overshoots past a full turn.
	Spin float64

	// Hovered and Dragged are input flags sampled by the state machine.
	Hovered bool
	Dragged bool

	Style Style

	// UserData is free for callers.
	UserData any

	state DieState
	anims dieAnims
	tray  *Tray
}

func newDie(kind Kind, slot Rect, style Style) *Die {
	dieIDCounter++
	if style.Color == (Color{}) {
		style.Color = ColorWhite
	}
	d := &Die{
		ID:        dieIDCounter,
		Kind:      kind,
		Geometry:  GeometryFor(kind),
		Slot:      slot,
		BaseScale: 1,
		AnimScale: 1,
		Style:     style,
		state:     StateIdle,
	}
	d.anims.bind(d)
	return d
}

// State returns the die's current visual state.
func (d *Die) State() DieState {
	return d.state
}

// SetSlot moves the die to a new layout rectangle and resynchronizes its
// world position. Only this die is touched; the rest of the tray is left
// exactly as it was.
func (d *Die) SetSlot(r Rect) {
	d.Slot = r
	if d.tray != nil {
		d.tray.syncDie(d)
	}
}

// wrapAngle normalizes an angle to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
