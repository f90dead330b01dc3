package dicetray

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// dieProp names an animatable die property. Each property holds at most one
// tween at a time; starting a new one replaces the old.
type dieProp uint8

const (
	propScale dieProp = iota // Die.AnimScale
	propLift                 // Die.Offset.Y
	propDepth                // Die.BasePos.Z
	propSpin                 // Die.Spin
	propCount
)

// dieAnims animates up to one tween per die property. It is the state
// machine's animation slot table: states start and cancel tweens by property,
// and Update advances whatever is live each tick. Values are written straight
// into the die's fields through bound pointers.
//
// There is no global animation manager — the tray drives Update per die.
type dieAnims struct {
	tweens [propCount]*gween.Tween
	fields [propCount]*float64
}

// bind wires the property slots to d's fields. Dice are always handled by
// pointer, so the bound addresses stay valid for the die's lifetime.
func (a *dieAnims) bind(d *Die) {
	a.fields[propScale] = &d.AnimScale
	a.fields[propLift] = &d.Offset.Y
	a.fields[propDepth] = &d.BasePos.Z
	a.fields[propSpin] = &d.Spin
}

// start animates property p from its current value to the target over the
// given duration. A tween already running on p is replaced.
func (a *dieAnims) start(p dieProp, to float64, duration float32, fn ease.TweenFunc) {
	a.tweens[p] = gween.New(float32(*a.fields[p]), float32(to), duration, fn)
}

// cancel stops the tween on property p, leaving the field at its current
// value. Canceling an idle property is a no-op.
func (a *dieAnims) cancel(p dieProp) {
	a.tweens[p] = nil
}

// update advances all live tweens by dt seconds and writes the values into
// the die's fields. Finished tweens are cleared; a finished spin tween also
// normalizes the angle back into [0, 2π).
func (a *dieAnims) update(d *Die, dt float32) {
	for p := dieProp(0); p < propCount; p++ {
		t := a.tweens[p]
		if t == nil {
			continue
		}
		val, finished := t.Update(dt)
		*a.fields[p] = float64(val)
		if finished {
			a.tweens[p] = nil
			if p == propSpin {
				d.Spin = wrapAngle(d.Spin)
			}
		}
	}
}
