package dicetray

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimsWriteThroughEachTick(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})

	d.anims.start(propLift, 1.0, 1.0, ease.Linear)
	d.anims.update(d, 0.5)

	if math.Abs(d.Offset.Y-0.5) > 1e-6 {
		t.Errorf("Offset.Y = %f halfway through, want 0.5", d.Offset.Y)
	}
}

func TestAnimsReachTargetExactly(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})

	d.anims.start(propScale, 2.0, 0.5, ease.OutQuad)
	d.anims.update(d, 0.25)
	d.anims.update(d, 0.25)

	if d.AnimScale != 2.0 {
		t.Errorf("AnimScale = %f after the tween ran out, want exactly 2", d.AnimScale)
	}
	if d.anims.tweens[propScale] != nil {
		t.Error("finished tween was not cleared from its slot")
	}
}

func TestAnimsCancelKeepsCurrentValue(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})

	d.anims.start(propLift, 1.0, 1.0, ease.Linear)
	d.anims.update(d, 0.5)
	d.anims.cancel(propLift)
	d.anims.update(d, 1.0)

	if math.Abs(d.Offset.Y-0.5) > 1e-6 {
		t.Errorf("Offset.Y = %f after cancel, want the value it was canceled at (0.5)", d.Offset.Y)
	}
}

func TestAnimsCancelIsIdempotent(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})

	// Canceling an idle property, twice, must be a no-op.
	d.anims.cancel(propSpin)
	d.anims.cancel(propSpin)

	d.anims.start(propSpin, 1.0, 1.0, ease.Linear)
	d.anims.cancel(propSpin)
	d.anims.cancel(propSpin)
	d.anims.update(d, 1.0)

	if d.Spin != 0 {
		t.Errorf("Spin = %f after double cancel, want 0", d.Spin)
	}
}

func TestAnimsStartReplacesRunningTween(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})

	d.anims.start(propScale, 2.0, 1.0, ease.Linear)
	d.anims.update(d, 0.5) // now at 1.5

	// The replacement starts from the current value, not the old target.
	d.anims.start(propScale, 0.0, 1.0, ease.Linear)
	d.anims.update(d, 0.5)

	if math.Abs(d.AnimScale-0.75) > 1e-6 {
		t.Errorf("AnimScale = %f, want 0.75 (halfway from 1.5 to 0)", d.AnimScale)
	}
}

func TestAnimsSpinNormalizedWhenSettleFinishes(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})
	d.Spin = 5.0

	d.anims.start(propSpin, d.Spin+2*math.Pi, 0.5, ease.Linear)
	d.anims.update(d, 0.25) // halfway: 5 + π, transiently past a full turn
	if d.Spin <= 2*math.Pi {
		t.Fatalf("Spin = %f mid-settle, expected it past a full turn", d.Spin)
	}

	d.anims.update(d, 0.25)
	if math.Abs(d.Spin-5.0) > 1e-5 {
		t.Errorf("Spin = %f after the settle finished, want ~5.0 (wrapped)", d.Spin)
	}
}

func TestAnimsUpdateZeroAlloc(t *testing.T) {
	d := newDie(D6, Rect{Width: 100, Height: 100}, Style{})
	d.anims.start(propLift, 1.0, 1.0, ease.Linear)

	// Warm up — first call might differ.
	d.anims.update(d, 0.01)

	result := testing.AllocsPerRun(100, func() {
		d.anims.update(d, 0.001)
	})
	if result > 0 {
		t.Errorf("anims.update allocated %f times per run, want 0", result)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, c := range cases {
		if got := wrapAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("wrapAngle(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
