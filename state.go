package dicetray

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DieState is a die's visual state. Dice start in StateIdle; transitions are
// driven purely by the Hovered and Dragged input flags, one step per tick.
type DieState uint8

const (
	StateIdle DieState = iota
	StateHovered
	StateDragged
)

func (s DieState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StateDragged:
		return "dragged"
	}
	return "unknown"
}

// stateFuncs bundles the behavior of one state. enter and exit may be nil;
// update never is.
type stateFuncs struct {
	enter  func(*Die)
	update func(*Die)
	exit   func(*Die)
}

// stateTable maps each state to its behavior. All transition logic lives in
// the update funcs; enter and exit only start and cancel animations. Filled
// in init: the update funcs reach setState, which indexes the table, so a
// composite-literal initializer would form an initialization cycle.
var stateTable [3]stateFuncs

func init() {
	stateTable = [3]stateFuncs{
		StateIdle:    {enter: idleEnter, update: idleUpdate},
		StateHovered: {enter: hoverEnter, update: hoverUpdate, exit: hoverExit},
		StateDragged: {enter: dragEnter, update: dragUpdate, exit: dragExit},
	}
}

const (
	idleSpinStep = 0.01 // radians per tick
	dragSpinMult = 8    // dragged dice spin this many times faster

	hoverScale = 1.1
	dragScale  = 0.9
	hoverLiftY = 0.15
	dragDepthZ = 1.0

	scaleInDur = 0.4 // seconds
	liftOutDur = 0.2
	grabDur    = 0.2
	settleDur  = 0.8
)

// setState runs the exit/enter protocol: current state's exit, reassign,
// new state's enter. Same-state transitions never happen; the update funcs
// only call setState on an actual change.
func (d *Die) setState(s DieState) {
	if s == d.state {
		return
	}
	prev := d.state
	if fn := stateTable[prev].exit; fn != nil {
		fn(d)
	}
	d.state = s
	if fn := stateTable[s].enter; fn != nil {
		fn(d)
	}
	d.emitTransition(prev, s)
}

// emitTransition publishes the state change and any derived edge events to
// the tray's entity store.
func (d *Die) emitTransition(prev, next DieState) {
	if d.tray == nil {
		return
	}
	d.tray.emit(DieEvent{Type: EventStateChange, Die: d, From: prev, To: next})
	switch {
	case next == StateDragged:
		d.tray.emit(DieEvent{Type: EventDragStart, Die: d, From: prev, To: next})
	case prev == StateDragged:
		d.tray.emit(DieEvent{Type: EventDragEnd, Die: d, From: prev, To: next})
	}
	switch {
	case next == StateHovered && prev == StateIdle:
		d.tray.emit(DieEvent{Type: EventHoverStart, Die: d, From: prev, To: next})
	case prev == StateHovered && next == StateIdle:
		d.tray.emit(DieEvent{Type: EventHoverEnd, Die: d, From: prev, To: next})
	}
}

// --- Idle ---

func idleEnter(d *Die) {
	d.anims.start(propScale, 1, scaleInDur, ease.OutQuad)
	d.anims.start(propDepth, 0, scaleInDur, ease.OutQuad)
}

func idleUpdate(d *Die) {
	switch {
	case d.Dragged:
		d.setState(StateDragged)
	case d.Hovered:
		d.setState(StateHovered)
	default:
		d.Spin = wrapAngle(d.Spin + idleSpinStep)
	}
}

// --- Hovered ---

func hoverEnter(d *Die) {
	d.anims.start(propScale, hoverScale, scaleInDur, ease.OutQuad)
	d.anims.start(propLift, hoverLiftY, scaleInDur, ease.OutQuad)
}

func hoverUpdate(d *Die) {
	switch {
	case d.Dragged: // drag wins over hover
		d.setState(StateDragged)
	case !d.Hovered:
		d.setState(StateIdle)
	}
}

func hoverExit(d *Die) {
	d.anims.start(propLift, 0, liftOutDur, ease.OutQuad)
}

// --- Dragged ---

func dragEnter(d *Die) {
	d.anims.cancel(propSpin)
	d.anims.cancel(propScale)
	d.anims.start(propScale, dragScale, grabDur, ease.OutQuad)
	d.anims.start(propDepth, dragDepthZ, grabDur, ease.OutQuad)
}

func dragUpdate(d *Die) {
	if !d.Dragged {
		// Always back to idle on release, even while still hovered; the
		// next tick promotes to hovered if the cursor stayed on the die.
		d.setState(StateIdle)
		return
	}
	d.Spin = wrapAngle(d.Spin + idleSpinStep*dragSpinMult)
}

func dragExit(d *Die) {
	d.anims.cancel(propSpin)
	d.anims.cancel(propScale)
	// Settle with one extra full turn. Spin may transiently exceed 2π while
	// the tween runs; it is normalized when the tween completes.
	d.anims.start(propSpin, d.Spin+2*math.Pi, settleDur, ease.OutQuad)
}
