package dicetray

// pointerEvent is a single injected pointer sample: a position plus the
// logical button state at that moment.
type pointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next Update call.
func (p *Pointer) InjectPress(x, y float64) {
	p.injectPressed = true
	p.queue = append(p.queue, pointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at the given screen coordinates. The
// button state carries over from the preceding injected press or release,
// so a move after InjectPress continues a drag and a move on its own
// simulates hovering.
func (p *Pointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, pointerEvent{x: x, y: y, pressed: p.injectPressed})
}

// InjectRelease queues a left-button release at the given screen
// coordinates.
func (p *Pointer) InjectRelease(x, y float64) {
	p.injectPressed = false
	p.queue = append(p.queue, pointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two Update calls.
func (p *Pointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate updates, and
// release at (toX, toY). The whole sequence consumes frames Update calls.
// Minimum frames is 2 (press + release).
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// popInjected pops and applies one queued event. Returns true if an event
// was consumed (real mouse input should be skipped this update).
func (p *Pointer) popInjected() bool {
	if len(p.queue) == 0 {
		return false
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	p.apply(evt.x, evt.y, evt.pressed)
	return true
}
