package dicetray

import "github.com/hajimehoshi/ebiten/v2"

// Pointer turns mouse input into the Hovered and Dragged flags the state
// machine consumes. It never changes die state itself: it only rewrites
// flags, and the next Step picks them up. Hit testing is against the 2D
// layout slots, not the projected 3D shapes, so a die is grabbable exactly
// where its layout cell is.
//
// Call Update once per frame, before the tray's Step. Injected events take
// priority over real input, one per Update.
type Pointer struct {
	tray *Tray

	x, y   float64
	down   bool
	active *Die // the die being dragged, nil outside a drag

	queue         []pointerEvent
	injectPressed bool
}

// NewPointer creates a pointer bound to a tray.
func NewPointer(t *Tray) *Pointer {
	return &Pointer{tray: t}
}

// Update consumes one injected event if any are queued, otherwise samples
// the real cursor and left mouse button, and rewrites every die's input
// flags accordingly.
func (p *Pointer) Update() {
	if p.popInjected() {
		return
	}
	mx, my := ebiten.CursorPosition()
	p.apply(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Position returns the last sampled pointer position in screen pixels.
func (p *Pointer) Position() (x, y float64) {
	return p.x, p.y
}

// Active returns the die currently being dragged, or nil.
func (p *Pointer) Active() *Die {
	return p.active
}

// apply processes one pointer sample. A press edge over a die starts a
// drag; the drag sticks to that die until the release edge, no matter
// where the pointer moves in between. Hover always tracks the topmost die
// under the cursor.
func (p *Pointer) apply(x, y float64, pressed bool) {
	p.x, p.y = x, y
	hit := p.hitTest(x, y)

	if pressed && !p.down && hit != nil {
		p.active = hit
		hit.Dragged = true
	}
	if !pressed && p.down && p.active != nil {
		p.active.Dragged = false
		p.active = nil
	}
	p.down = pressed

	for _, d := range p.tray.dice {
		d.Hovered = d == hit
	}
}

// hitTest returns the topmost die whose slot contains the point. Later
// dice draw on top of earlier ones, so the scan runs back to front.
func (p *Pointer) hitTest(x, y float64) *Die {
	dice := p.tray.dice
	for i := len(dice) - 1; i >= 0; i-- {
		if dice[i].Slot.Contains(x, y) {
			return dice[i]
		}
	}
	return nil
}
