package dicetray

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default die tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a standard 8-bit color. Components are clamped to [0, 1].
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// WhitePixel is a 1x1 white image used as the texture for all untextured die
// faces; per-face color comes from vertex colors.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle in host-layout coordinates. The
// coordinate system has its origin at the top-left, with Y increasing
// downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Kind selects the polyhedron a die renders.
type Kind uint8

const (
	D4  Kind = iota // four-sided die (tetrahedron)
	D6              // six-sided die (cube)
	D8              // eight-sided die (octahedron)
	D12             // twelve-sided die (dodecahedron)
	D20             // twenty-sided die (icosahedron)
	kindCount
)

// Faces returns the number of faces for this kind.
func (k Kind) Faces() int {
	switch k {
	case D4:
		return 4
	case D6:
		return 6
	case D8:
		return 8
	case D12:
		return 12
	case D20:
		return 20
	default:
		return 0
	}
}

// String returns the conventional dice notation for the kind.
func (k Kind) String() string {
	switch k {
	case D4:
		return "d4"
	case D6:
		return "d6"
	case D8:
		return "d8"
	case D12:
		return "d12"
	case D20:
		return "d20"
	default:
		return "d?"
	}
}

// Style carries per-die visual parameters supplied at registration. The core
// passes these through to the renderer and never interprets them otherwise.
type Style struct {
	// Color tints the die faces. The zero value means ColorWhite.
	Color Color
}

// EventType identifies a kind of die interaction event.
type EventType uint8

const (
	EventStateChange EventType = iota // fires on every visual state transition
	EventHoverStart                   // fires on Idle -> Hovered
	EventHoverEnd                     // fires on Hovered -> Idle
	EventDragStart                    // fires on any state -> Dragged
	EventDragEnd                      // fires on Dragged -> Idle
)

// DieEvent carries state-transition data for the event sink.
type DieEvent struct {
	Type EventType
	Die  *Die
	From DieState
	To   DieState
}

// EntityStore is the interface for optional ECS integration.
// When set on a Tray, die state-transition events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event DieEvent)
}
