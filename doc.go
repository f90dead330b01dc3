// Package dicetray renders interactive 3D dice pinned to 2D layout slots,
// built on [Ebitengine].
//
// Dicetray keeps a polyhedral die visually aligned with each host-layout
// rectangle ("slot") you register, and animates it through idle, hovered,
// and dragged visual states with tweened transitions (via [gween]). The host
// layout can come from anywhere — a UI toolkit, a grid helper, or hand-placed
// rectangles — dicetray only needs to be told when a slot moves.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, a pointer
// adapter, and the frame loop for you:
//
//	tray := dicetray.NewTray()
//	slots := dicetray.Grid{Rows: 2, Cols: 3, Gutter: 16}.Rects(dicetray.Rect{Width: 640, Height: 480})
//	for i, slot := range slots {
//		tray.AddDie(dicetray.Kind(i%5), slot, dicetray.Style{})
//	}
//	dicetray.Run(tray, dicetray.RunConfig{
//		Title: "My Dice", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and drive the tray
// directly — [Tray.Frame] renders and then ticks, and the offscreen result is
// available from [Tray.Surface]:
//
//	type Game struct{ tray *dicetray.Tray }
//
//	func (g *Game) Update() error          { g.tray.Frame(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image)   { s.DrawImage(g.tray.Surface(), nil) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Slots and synchronization
//
// Each [Die] tracks one slot rectangle in host coordinates (origin top-left,
// Y down). The tray unprojects the slot center through the camera so the die
// sits exactly over its slot, whatever the projection. Call [Die.SetSlot]
// when a single slot moves and [Tray.Resize] when the viewport changes; both
// resynchronize immediately.
//
// # Visual states
//
// Hover and drag intent is expressed through two flags, [Die.Hovered] and
// [Die.Dragged], written by the [Pointer] adapter (or by your own input
// code — the flags are plain fields). Each die runs a small state machine
// over them: drag always wins over hover, and releasing a drag settles the
// die with a full bonus turn.
//
// # Key features
//
// Dicetray includes shared geometry for the five classic polyhedral dice,
// a perspective/orthographic camera with slot-scale policies, a software
// triangle renderer with flat shading, synthetic pointer injection for
// display-free tests, tweens (via [gween]), and ECS integration (via
// [Donburi] adapter in dicetray/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dicetray
