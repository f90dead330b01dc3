package dicetray

// Grid splits a rectangle into Rows x Cols equal cells. It is a convenience
// for tests and demos; any external layout system can feed slot rectangles
// to the tray directly.
type Grid struct {
	Rows, Cols int

	// Gutter is the spacing between adjacent cells; Padding is the inset
	// from the bounds on all four sides. Both in pixels.
	Gutter  float64
	Padding float64
}

// Rects returns the cell rectangles in row-major order. Panics if Rows or
// Cols is not positive.
func (g Grid) Rects(bounds Rect) []Rect {
	if g.Rows <= 0 || g.Cols <= 0 {
		panic("dicetray: Grid needs positive Rows and Cols")
	}
	cellW := (bounds.Width - 2*g.Padding - float64(g.Cols-1)*g.Gutter) / float64(g.Cols)
	cellH := (bounds.Height - 2*g.Padding - float64(g.Rows-1)*g.Gutter) / float64(g.Rows)

	rects := make([]Rect, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			rects = append(rects, Rect{
				X:      bounds.X + g.Padding + float64(c)*(cellW+g.Gutter),
				Y:      bounds.Y + g.Padding + float64(r)*(cellH+g.Gutter),
				Width:  cellW,
				Height: cellH,
			})
		}
	}
	return rects
}
