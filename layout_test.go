package dicetray

import "testing"

func TestGridRowMajorOrder(t *testing.T) {
	rects := Grid{Rows: 2, Cols: 3}.Rects(Rect{Width: 300, Height: 200})

	if len(rects) != 6 {
		t.Fatalf("len(rects) = %d, want 6", len(rects))
	}
	// Row-major: the second rect is to the right of the first, the fourth
	// starts a new row.
	if rects[1].X <= rects[0].X || rects[1].Y != rects[0].Y {
		t.Error("rects are not laid out left to right within a row")
	}
	if rects[3].X != rects[0].X || rects[3].Y <= rects[0].Y {
		t.Error("the fourth rect does not start the second row")
	}
}

func TestGridEqualCells(t *testing.T) {
	rects := Grid{Rows: 2, Cols: 4}.Rects(Rect{Width: 400, Height: 200})

	for i, r := range rects {
		if r.Width != 100 || r.Height != 100 {
			t.Errorf("cell %d is %fx%f, want 100x100", i, r.Width, r.Height)
		}
	}
}

func TestGridGutterAndPadding(t *testing.T) {
	g := Grid{Rows: 1, Cols: 2, Gutter: 10, Padding: 20}
	rects := g.Rects(Rect{X: 100, Y: 50, Width: 250, Height: 100})

	// Width left for cells: 250 - 2*20 - 10 = 200 -> 100 each.
	if rects[0].Width != 100 {
		t.Errorf("cell width = %f, want 100", rects[0].Width)
	}
	if rects[0].X != 120 {
		t.Errorf("first cell X = %f, want bounds.X + padding = 120", rects[0].X)
	}
	if got := rects[1].X - (rects[0].X + rects[0].Width); got != 10 {
		t.Errorf("gap between cells = %f, want the 10px gutter", got)
	}
	if rects[0].Y != 70 {
		t.Errorf("first cell Y = %f, want bounds.Y + padding = 70", rects[0].Y)
	}
}

func TestGridPanicsOnNonPositiveDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Grid with zero Cols did not panic")
		}
	}()
	Grid{Rows: 1, Cols: 0}.Rects(Rect{Width: 100, Height: 100})
}
