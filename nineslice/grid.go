package nineslice

import "image"

// Grid describes a rectangle divided into a 3x3 grid by 4 lines.
type Grid struct {
	// Size specifies the total dimensions including static and stretch regions.
	Size image.Point
	// X1 is the distance in pixels before the stretchable region along the X axis.
	// X2 is the distance in pixels after the stretchable region along the X axis.
	X1, X2 int
	// Y1 is the distance in pixels before the stretchable region along the Y axis.
	// Y2 is the distance in pixels after the stretchable region along the Y axis.
	Y1, Y2 int
}

// Static returns the statically known dimensions (the corners).
func (g Grid) Static() image.Point {
	return image.Point{
		X: g.X1 + g.X2,
		Y: g.Y1 + g.Y2,
	}
}

// Stretch returns the stretch dimensions (the space between the corners).
func (g Grid) Stretch() image.Point {
	stretch := g.Size.Sub(g.Static())
	if stretch.X < 0 {
		stretch.X = 0
	}
	if stretch.Y < 0 {
		stretch.Y = 0
	}
	return stretch
}

// Cells returns the nine cells of the grid in row-major order: top-left,
// top, top-right, left, center, right, bottom-left, bottom, bottom-right.
//
// Cells never overlap and, when the grid is consistent (Static fits within
// Size), tile the whole rectangle.
func (g Grid) Cells() [9]image.Rectangle {
	var (
		xs = [4]int{0, g.X1, g.X1 + g.Stretch().X, g.Size.X}
		ys = [4]int{0, g.Y1, g.Y1 + g.Stretch().Y, g.Size.Y}
	)
	var cells [9]image.Rectangle
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cells[row*3+col] = image.Rect(xs[col], ys[row], xs[col+1], ys[row+1])
		}
	}
	return cells
}

// fit shrinks the bands of g proportionally so that they fit within Size,
// leaving no stretch region. Grids that already fit are returned unchanged.
func (g Grid) fit() Grid {
	g.X1, g.X2 = fitBands(g.X1, g.X2, g.Size.X)
	g.Y1, g.Y2 = fitBands(g.Y1, g.Y2, g.Size.Y)
	return g
}

func fitBands(before, after, length int) (int, int) {
	if length <= 0 {
		return 0, 0
	}
	if before+after <= length {
		return before, after
	}
	before = int(int64(before) * int64(length) / int64(before+after))
	return before, length - before
}
