package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Checkerboard lays out a widget over a checkerboard, the usual backdrop for
// revealing transparent pixels.
type Checkerboard struct {
	// Cell is the side length of a square. Defaults to 8dp.
	Cell        unit.Dp
	Light, Dark color.NRGBA
}

func (cb Checkerboard) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	cell := gtx.Dp(cb.Cell)
	if cb.Cell == 0 {
		cell = gtx.Dp(8)
	}
	if cell < 1 {
		cell = 1
	}
	bounds := image.Rectangle{Max: dims.Size}
	paint.FillShape(gtx.Ops, cb.Light, clip.Rect(bounds).Op())
	for y := 0; y < dims.Size.Y; y += cell {
		for x := (y / cell % 2) * cell; x < dims.Size.X; x += 2 * cell {
			square := image.Rect(x, y, x+cell, y+cell).Intersect(bounds)
			paint.FillShape(gtx.Ops, cb.Dark, clip.Rect(square).Op())
		}
	}
	call.Add(gtx.Ops)
	return dims
}
