/*
Package debug provides tools for inspecting nine-slice layouts.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"git.sr.ht/~gioverse/jsonui/nineslice"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Regions traces a 1px outline around the destination rectangle of every
// non-empty region of plan, on top of the provided widget.
func Regions(gtx C, plan [9]nineslice.Region, c color.NRGBA, w layout.Widget) D {
	dims := w(gtx)
	for _, r := range plan {
		if r.Dst.Empty() {
			continue
		}
		for _, edge := range Outline(r.Dst) {
			paint.FillShape(gtx.Ops, c, clip.Rect(edge).Op())
		}
	}
	return dims
}

// Outline returns the four 1px edges of r.
func Outline(r image.Rectangle) [4]image.Rectangle {
	return [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
}
