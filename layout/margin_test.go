package layout

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func TestVerticalMarginRows(t *testing.T) {
	var ops op.Ops
	gtx := layout.Context{
		Ops:         &ops,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(100, 1000)),
	}
	gtx.Constraints.Min = image.Point{}
	row := func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(50, 10)}
	}
	dims := VerticalMargin().Rows(gtx, row, row, row)
	// Three 10px rows, each with 4px above and below.
	if want := image.Pt(50, 54); dims.Size != want {
		t.Fatalf("got %v, want %v", dims.Size, want)
	}
}
