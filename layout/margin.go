package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// VerticalMarginStyle insets a widget equally on its top and bottom edges.
// Wrapping each row of a control panel in the same margin keeps the rows
// evenly spaced.
type VerticalMarginStyle struct {
	Size unit.Dp
}

// VerticalMargin configures a vertical margin with a sensible default.
func VerticalMargin() VerticalMarginStyle {
	return VerticalMarginStyle{
		Size: unit.Dp(4),
	}
}

// Layout w within the margin and return their combined dimensions.
func (v VerticalMarginStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Inset{
		Top:    v.Size,
		Bottom: v.Size,
	}.Layout(gtx, w)
}

// Rows lays out each widget vertically, wrapped in the margin.
func (v VerticalMarginStyle) Rows(gtx layout.Context, rows ...layout.Widget) layout.Dimensions {
	children := make([]layout.FlexChild, len(rows))
	for ii := range rows {
		w := rows[ii]
		children[ii] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.Layout(gtx, w)
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}
