package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"git.sr.ht/~gioverse/jsonui/texture"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Surface is a texture themed rectangle container. The texture is resampled
// to exactly the size of the content, so it paints without further scaling.
type Surface struct {
	Texture *texture.Texture
	// UIScale is read on every layout; changing it re-renders the texture.
	UIScale float64

	cache    CachedImage
	rendered *image.NRGBA
	tex      *texture.Texture
	size     image.Point
	scale    float64
}

// Image returns the texture rendered at size.
//
// Rendering happens only when the size, UI scale or texture changed since
// the previous call, which keeps drag-resizing to one resample per frame.
func (s *Surface) Image(size image.Point) *image.NRGBA {
	if s.rendered != nil && s.tex == s.Texture && s.size == size && s.scale == s.UIScale {
		return s.rendered
	}
	s.rendered = s.Texture.Render(size, s.UIScale)
	s.tex, s.size, s.scale = s.Texture, size, s.UIScale
	return s.rendered
}

// Layout content atop the texture.
func (s *Surface) Layout(gtx C, w layout.Widget) D {
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(func(gtx C) D {
			size := gtx.Constraints.Min
			if size.X <= 0 || size.Y <= 0 {
				return D{Size: size}
			}
			defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
			s.cache.Cache(s.Image(size))
			s.cache.Op().Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return D{Size: size}
		}),
		layout.Stacked(w),
	)
}
