package widget

import (
	"image"

	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation.
type CachedImage struct {
	op  paint.ImageOp
	src image.Image
}

// Cache the image if it is not already.
//
// The image operation is re-computed only when src is a different image than
// the one cached. Images must not be mutated after caching.
func (img *CachedImage) Cache(src image.Image) {
	if src == nil || src == img.src {
		return
	}
	img.op = paint.NewImageOp(src)
	img.src = src
}

// Op returns the concrete image operation.
func (img CachedImage) Op() paint.ImageOp {
	return img.op
}
