package nineslice

import (
	"image"

	"golang.org/x/image/draw"
)

// NinePatch is a texture decoded from an Android 9-Patch image.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
type NinePatch struct {
	// Image is the texture with the 1px marker border cropped away.
	Image *image.NRGBA
	// Spec describes the stretch regions marked along the top and left edges.
	Spec Spec
	// Content is the content padding marked along the bottom and right edges.
	Content Insets
}

// DecodeNinePatch from source image.
//
// Note: Any colored pixel around the border will be considered a 9-Patch
// marker. An edge without markers yields zero insets along that axis, which
// stretches the whole texture.
func DecodeNinePatch(src image.Image) NinePatch {
	var (
		b    = src.Bounds()
		size = b.Size().Sub(image.Pt(2, 2))
	)
	if size.X <= 0 || size.Y <= 0 {
		return NinePatch{Image: image.NewNRGBA(image.Rectangle{})}
	}
	var (
		np    = NinePatch{Spec: Spec{Base: size}}
		right = size.X + 1
		below = size.Y + 1
	)
	if top := walk(src, 0, horizontal); top.IsValid() {
		np.Spec.Insets.Left = top.Start - 1
		np.Spec.Insets.Right = right - top.End
	}
	if left := walk(src, 0, vertical); left.IsValid() {
		np.Spec.Insets.Top = left.Start - 1
		np.Spec.Insets.Bottom = below - left.End
	}
	if bottom := walk(src, below, horizontal); bottom.IsValid() {
		np.Content.Left = bottom.Start - 1
		np.Content.Right = right - bottom.End
	}
	if end := walk(src, right, vertical); end.IsValid() {
		np.Content.Top = end.Start - 1
		np.Content.Bottom = below - end.End
	}
	np.Image = image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(np.Image, np.Image.Bounds(), src, b.Min.Add(image.Pt(1, 1)), draw.Src)
	return np
}

type axis bool

const (
	horizontal axis = false
	vertical   axis = true
)

// line encodes a one-dimensional line.
type line struct {
	Start, End int
}

func (l line) IsValid() bool {
	return l.Start > -1 && l.End > -1
}

// walk pixels in the source image between the corners, along the specified
// axis at the given offset on the cross axis, returning the first run of
// colored pixels. Coordinates are relative to the image origin.
func walk(src image.Image, offset int, ax axis) line {
	var (
		b   = src.Bounds()
		end = b.Dx() - 1
		l   = line{Start: -1, End: -1}
	)
	if ax == vertical {
		end = b.Dy() - 1
	}
	for ii := 1; ii < end; ii++ {
		x, y := ii, offset
		if ax == vertical {
			x, y = offset, ii
		}
		r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
		colored := r > 0 || g > 0 || bl > 0 || a > 0
		if colored && l.Start < 0 {
			l.Start = ii
		}
		if !colored && l.Start > -1 {
			l.End = ii
			break
		}
	}
	if l.Start > -1 && l.End < 0 {
		l.End = end
	}
	return l
}
