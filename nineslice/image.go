package nineslice

import (
	"image"

	"golang.org/x/image/draw"
)

// ResizeImage resamples src into a new width x height image.
//
// If spec.Base is zero the bounds of src are used as the base size. A base
// size that differs from the bounds of src describes a pre-scaled texture:
// src is first resampled to the base size so the insets address the pixels
// they were measured on.
func ResizeImage(spec Spec, src *image.NRGBA, width, height int, uiScale float64) *image.NRGBA {
	var pix []byte
	if src != nil {
		if spec.Base == (image.Point{}) {
			spec.Base = src.Bounds().Size()
		}
		spec, pix = logical(spec.Normalize(), src)
	}
	if width < 0 || height < 0 || (height > 0 && width > maxPixels/height) {
		width, height = 0, 0
	}
	return &image.NRGBA{
		Pix:    Resize(spec, pix, width, height, uiScale),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// logical returns the pixels of src in the coordinate space of spec.Base.
//
// A base too large to materialize is mapped the other way: the insets are
// scaled into the pixel space of src.
func logical(spec Spec, src *image.NRGBA) (Spec, []byte) {
	size := src.Bounds().Size()
	if spec.Base == size || size.X <= 0 || size.Y <= 0 {
		return spec, Pixels(src)
	}
	if spec.Base.X > 0 && spec.Base.Y > 0 && spec.Base.X <= maxPixels/spec.Base.Y {
		dst := image.NewNRGBA(image.Rectangle{Max: spec.Base})
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return spec, dst.Pix
	}
	scaled := Spec{
		Insets: Insets{
			Left:   rescale(spec.Insets.Left, size.X, spec.Base.X),
			Top:    rescale(spec.Insets.Top, size.Y, spec.Base.Y),
			Right:  rescale(spec.Insets.Right, size.X, spec.Base.X),
			Bottom: rescale(spec.Insets.Bottom, size.Y, spec.Base.Y),
		},
		Base: size,
	}
	return scaled.Normalize(), Pixels(src)
}

// rescale maps v from a span of length from onto a span of length to.
func rescale(v, to, from int) int {
	if from <= 0 {
		return 0
	}
	return int((int64(v)*int64(to) + int64(from)/2) / int64(from))
}

// Pixels returns the packed, non-premultiplied RGBA buffer of img.
//
// An *image.NRGBA that is already packed at the origin is returned without
// copying; callers must not modify the result.
func Pixels(img image.Image) []byte {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && nrgba.Stride == b.Dx()*4 {
		return nrgba.Pix[:b.Dx()*b.Dy()*4]
	}
	out := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out.Pix
}
