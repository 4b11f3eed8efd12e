// Package nineslice implements nine-slice texture resampling as performed by
// the Minecraft Bedrock json-ui renderer.
//
// A nine-slice texture is divided into a 3x3 grid by four insets. When the
// texture is resized the corners keep their size, the edges stretch along one
// axis and the center stretches along both. Every cell is resampled
// independently with nearest-neighbor sampling, so pixel art stays crisp.
//
// The border thickness on screen is derived from the source insets and the
// UI scale alone, never from the ratio of target to source size.
package nineslice

import (
	"image"
	"math"
)

// DefaultUIScale is the UI scale used by the editor until the user changes it.
const DefaultUIScale = 0.5

// maxBand caps scaled band thickness so tiny UI scales cannot overflow.
const maxBand = 1 << 24

// maxPixels caps the pixel count of a buffer Resize allocates (1GiB of RGBA).
const maxPixels = 1 << 28

// Insets are the pixel widths of the four border bands of a nine-slice
// texture, measured in source pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// UniformInsets returns Insets with v on all four sides.
func UniformInsets(v int) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Spec describes how a source bitmap decomposes into nine regions.
type Spec struct {
	Insets Insets
	// Base is the logical size of the source bitmap the insets are measured
	// against. The source pixel buffer is expected to have this size.
	Base image.Point
}

// Normalize returns the spec with negative values raised to zero and insets
// shrunk until the bands on each axis fit within Base. Right and bottom give
// way before left and top.
func (s Spec) Normalize() Spec {
	s.Base.X = clamp(s.Base.X, 0, math.MaxInt32)
	s.Base.Y = clamp(s.Base.Y, 0, math.MaxInt32)
	in := &s.Insets
	in.Left = clamp(in.Left, 0, s.Base.X)
	in.Right = clamp(in.Right, 0, s.Base.X-in.Left)
	in.Top = clamp(in.Top, 0, s.Base.Y)
	in.Bottom = clamp(in.Bottom, 0, s.Base.Y-in.Top)
	return s
}

// Grid returns the source grid of the spec. The spec should be normalized.
func (s Spec) Grid() Grid {
	return Grid{
		Size: s.Base,
		X1:   s.Insets.Left, X2: s.Insets.Right,
		Y1: s.Insets.Top, Y2: s.Insets.Bottom,
	}
}

// Region pairs a source cell with the destination rectangle it is stretched
// onto.
type Region struct {
	Src, Dst image.Rectangle
}

// Empty reports whether the region has nothing to sample or nowhere to write.
func (r Region) Empty() bool {
	return r.Src.Empty() || r.Dst.Empty()
}

// Plan computes the nine regions for resizing spec to target.
//
// Destination band thickness is round(band / uiScale). If the bands along an
// axis do not fit the target they are shrunk proportionally and the stretch
// cells collapse to nothing, so the destination cells always partition the
// target rectangle. A uiScale that is not a positive finite number is
// treated as 1.
//
// Corners keep their source pixels only while the target is at least as
// large as the combined scaled bands; below that they shrink with it.
func Plan(spec Spec, target image.Point, uiScale float64) [9]Region {
	spec = spec.Normalize()
	scale := sanitizeScale(uiScale)
	target.X = clamp(target.X, 0, math.MaxInt32)
	target.Y = clamp(target.Y, 0, math.MaxInt32)
	src := spec.Grid()
	dst := Grid{
		Size: target,
		X1:   scaleBand(src.X1, scale), X2: scaleBand(src.X2, scale),
		Y1: scaleBand(src.Y1, scale), Y2: scaleBand(src.Y2, scale),
	}.fit()
	var (
		srcCells = src.Cells()
		dstCells = dst.Cells()
		plan     [9]Region
	)
	for ii := range plan {
		plan[ii] = Region{Src: srcCells[ii], Dst: dstCells[ii]}
	}
	return plan
}

// Resize resamples src, a packed RGBA buffer of spec.Base dimensions, into a
// newly allocated width x height RGBA buffer.
//
// Resize never panics for any input. Degenerate regions are skipped, leaving
// their pixels transparent, and sample coordinates are clamped into the
// source. A non-positive width or height, or a target of more than
// maxPixels pixels, yields an empty buffer. src is never modified.
func Resize(spec Spec, src []byte, width, height int, uiScale float64) []byte {
	if width <= 0 || height <= 0 || width > maxPixels/height {
		return []byte{}
	}
	spec = spec.Normalize()
	dst := make([]byte, width*height*4)
	for _, r := range Plan(spec, image.Pt(width, height), uiScale) {
		if r.Empty() {
			continue
		}
		r.blit(dst, width, height, src, spec.Base)
	}
	return dst
}

// blit stretches the source cell onto the destination rectangle using
// nearest-neighbor sampling. Destination pixels outside width x height are
// discarded.
func (r Region) blit(dst []byte, width, height int, src []byte, base image.Point) {
	var (
		sw, sh = r.Src.Dx(), r.Src.Dy()
		dw, dh = r.Dst.Dx(), r.Dst.Dy()
	)
	for dy := 0; dy < dh; dy++ {
		y := r.Dst.Min.Y + dy
		if y < 0 || y >= height {
			continue
		}
		sy := r.Src.Min.Y + sample(dy, sh, dh)
		for dx := 0; dx < dw; dx++ {
			x := r.Dst.Min.X + dx
			if x < 0 || x >= width {
				continue
			}
			sx := r.Src.Min.X + sample(dx, sw, dw)
			px := pixelAt(src, base, sx, sy)
			copy(dst[(y*width+x)*4:], px[:])
		}
	}
}

// sample maps an offset within a destination span onto the source span.
func sample(off, srcLen, dstLen int) int {
	if srcLen <= 1 || dstLen <= 0 {
		return 0
	}
	return clamp(off*srcLen/dstLen, 0, srcLen-1)
}

// opaque is returned for pixels that cannot be indexed at all.
var opaque = [4]byte{0, 0, 0, 255}

// pixelAt reads the pixel at (x, y), clamping the coordinate into the base
// rectangle.
func pixelAt(src []byte, base image.Point, x, y int) [4]byte {
	if base.X <= 0 || base.Y <= 0 {
		return opaque
	}
	x = clamp(x, 0, base.X-1)
	y = clamp(y, 0, base.Y-1)
	idx := y*base.X + x
	if idx < 0 || idx >= len(src)/4 {
		return opaque
	}
	ii := idx * 4
	return [4]byte{src[ii], src[ii+1], src[ii+2], src[ii+3]}
}

func sanitizeScale(s float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return 1
	}
	return s
}

func scaleBand(band int, scale float64) int {
	v := math.Round(float64(band) / scale)
	if v > maxBand {
		return maxBand
	}
	return int(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
