package nineslice

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func ringImage(size, inset int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{B: 255, A: 255}
			if x < inset || y < inset || x >= size-inset || y >= size-inset {
				c = color.NRGBA{R: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResizeImageBaseSize(t *testing.T) {
	var (
		red  = color.NRGBA{R: 255, A: 255}
		blue = color.NRGBA{B: 255, A: 255}
	)
	halves := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := red
			if x >= 16 {
				c = blue
			}
			halves.SetNRGBA(x, y, c)
		}
	}
	type probe struct {
		x, y int
		want color.NRGBA
	}
	for _, tt := range []struct {
		name   string
		spec   Spec
		src    *image.NRGBA
		size   image.Point
		pixels []probe
	}{
		{
			name: "base matches image",
			spec: Spec{Insets: UniformInsets(4), Base: image.Pt(16, 16)},
			src:  ringImage(16, 4),
			size: image.Pt(40, 40),
			pixels: []probe{
				{0, 0, red}, {3, 20, red}, {4, 20, blue}, {20, 20, blue}, {39, 39, red},
			},
		},
		{
			name: "zero base uses image size",
			spec: Spec{Insets: UniformInsets(4)},
			src:  ringImage(16, 4),
			size: image.Pt(40, 40),
			pixels: []probe{
				{3, 20, red}, {4, 20, blue}, {36, 20, red},
			},
		},
		{
			name: "pre-scaled source",
			spec: Spec{Insets: UniformInsets(4), Base: image.Pt(16, 16)},
			src:  ringImage(32, 8),
			size: image.Pt(40, 40),
			pixels: []probe{
				{0, 0, red}, {3, 20, red}, {4, 20, blue}, {35, 20, blue}, {36, 20, red}, {39, 39, red},
			},
		},
		{
			name: "pre-scaled stretch keeps rows intact",
			spec: Spec{Base: image.Pt(16, 16)},
			src:  halves,
			size: image.Pt(32, 32),
			pixels: []probe{
				{0, 0, red}, {31, 0, blue}, {0, 1, red}, {31, 1, blue},
				{0, 2, red}, {31, 2, blue}, {15, 17, red}, {16, 17, blue},
			},
		},
		{
			name: "base too large to materialize",
			spec: Spec{Insets: UniformInsets(1 << 20), Base: image.Pt(1<<22, 1<<22)},
			src:  ringImage(16, 4),
			size: image.Pt(40, 40),
			pixels: []probe{
				{3, 20, red}, {4, 20, blue}, {20, 20, blue}, {36, 20, red},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			img := ResizeImage(tt.spec, tt.src, tt.size.X, tt.size.Y, 1)
			if got := img.Bounds().Size(); got != tt.size {
				t.Fatalf("size: got %v, want %v", got, tt.size)
			}
			for _, p := range tt.pixels {
				if got := img.NRGBAAt(p.x, p.y); got != p.want {
					t.Errorf("pixel (%d,%d): got %v, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestResizeImageOversizedTarget(t *testing.T) {
	spec := Spec{Insets: UniformInsets(4), Base: image.Pt(16, 16)}
	for _, size := range []image.Point{
		{X: math.MaxInt32, Y: math.MaxInt32},
		{X: math.MaxInt, Y: 1},
		{X: -3, Y: 10},
	} {
		img := ResizeImage(spec, ringImage(16, 4), size.X, size.Y, 1)
		if !img.Bounds().Empty() || len(img.Pix) != 0 {
			t.Fatalf("%v: got bounds %v with %d bytes, want empty", size, img.Bounds(), len(img.Pix))
		}
	}
}
