package widget

import (
	"image"
	"testing"

	"git.sr.ht/~gioverse/jsonui/nineslice"
	"git.sr.ht/~gioverse/jsonui/texture"
)

func TestSurfaceImage(t *testing.T) {
	var (
		a = texture.Placeholder("a")
		b = texture.Placeholder("b")
		s = Surface{Texture: a, UIScale: 1}
	)
	first := s.Image(image.Pt(40, 20))
	if got := first.Bounds().Size(); got != image.Pt(40, 20) {
		t.Fatalf("size: got %v", got)
	}
	for _, tt := range []struct {
		name    string
		mutate  func()
		size    image.Point
		changed bool
	}{
		{name: "unchanged", mutate: func() {}, size: image.Pt(40, 20), changed: false},
		{name: "resized", mutate: func() {}, size: image.Pt(41, 20), changed: true},
		{name: "same size again", mutate: func() {}, size: image.Pt(41, 20), changed: false},
		{name: "ui scale", mutate: func() { s.UIScale = nineslice.DefaultUIScale }, size: image.Pt(41, 20), changed: true},
		{name: "texture swap", mutate: func() { s.Texture = b }, size: image.Pt(41, 20), changed: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			prev := s.rendered
			tt.mutate()
			got := s.Image(tt.size)
			if changed := got != prev; changed != tt.changed {
				t.Fatalf("re-rendered: got %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestCachedImage(t *testing.T) {
	var (
		img CachedImage
		a   = image.NewNRGBA(image.Rect(0, 0, 2, 2))
		b   = image.NewNRGBA(image.Rect(0, 0, 3, 3))
	)
	img.Cache(a)
	if got := img.Op().Size(); got != image.Pt(2, 2) {
		t.Fatalf("size: got %v", got)
	}
	img.Cache(nil)
	if got := img.Op().Size(); got != image.Pt(2, 2) {
		t.Fatalf("nil image replaced cache, size %v", got)
	}
	img.Cache(b)
	if got := img.Op().Size(); got != image.Pt(3, 3) {
		t.Fatalf("size: got %v", got)
	}
}
