package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~gioverse/jsonui/nineslice"
)

func TestParseSize(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want image.Point
		err  bool
	}{
		{in: "40x40", want: image.Pt(40, 40)},
		{in: "120X8", want: image.Pt(120, 8)},
		{in: " 3 x 2 ", want: image.Pt(3, 2)},
		{in: "1x1", want: image.Pt(1, 1)},
		{in: "0x5", err: true},
		{in: "40", err: true},
		{in: "axb", err: true},
		{in: "", err: true},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if (err != nil) != tt.err {
				t.Fatalf("err: got %v, want error %v", err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlagSpec(t *testing.T) {
	for _, tt := range []struct {
		name        string
		inset, base string
		want        nineslice.Spec
		err         error
	}{
		{
			name:  "scalar inset uses image size",
			inset: "4",
			want:  nineslice.Spec{Insets: nineslice.UniformInsets(4), Base: image.Pt(16, 16)},
		},
		{
			name:  "lists",
			inset: "1,2,3,4",
			base:  "10,12",
			want:  nineslice.Spec{Insets: nineslice.Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}, Base: image.Pt(10, 12)},
		},
		{
			name:  "wrong arity",
			inset: "1,2",
			err:   nineslice.ErrShape,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := flagSpec(tt.inset, tt.base, image.Pt(16, 16))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	var (
		dir  = t.TempDir()
		in   = filepath.Join(dir, "button.png")
		out  = filepath.Join(dir, "out.png")
		red  = color.NRGBA{R: 255, A: 255}
		blue = color.NRGBA{B: 255, A: 255}
		src  = image.NewNRGBA(image.Rect(0, 0, 16, 16))
	)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := blue
			if x < 4 || y < 4 || x >= 12 || y >= 12 {
				c = red
			}
			src.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding: %v", err)
	}
	if err := os.WriteFile(in, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing texture: %v", err)
	}
	desc := `{"nineslice_size": [4, 4, 4, 4], "base_size": [16, 16]}`
	if err := os.WriteFile(filepath.Join(dir, "button.json"), []byte(desc), 0o644); err != nil {
		t.Fatalf("writing description: %v", err)
	}
	var stdout bytes.Buffer
	if err := run([]string{"-in", in, "-out", out, "-size", "40x40", "-scale", "1"}, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "nine-sliced") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(40, 40) {
		t.Fatalf("size: got %v", got)
	}
	for _, tt := range []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, red}, {20, 20, blue}, {39, 39, red}, {3, 20, red}, {4, 20, blue},
	} {
		if got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)); got != tt.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRunErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "missing input", args: []string{"-size", "4x4"}},
		{name: "bad size", args: []string{"-in", "x.png", "-size", "4"}},
		{name: "missing file", args: []string{"-in", filepath.Join(t.TempDir(), "nope.png"), "-size", "4x4"}},
		{name: "bad profile", args: []string{"-in", "x.png", "-size", "4x4", "-profile", "nope"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
