// Package texture caches decoded textures and renders them at arbitrary
// sizes, nine-sliced when the texture carries a nine-slice description.
package texture

import (
	"hash/fnv"
	"image"
	"image/color"
	"sort"
	"strings"
	"sync"

	"git.sr.ht/~gioverse/jsonui/nineslice"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Texture is a decoded texture.
type Texture struct {
	// Name identifies the texture, the path relative to the textures
	// directory without extension, e.g. "ui/button".
	Name  string
	Image *image.NRGBA
	// Spec is nil for textures that stretch as a whole.
	Spec *nineslice.Spec
}

// Render the texture at size. Dimensions below 1 are raised to 1.
func (t *Texture) Render(size image.Point, uiScale float64) *image.NRGBA {
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	if t == nil || t.Image == nil {
		return image.NewNRGBA(image.Rectangle{Max: size})
	}
	if t.Spec != nil {
		return nineslice.ResizeImage(*t.Spec, t.Image, size.X, size.Y, uiScale)
	}
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), t.Image, t.Image.Bounds(), draw.Src, nil)
	return dst
}

// Cache maps texture names to textures. It is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	textures map[string]*Texture
}

// NewCache allocates an empty Cache.
func NewCache() *Cache {
	return &Cache{textures: make(map[string]*Texture)}
}

// Put stores t under its name, replacing any previous texture.
func (c *Cache) Put(t *Texture) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textures[t.Name] = t
}

// Get returns the texture stored under name. json-ui style references with a
// leading "textures/" are accepted.
func (c *Cache) Get(name string) (*Texture, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.textures[strings.TrimPrefix(name, "textures/")]
	return t, ok
}

// Lookup is Get falling back to a placeholder for unknown names.
func (c *Cache) Lookup(name string) *Texture {
	if t, ok := c.Get(name); ok {
		return t
	}
	return Placeholder(name)
}

// Names returns the sorted names of all cached textures.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.textures))
	for name := range c.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPresets gives textures without a nine-slice description the preset
// registered under their name.
func (c *Cache) ApplyPresets(presets map[string]nineslice.Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, p := range presets {
		t, ok := c.textures[name]
		if !ok || t.Spec != nil {
			continue
		}
		if spec, ok := p.Spec(t.Image.Bounds().Size()); ok {
			t.Spec = &spec
		}
	}
}

// Placeholder sizing.
const (
	placeholderSize  = 16
	placeholderInset = 3
)

// Placeholder returns a nine-slice texture standing in for a missing one.
// The colors are derived from the name, so a given name always looks the same.
func Placeholder(name string) *Texture {
	h := fnv.New32a()
	h.Write([]byte(name))
	var (
		hue    = float64(h.Sum32() % 360)
		border = ToNRGBA(colorful.Hsv(hue, 0.6, 0.55))
		fill   = ToNRGBA(colorful.Hsv(hue, 0.25, 0.95))
		img    = image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	)
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			c := fill
			if x < placeholderInset || y < placeholderInset ||
				x >= placeholderSize-placeholderInset || y >= placeholderSize-placeholderInset {
				c = border
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return &Texture{
		Name:  name,
		Image: img,
		Spec: &nineslice.Spec{
			Insets: nineslice.UniformInsets(placeholderInset),
			Base:   image.Pt(placeholderSize, placeholderSize),
		},
	}
}

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
