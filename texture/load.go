package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"strings"

	"git.sr.ht/~gioverse/jsonui/async"
	"git.sr.ht/~gioverse/jsonui/nineslice"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ninePatchExt marks Android 9-Patch images.
const ninePatchExt = ".9.png"

// extensions lists the image formats Load decodes.
var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// Load decodes every texture in fsys, scheduling the decoding on s.
//
// A texture's nine-slice description is read from a JSON file with the same
// name next to it; 9-Patch images carry their own. Files that fail to decode
// are logged and skipped. Load fails only if fsys cannot be walked or ctx is
// done.
func Load(ctx context.Context, fsys fs.FS, s async.Scheduler) (*Cache, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && extensions[strings.ToLower(path.Ext(p))] {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking textures: %w", err)
	}
	cache := NewCache()
	errs := async.Run(ctx, s, len(files), func(ctx context.Context, ii int) error {
		t, err := LoadFile(fsys, files[ii])
		if err != nil {
			return err
		}
		cache.Put(t)
		return nil
	})
	for ii, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("loading textures: %w", err)
		}
		log.Printf("texture: skipping %s: %v", files[ii], err)
	}
	return cache, nil
}

// LoadFile decodes the texture at path p of fsys along with its nine-slice
// description.
func LoadFile(fsys fs.FS, p string) (*Texture, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if strings.HasSuffix(strings.ToLower(p), ninePatchExt) {
		np := nineslice.DecodeNinePatch(img)
		return &Texture{
			Name:  p[:len(p)-len(ninePatchExt)],
			Image: np.Image,
			Spec:  &np.Spec,
		}, nil
	}
	var (
		name = strings.TrimSuffix(p, path.Ext(p))
		t    = &Texture{Name: name, Image: toNRGBA(img)}
	)
	data, err := fs.ReadFile(fsys, name+".json")
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		log.Printf("texture: reading description of %s: %v", name, err)
	default:
		preset, err := nineslice.ParsePreset(data)
		if err != nil {
			log.Printf("texture: %s: %v", name, err)
			break
		}
		if spec, ok := preset.Spec(t.Image.Bounds().Size()); ok {
			t.Spec = &spec
		}
	}
	return t, nil
}

// toNRGBA returns img as an *image.NRGBA anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	return &image.NRGBA{
		Pix:    nineslice.Pixels(img),
		Stride: b.Dx() * 4,
		Rect:   image.Rectangle{Max: b.Size()},
	}
}
