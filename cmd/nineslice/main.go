// Command nineslice resamples a texture to a target size the way json-ui
// renders it, and writes the result as PNG.
//
// Usage:
//
//	nineslice -in textures/ui/button.png -size 120x40 -out button.png
//
// The nine-slice description is read from the JSON file next to the texture
// unless -inset is given. Android 9-Patch images (*.9.png) describe
// themselves. Textures without a description are stretched as a whole.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~gioverse/jsonui/config"
	"git.sr.ht/~gioverse/jsonui/nineslice"
	"git.sr.ht/~gioverse/jsonui/profile"
	"git.sr.ht/~gioverse/jsonui/texture"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nineslice: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// options are the parsed command line flags.
type options struct {
	config  string
	in      string
	out     string
	size    image.Point
	scale   float64
	inset   string
	base    string
	profile string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts options
		size string
		fs   = flag.NewFlagSet("nineslice", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "YAML configuration file")
	fs.StringVar(&opts.in, "in", "", "texture to resample (png, bmp, webp, jpeg or .9.png)")
	fs.StringVar(&opts.out, "out", "out.png", "output PNG file")
	fs.StringVar(&size, "size", "", "target size as WIDTHxHEIGHT")
	fs.Float64Var(&opts.scale, "scale", 0, "UI scale (defaults to the configured ui_scale)")
	fs.StringVar(&opts.inset, "inset", "", "nine-slice insets: N or LEFT,TOP,RIGHT,BOTTOM")
	fs.StringVar(&opts.base, "base", "", "nine-slice base size: N or WIDTH,HEIGHT")
	fs.StringVar(&opts.profile, "profile", "", "profile the run: cpu, mem, block, goroutine, mutex, trace")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.in == "" {
		return options{}, errors.New("-in is required")
	}
	sz, err := parseSize(size)
	if err != nil {
		return options{}, err
	}
	opts.size = sz
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if opts.config != "" {
		if cfg, err = config.Load(opts.config); err != nil {
			return err
		}
	}
	if opts.scale == 0 {
		opts.scale = cfg.UIScale
	}
	if opts.profile == "" {
		opts.profile = cfg.Profile
	}
	popt, err := profile.ParseOpt(opts.profile)
	if err != nil {
		return err
	}
	profiler := popt.NewProfiler()
	profiler.Start()
	defer profiler.Stop()

	tex, err := texture.LoadFile(os.DirFS(filepath.Dir(opts.in)), filepath.Base(opts.in))
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.in, err)
	}
	if opts.inset != "" {
		spec, err := flagSpec(opts.inset, opts.base, tex.Image.Bounds().Size())
		if err != nil {
			return err
		}
		tex.Spec = &spec
	} else if p, ok := cfg.Presets[tex.Name]; ok && tex.Spec == nil {
		if spec, ok := p.Spec(tex.Image.Bounds().Size()); ok {
			tex.Spec = &spec
		}
	}
	img := tex.Render(opts.size, opts.scale)
	if err := writePNG(opts.out, img); err != nil {
		return err
	}
	kind := "stretched"
	if tex.Spec != nil {
		kind = fmt.Sprintf("nine-sliced %+v base %v", tex.Spec.Insets, tex.Spec.Base)
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d, %s, ui scale %g)\n", opts.out, opts.size.X, opts.size.Y, kind, opts.scale)
	return nil
}

// parseSize parses WIDTHxHEIGHT. Both dimensions must be at least 1.
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("-size: want WIDTHxHEIGHT, got %q", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(w))
	y, errY := strconv.Atoi(strings.TrimSpace(h))
	if errX != nil || errY != nil || x < 1 || y < 1 {
		return image.Point{}, fmt.Errorf("-size: want positive WIDTHxHEIGHT, got %q", s)
	}
	return image.Pt(x, y), nil
}

// flagSpec builds a spec from the -inset and -base flags, which accept the
// same scalar or list forms as nineslice_size and base_size.
func flagSpec(inset, base string, fallback image.Point) (nineslice.Spec, error) {
	var p nineslice.Preset
	if err := json.Unmarshal(listJSON(inset), &p.NinesliceSize); err != nil {
		return nineslice.Spec{}, fmt.Errorf("-inset: %w", err)
	}
	if base != "" {
		if err := json.Unmarshal(listJSON(base), &p.BaseSize); err != nil {
			return nineslice.Spec{}, fmt.Errorf("-base: %w", err)
		}
	}
	spec, _ := p.Spec(fallback)
	return spec, nil
}

// listJSON turns "1,2,3" into a JSON array and leaves single values alone.
func listJSON(s string) []byte {
	if strings.Contains(s, ",") {
		return []byte("[" + s + "]")
	}
	return []byte(s)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
