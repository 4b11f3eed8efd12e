// Package preview is a playground for nine-slice textures: pick a texture,
// drag the size and UI scale sliders, and watch it resample live.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"git.sr.ht/~gioverse/jsonui/async"
	"git.sr.ht/~gioverse/jsonui/config"
	"git.sr.ht/~gioverse/jsonui/debug"
	uilayout "git.sr.ht/~gioverse/jsonui/layout"
	"git.sr.ht/~gioverse/jsonui/nineslice"
	"git.sr.ht/~gioverse/jsonui/profile"
	"git.sr.ht/~gioverse/jsonui/texture"
	uiwidget "git.sr.ht/~gioverse/jsonui/widget"
	lorem "github.com/drhodes/golorem"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	profileOpt = flag.String("profile", "", "profile the app: cpu, mem, block, goroutine, mutex, trace, gio")
)

func main() {
	flag.Parse()
	cfg := config.Default()
	if *configPath != "" {
		cfg = config.MustLoad(*configPath)
	}
	if *profileOpt != "" {
		cfg.Profile = *profileOpt
	}
	popt, err := profile.ParseOpt(cfg.Profile)
	if err != nil {
		log.Fatal(err)
	}
	cache, err := texture.Load(context.Background(), os.DirFS(cfg.Textures), &async.DynamicWorkerPool{Workers: cfg.Workers})
	if err != nil {
		log.Printf("Warning: %v", err)
		cache = texture.NewCache()
	}
	cache.ApplyPresets(cfg.Presets)

	var (
		// Instantiate the preview window.
		w = app.NewWindow(
			app.Title("Nine-slice Preview"),
			app.Size(unit.Dp(900), unit.Dp(600)),
		)
		// Define an operation list for gio.
		ops op.Ops
		// Instantiate our UI state.
		ui       = NewUI(cfg, cache)
		profiler = popt.NewProfiler()
	)
	profiler.Start()

	go func() {
		// Event loop executes indefinitely, until the app is signalled to quit.
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				profiler.Stop()
				if err := event.Err; err != nil {
					fmt.Printf("error: premature window close: %v\n", err)
					os.Exit(1)
				}
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				profiler.Record(gtx)
				ui.Layout(gtx)
				event.Frame(gtx.Ops)
			}
		}
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

type (
	C = layout.Context
	D = layout.Dimensions
)

// th is the active theme object.
var th = material.NewTheme(gofont.Collection())

// ResetIcon is the material design refresh indicator.
var ResetIcon *widget.Icon = func() *widget.Icon {
	icon, err := widget.NewIcon(icons.NavigationRefresh)
	if err != nil {
		log.Printf("loading reset icon: %v", err)
	}
	return icon
}()

// regionColor outlines the nine regions when enabled.
var regionColor = color.NRGBA{R: 255, G: 0, B: 200, A: 200}

// UI manages the state for the entire application's UI.
type UI struct {
	cfg   *config.Config
	cache *texture.Cache
	// Names of the selectable textures.
	Names []string
	// Selected texture by name.
	Selected widget.Enum
	// Width and Height control the target size in pixels.
	Width, Height widget.Float
	// Scale controls the global UI scale.
	Scale widget.Float
	// ShowRegions outlines the nine destination regions.
	ShowRegions widget.Bool
	// ShowText simulates label content atop the texture.
	ShowText widget.Bool
	// Text is the simulated label content.
	Text string
	// Reset restores the configured defaults.
	Reset widget.Clickable
	// Surface renders the selected texture.
	Surface uiwidget.Surface
	// ControlContainer adds scrolling to the controls.
	ControlContainer widget.List
}

// NewUI constructs a UI from the configuration and loaded textures.
func NewUI(cfg *config.Config, cache *texture.Cache) *UI {
	ui := &UI{
		cfg:      cfg,
		cache:    cache,
		Names:    cache.Names(),
		ShowText: widget.Bool{Value: true},
	}
	if t := cfg.Preview.Texture; t != "" {
		if _, ok := cache.Get(t); !ok {
			// Unknown names preview as a placeholder.
			ui.Names = append([]string{t}, ui.Names...)
		}
	}
	if len(ui.Names) == 0 {
		ui.Names = []string{"placeholder"}
	}
	ui.reset()
	return ui
}

// reset restores the configured preview state.
func (ui *UI) reset() {
	ui.Selected.Value = ui.cfg.Preview.Texture
	if ui.Selected.Value == "" {
		ui.Selected.Value = ui.Names[0]
	}
	ui.Width.Value = float32(ui.cfg.Preview.Width)
	ui.Height.Value = float32(ui.cfg.Preview.Height)
	ui.Scale.Value = float32(ui.cfg.UIScale)
	ui.Text = lorem.Sentence(1, 4)
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	if ui.Reset.Clicked() {
		ui.reset()
	}
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(ui.layoutTitle),
		layout.Rigid(func(gtx C) D {
			return component.Divider(th).Layout(gtx)
		}),
		layout.Flexed(1, ui.layoutContent),
	)
}

func (ui *UI) layoutTitle(gtx C) D {
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{
			Axis:      layout.Horizontal,
			Alignment: layout.Middle,
			Spacing:   layout.SpaceBetween,
		}.Layout(gtx,
			layout.Rigid(material.H5(th, "Nine-slice Preview").Layout),
			layout.Rigid(material.IconButton(th, &ui.Reset, ResetIcon, "Reset").Layout),
		)
	})
}

func (ui *UI) layoutContent(gtx C) D {
	return layout.Flex{
		Axis: layout.Horizontal,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Max.X = gtx.Dp(unit.Dp(320))
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			ui.ControlContainer.Axis = layout.Vertical
			return material.List(th, &ui.ControlContainer).Layout(gtx, 1, func(gtx C, _ int) D {
				return layout.UniformInset(unit.Dp(12)).Layout(gtx, ui.layoutControls)
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.Center.Layout(gtx, ui.layoutDemo)
		}),
	)
}

func (ui *UI) layoutControls(gtx C) D {
	max := float32(ui.cfg.Preview.MaxSize)
	rows := []layout.Widget{
		func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Width: %dpx", int(ui.Width.Value))),
				Slider: material.Slider(th, &ui.Width, 1, max),
			}.Layout(gtx)
		},
		func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Height: %dpx", int(ui.Height.Value))),
				Slider: material.Slider(th, &ui.Height, 1, max),
			}.Layout(gtx)
		},
		func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("UI scale: %.2f (default: %.2f)", ui.Scale.Value, nineslice.DefaultUIScale)),
				Slider: material.Slider(th, &ui.Scale, 0.25, 4),
			}.Layout(gtx)
		},
		material.CheckBox(th, &ui.ShowRegions, "Show regions").Layout,
		material.CheckBox(th, &ui.ShowText, "Show text").Layout,
		material.Subtitle1(th, "Textures").Layout,
	}
	for _, name := range ui.Names {
		rows = append(rows, material.RadioButton(th, &ui.Selected, name, name).Layout)
	}
	return uilayout.VerticalMargin().Rows(gtx, rows...)
}

// size returns the target size, at least 1x1.
func (ui *UI) size() image.Point {
	sz := image.Pt(int(ui.Width.Value), int(ui.Height.Value))
	if sz.X < 1 {
		sz.X = 1
	}
	if sz.Y < 1 {
		sz.Y = 1
	}
	return sz
}

func (ui *UI) layoutDemo(gtx C) D {
	var (
		size  = ui.size()
		scale = float64(ui.Scale.Value)
	)
	ui.Surface.Texture = ui.cache.Lookup(ui.Selected.Value)
	ui.Surface.UIScale = scale
	return uilayout.Checkerboard{
		Light: color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		Dark:  color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	}.Layout(gtx, func(gtx C) D {
		gtx.Constraints = layout.Exact(size)
		surface := func(gtx C) D {
			return ui.Surface.Layout(gtx, ui.layoutText)
		}
		if !ui.ShowRegions.Value {
			return surface(gtx)
		}
		var plan [9]nineslice.Region
		if spec := ui.Surface.Texture.Spec; spec != nil {
			plan = nineslice.Plan(*spec, size, scale)
		}
		return debug.Regions(gtx, plan, regionColor, surface)
	})
}

// layoutText fills the surface, optionally with a centered label.
func (ui *UI) layoutText(gtx C) D {
	gtx.Constraints.Min = gtx.Constraints.Max
	if !ui.ShowText.Value {
		return D{Size: gtx.Constraints.Max}
	}
	return layout.Center.Layout(gtx, func(gtx C) D {
		lb := material.Body1(th, ui.Text)
		lb.MaxLines = 1
		return lb.Layout(gtx)
	})
}

// LabeledSliderStyle draws a slider with a label.
type LabeledSliderStyle struct {
	Label  material.LabelStyle
	Slider material.SliderStyle
}

func (slider LabeledSliderStyle) Layout(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(slider.Label.Layout),
		layout.Rigid(slider.Slider.Layout),
	)
}
