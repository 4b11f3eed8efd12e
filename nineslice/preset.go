package nineslice

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrShape reports a nineslice_size or base_size that is neither a number
// nor an array of the expected length.
var ErrShape = errors.New("invalid nine-slice value shape")

// Inset is the wire form of nineslice_size: a single number applied to all
// sides, or [left, top, right, bottom].
type Inset [4]float64

// BaseSize is the wire form of base_size: a single number for a square, or
// [width, height].
type BaseSize [2]float64

// Preset is the nine-slice portion of a texture's JSON description, as found
// next to textures in resource packs:
//
//	{ "nineslice_size": [left, top, right, bottom], "base_size": [width, height] }
type Preset struct {
	NinesliceSize *Inset    `json:"nineslice_size,omitempty" yaml:"nineslice_size,omitempty"`
	BaseSize      *BaseSize `json:"base_size,omitempty" yaml:"base_size,omitempty"`
}

// ParsePreset decodes a texture JSON document. Unrelated keys are ignored.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parsing nine-slice preset: %w", err)
	}
	return p, nil
}

// NewPreset returns the wire form of s.
func NewPreset(s Spec) Preset {
	in := Inset{
		float64(s.Insets.Left), float64(s.Insets.Top),
		float64(s.Insets.Right), float64(s.Insets.Bottom),
	}
	base := BaseSize{float64(s.Base.X), float64(s.Base.Y)}
	return Preset{NinesliceSize: &in, BaseSize: &base}
}

// Spec converts the preset into a normalized Spec. fallback is used as the
// base size when the preset has none, typically the texture's pixel size.
// ok is false when the preset carries no nineslice_size.
func (p Preset) Spec(fallback image.Point) (s Spec, ok bool) {
	if p.NinesliceSize == nil {
		return Spec{}, false
	}
	in := p.NinesliceSize
	s.Insets = Insets{
		Left: toInt(in[0]), Top: toInt(in[1]),
		Right: toInt(in[2]), Bottom: toInt(in[3]),
	}
	s.Base = fallback
	if p.BaseSize != nil {
		s.Base = image.Pt(toInt(p.BaseSize[0]), toInt(p.BaseSize[1]))
	}
	return s.Normalize(), true
}

func (in *Inset) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return fill(in[:], v, "nineslice_size")
}

func (in Inset) MarshalJSON() ([]byte, error) {
	return json.Marshal(compact(in[:]))
}

func (in *Inset) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}
	return fill(in[:], v, "nineslice_size")
}

func (in Inset) MarshalYAML() (interface{}, error) {
	return compact(in[:]), nil
}

func (bs *BaseSize) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return fill(bs[:], v, "base_size")
}

func (bs BaseSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(compact(bs[:]))
}

func (bs *BaseSize) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}
	return fill(bs[:], v, "base_size")
}

func (bs BaseSize) MarshalYAML() (interface{}, error) {
	return compact(bs[:]), nil
}

// fill dst from a decoded scalar or array.
func fill(dst []float64, v interface{}, field string) error {
	if n, ok := number(v); ok {
		for ii := range dst {
			dst[ii] = n
		}
		return nil
	}
	list, ok := v.([]interface{})
	if !ok || len(list) != len(dst) {
		return fmt.Errorf("%s: %w: want a number or %d numbers, got %v", field, ErrShape, len(dst), v)
	}
	for ii, item := range list {
		n, ok := number(item)
		if !ok {
			return fmt.Errorf("%s[%d]: %w: %v is not a number", field, ii, ErrShape, item)
		}
		dst[ii] = n
	}
	return nil
}

// compact returns the scalar form when all values are equal.
func compact(vals []float64) interface{} {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return vals
		}
	}
	return vals[0]
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toInt rounds a wire value to whole pixels, mapping NaN and negatives to 0.
func toInt(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(v))
}
