// Package texture holds the texture catalog, the per-material texture map and an
// asynchronous image loader whose results are applied on the frame-loop thread.
package texture

import (
	"fmt"
	"image"
	"strings"
)

// ColorSpace says how texel values are encoded.
type ColorSpace int

const (
	Linear ColorSpace = iota
	SRGB
)

func (c ColorSpace) String() string {
	if c == SRGB {
		return "SRGB"
	}
	return "Linear"
}

// ParseColorSpace accepts "SRGB" or "Linear" (case-insensitive).
func ParseColorSpace(s string) (ColorSpace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srgb":
		return SRGB, nil
	case "linear":
		return Linear, nil
	}
	return Linear, fmt.Errorf("unknown color space %q (use SRGB or Linear)", s)
}

// Settings are the texture options shown in the panel.
type Settings struct {
	Name       string
	RepeatX    float32
	RepeatY    float32
	Anisotropy int
	ColorSpace ColorSpace
}

// DefaultSettings returns Crate, no repeat, anisotropy 4, linear.
func DefaultSettings() Settings {
	return Settings{
		Name:       DefaultName,
		RepeatX:    1,
		RepeatY:    1,
		Anisotropy: 4,
		ColorSpace: Linear,
	}
}

// Map is a decoded texture image plus its sampling state, attached to a material.
// Version is bumped on every mutation so the renderer knows to re-upload or re-sample.
type Map struct {
	Source     string
	Image      image.Image
	Repeat     [2]float32
	Anisotropy int
	ColorSpace ColorSpace
	Version    uint64
}

// NewMap returns an empty map carrying the sampling state from s.
func NewMap(s Settings) *Map {
	return &Map{
		Repeat:     [2]float32{s.RepeatX, s.RepeatY},
		Anisotropy: s.Anisotropy,
		ColorSpace: s.ColorSpace,
		Version:    1,
	}
}

// SetImage replaces the decoded image.
func (m *Map) SetImage(source string, img image.Image, cs ColorSpace) {
	m.Source = source
	m.Image = img
	m.ColorSpace = cs
	m.Version++
}

// SetRepeat sets the tiling factors.
func (m *Map) SetRepeat(x, y float32) {
	m.Repeat = [2]float32{x, y}
	m.Version++
}

// SetAnisotropy sets the anisotropic filtering level.
func (m *Map) SetAnisotropy(n int) {
	m.Anisotropy = n
	m.Version++
}
