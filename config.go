// seehuhn.de/go/vecpaint - render vector shapes with gradients and masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vecpaint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/image/colornames"
)

// DisplayMode selects which parts of the shapes are drawn.
type DisplayMode int

const (
	// Normal draws fills and strokes.
	Normal DisplayMode = iota

	// Outline strokes all paths with a thin line of a fixed color,
	// ignoring the paints.
	Outline

	// FillOnly draws only the fills.
	FillOnly

	// StrokeOnly draws only the strokes.
	StrokeOnly
)

var displayModeNames = []string{"normal", "outline", "fill", "stroke"}

func (m DisplayMode) String() string {
	if m >= 0 && int(m) < len(displayModeNames) {
		return displayModeNames[m]
	}
	return "DisplayMode(" + strconv.Itoa(int(m)) + ")"
}

// MarshalText implements [encoding.TextMarshaler].
func (m DisplayMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *DisplayMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range displayModeNames {
		if s == name {
			*m = DisplayMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown display mode %q", text)
}

func (m DisplayMode) drawFill() bool {
	return m == Normal || m == FillOnly
}

func (m DisplayMode) drawStroke() bool {
	return m == Normal || m == StrokeOnly
}

// Color is a color which can be read from text, either as an SVG color
// keyword like "black" or in the form #rrggbb or #rrggbbaa.
type Color color.NRGBA

var errColorSyntax = errors.New("invalid color")

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if rgba, ok := colornames.Map[s]; ok {
		*c = Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
		return nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return fmt.Errorf("%q: %w", text, errColorSyntax)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: %w", text, errColorSyntax)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Config holds the settings of a [Renderer].
type Config struct {
	DisplayMode DisplayMode `envconfig:"DISPLAY_MODE" default:"normal"`

	// MaxGradientBuffer limits the width and height, in pixels, of the
	// offscreen buffers used for rasterized gradients.  Larger regions
	// are rendered at reduced resolution and scaled up.
	MaxGradientBuffer int `envconfig:"MAX_GRADIENT_BUFFER" default:"2048"`

	// MaxMaskBuffer limits the size of the buffers used for masks.
	MaxMaskBuffer int `envconfig:"MAX_MASK_BUFFER" default:"2048"`

	// NativeGradients allows the use of the gradient primitives of
	// surfaces which implement [surface.GradientFiller].
	NativeGradients bool `envconfig:"NATIVE_GRADIENTS" default:"true"`

	// OutlineColor is the line color in [Outline] mode.
	OutlineColor Color `envconfig:"OUTLINE_COLOR" default:"black"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	black := colornames.Black
	return Config{
		DisplayMode:       Normal,
		MaxGradientBuffer: 2048,
		MaxMaskBuffer:     2048,
		NativeGradients:   true,
		OutlineColor:      Color{R: black.R, G: black.G, B: black.B, A: black.A},
	}
}

// LoadConfig reads the settings from environment variables with the
// prefix VECPAINT_, for example VECPAINT_DISPLAY_MODE=outline.
// Unset variables take their default values.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vecpaint", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
