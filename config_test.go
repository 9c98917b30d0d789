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
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, DefaultConfig())
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("VECPAINT_DISPLAY_MODE", "Outline")
	t.Setenv("VECPAINT_MAX_GRADIENT_BUFFER", "512")
	t.Setenv("VECPAINT_NATIVE_GRADIENTS", "false")
	t.Setenv("VECPAINT_OUTLINE_COLOR", "#ff000080")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DisplayMode != Outline {
		t.Errorf("DisplayMode = %v", cfg.DisplayMode)
	}
	if cfg.MaxGradientBuffer != 512 {
		t.Errorf("MaxGradientBuffer = %d", cfg.MaxGradientBuffer)
	}
	if cfg.MaxMaskBuffer != 2048 {
		t.Errorf("MaxMaskBuffer = %d", cfg.MaxMaskBuffer)
	}
	if cfg.NativeGradients {
		t.Error("NativeGradients = true")
	}
	if want := (Color{R: 255, A: 128}); cfg.OutlineColor != want {
		t.Errorf("OutlineColor = %v, want %v", cfg.OutlineColor, want)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("VECPAINT_DISPLAY_MODE", "sideways")
	if _, err := LoadConfig(); err == nil {
		t.Error("invalid display mode accepted")
	}
}

func TestDisplayModeText(t *testing.T) {
	for _, m := range []DisplayMode{Normal, Outline, FillOnly, StrokeOnly} {
		var got DisplayMode
		if err := got.UnmarshalText([]byte(m.String())); err != nil {
			t.Errorf("%v: %v", m, err)
		} else if got != m {
			t.Errorf("%v: got %v", m, got)
		}
	}
	if s := DisplayMode(9).String(); s != "DisplayMode(9)" {
		t.Errorf("String() = %q", s)
	}
}

func TestColorText(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"black", Color{A: 255}, true},
		{"Red", Color{R: 255, A: 255}, true},
		{"#102030", Color{R: 0x10, G: 0x20, B: 0x30, A: 255}, true},
		{"#10203040", Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, true},
		{"#1020", Color{}, false},
		{"#xyzxyz", Color{}, false},
		{"chartreuse-ish", Color{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got Color
			err := got.UnmarshalText([]byte(c.in))
			if (err == nil) != c.ok {
				t.Fatalf("error = %v", err)
			}
			if c.ok && got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}
