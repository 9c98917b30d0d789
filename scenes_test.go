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
	"image"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/vecpaint/surface"
	"seehuhn.de/go/vecpaint/testcases"
)

func renderScene(sc testcases.Scene, cfg Config) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	view := View{Scale: 1, Offset: sc.Offset}.WithScale(sc.Scale)
	NewRenderer(cfg).Render(surface.NewImage(img), sc.Doc, view)
	return img
}

func TestScenes(t *testing.T) {
	modes := []DisplayMode{Normal, Outline, FillOnly, StrokeOnly}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				for _, mode := range modes {
					cfg := DefaultConfig()
					cfg.DisplayMode = mode
					img := renderScene(sc, cfg)
					if mode == Normal && !painted(img) {
						t.Error("nothing was drawn")
					}
				}
			})
		}
	}
}

func painted(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}

func TestSceneColors(t *testing.T) {
	cases := []struct {
		scene string
		x, y  int
		want  func(r, g, b, a uint8) bool
	}{
		{"gradient_singular", 32, 32, func(r, g, b, a uint8) bool {
			c := colornames.Seagreen
			return r == c.R && g == c.G && b == c.B && a == 255
		}},
		{"fill_hidden", 4, 4, func(r, g, b, a uint8) bool { return a == 0 }},
		{"mask_half", 20, 32, func(r, g, b, a uint8) bool { return r == 255 && a == 255 }},
		{"mask_half", 44, 32, func(r, g, b, a uint8) bool { return a == 0 }},
		{"gradient_linear", 6, 32, func(r, g, b, a uint8) bool { return r == 255 && b == 0 }},
		{"gradient_linear", 58, 32, func(r, g, b, a uint8) bool { return r == 0 && b == 255 }},
		{"view_culled", 20, 20, func(r, g, b, a uint8) bool { return b == 255 && a == 255 }},
		{"view_culled", 63, 5, func(r, g, b, a uint8) bool { return a == 255 }},
	}
	for _, c := range cases {
		sc, ok := testcases.Find(c.scene)
		if !ok {
			t.Fatalf("scene %q not found", c.scene)
		}
		img := renderScene(sc, DefaultConfig())
		px := img.RGBAAt(c.x, c.y)
		if !c.want(px.R, px.G, px.B, px.A) {
			t.Errorf("%s: pixel (%d, %d) = %v", c.scene, c.x, c.y, px)
		}
	}
}
