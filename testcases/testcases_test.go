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

package testcases

import (
	"regexp"
	"testing"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestSceneNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, scenes := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, s := range scenes {
			full := category + "_" + s.Name
			if !validName.MatchString(s.Name) {
				t.Errorf("invalid scene name %q", full)
			}
			if seen[full] {
				t.Errorf("duplicate scene %q", full)
			}
			seen[full] = true

			if got, ok := Find(full); !ok || got.Name != s.Name {
				t.Errorf("Find(%q) failed", full)
			}
		}
	}
	if _, ok := Find("no_such_scene"); ok {
		t.Error("Find accepted an unknown name")
	}
}

func TestScenesWellFormed(t *testing.T) {
	for category, scenes := range All {
		for _, s := range scenes {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				if s.Width <= 0 || s.Height <= 0 {
					t.Errorf("invalid size %dx%d", s.Width, s.Height)
				}
				if len(s.Doc.Shapes) == 0 {
					t.Fatal("no shapes")
				}
				for i, sh := range s.Doc.Shapes {
					checkShape(t, i, sh)
				}
				if len(s.Silhouette()) == 0 {
					t.Error("empty silhouette")
				}
			})
		}
	}
}

func checkShape(t *testing.T, i int, sh *document.Shape) {
	t.Helper()
	for _, p := range sh.Paths {
		if len(p.Points)%3 != 1 {
			t.Errorf("shape %d: %d points do not form cubic segments", i, len(p.Points))
		}
		for _, q := range p.Points {
			b := sh.Bounds
			if q.X < b.LLx || q.X > b.URx || q.Y < b.LLy || q.Y > b.URy {
				t.Errorf("shape %d: point %v outside of bounds %v", i, q, b)
			}
		}
	}
	if sh.HasMask() {
		for j, m := range sh.Mask.Shapes {
			checkShape(t, j, m)
		}
	}
}

func TestSilhouette(t *testing.T) {
	s := filled(solid(colornames.Black), rectangle(1, 2, 3, 4))
	s.Stroke = solid(colornames.Black)
	s.StrokeWidth = 1.5
	s.Dash = []float64{2, 1}
	s.DashOffset = 1
	s.Cap = graphics.LineCapRound
	hidden := filled(solid(colornames.Black), rectangle(0, 0, 1, 1))
	hidden.Visible = false

	scene := Scene{Name: "x", Doc: doc(10, 10, hidden, s), Width: 20, Height: 20, Scale: 2, Offset: pt(1, 0)}
	ops := scene.Silhouette()
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}

	fill, ok := ops[0].(Fill)
	if !ok {
		t.Fatalf("ops[0] is %T", ops[0])
	}
	if got := fill.Path.Coords[0]; got != pt(3, 4) {
		t.Errorf("first point %v, want (3, 4)", got)
	}

	stroke, ok := ops[1].(Stroke)
	if !ok {
		t.Fatalf("ops[1] is %T", ops[1])
	}
	if stroke.Width != 3 || stroke.DashPhase != 2 || len(stroke.Dash) != 2 || stroke.Dash[0] != 4 {
		t.Errorf("stroke %+v", stroke)
	}
	if stroke.Cap != graphics.LineCapRound {
		t.Errorf("cap %v", stroke.Cap)
	}
}
