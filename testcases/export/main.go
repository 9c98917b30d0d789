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

// Command export writes the scenes to testdata/scenes.json, for use by
// external reference renderers.  Run from the module root directory.
package main

import (
	"encoding/json"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/gradient"
	"seehuhn.de/go/vecpaint/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Path       []jsonSegment `json:"path"`
	FillRule   string        `json:"fill_rule"`
	Fill       *jsonPaint    `json:"fill,omitempty"`
	Stroke     *jsonPaint    `json:"stroke,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
	Opacity    float64       `json:"opacity"`
	Mask       []jsonShape   `json:"mask,omitempty"`
}

type jsonPaint struct {
	Type   string     `json:"type"` // "solid", "linear" or "radial"
	Color  []uint8    `json:"color,omitempty"`
	Matrix []float64  `json:"matrix,omitempty"` // gradient space to surface space
	Focal  []float64  `json:"focal,omitempty"`
	Spread string     `json:"spread,omitempty"`
	Stops  []jsonStop `json:"stops,omitempty"`
}

type jsonStop struct {
	Offset float64 `json:"offset"`
	Color  []uint8 `json:"color"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Width:  sc.Width,
		Height: sc.Height,
	}
	for _, s := range sc.Doc.Shapes {
		if s.Visible {
			js.Shapes = append(js.Shapes, shapeToJSON(sc, s))
		}
	}
	return js
}

func shapeToJSON(sc testcases.Scene, s *document.Shape) jsonShape {
	scale := sc.Apply(pt(1, 0)).Sub(sc.Apply(pt(0, 0))).X
	js := jsonShape{
		Path:     pathToJSON(s.Geometry(sc.Apply)),
		FillRule: s.FillRule.String(),
		Fill:     paintToJSON(sc, s.Fill),
		Opacity:  s.Opacity,
	}
	if s.HasStroke() {
		js.Stroke = paintToJSON(sc, s.Stroke)
		js.LineWidth = s.StrokeWidth * scale
		js.LineCap = s.Cap.String()
		js.LineJoin = s.Join.String()
		js.MiterLimit = s.MiterLimit
		js.DashPhase = s.DashOffset * scale
		for _, d := range s.Dash {
			js.Dash = append(js.Dash, d*scale)
		}
	}
	if s.HasMask() {
		for _, m := range s.Mask.Shapes {
			if m.Visible {
				js.Mask = append(js.Mask, shapeToJSON(sc, m))
			}
		}
	}
	return js
}

func paintToJSON(sc testcases.Scene, p document.Paint) *jsonPaint {
	if c, ok := p.(document.Solid); ok {
		return &jsonPaint{Type: "solid", Color: rgba(c.Color)}
	}
	kind, g, ok := gradient.KindOf(p)
	if !ok {
		return nil
	}

	// The view is a scale and an offset, so mapping the matrix columns
	// suffices.
	o := sc.Apply(pt(g.Transform[4], g.Transform[5]))
	ex := sc.Apply(pt(g.Transform[0], g.Transform[1])).Sub(sc.Apply(pt(0, 0)))
	ey := sc.Apply(pt(g.Transform[2], g.Transform[3])).Sub(sc.Apply(pt(0, 0)))

	jp := &jsonPaint{
		Type:   kind.String(),
		Matrix: []float64{ex.X, ex.Y, ey.X, ey.Y, o.X, o.Y},
		Spread: g.Spread.String(),
	}
	if kind == gradient.Radial {
		jp.Focal = []float64{g.Focal.X, g.Focal.Y}
	}
	for _, stop := range g.Stops {
		jp.Stops = append(jp.Stops, jsonStop{Offset: stop.Offset, Color: rgba(stop.Color)})
	}
	return jp
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func rgba(c color.NRGBA) []uint8 {
	return []uint8{c.R, c.G, c.B, c.A}
}

func pathToJSON(p *path.Data) []jsonSegment {
	if p == nil {
		return nil
	}
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, q := range pts {
			seg.Pts[i] = []float64{q.X, q.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
