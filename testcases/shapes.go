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
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/gradient"
)

// kappa places the control points of a cubic Bézier curve approximating
// a quarter circle.
const kappa = 0.5522847498307936

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// poly returns a path of straight segments through pts, each encoded as a
// cubic curve.
func poly(closed bool, pts ...vec.Vec2) document.Path {
	p := document.Path{Points: []vec.Vec2{pts[0]}, Closed: closed}
	for _, q := range pts[1:] {
		p = lineTo(p, q)
	}
	if closed {
		p = lineTo(p, pts[0])
	}
	return p
}

func lineTo(p document.Path, q vec.Vec2) document.Path {
	a := p.Points[len(p.Points)-1]
	d := q.Sub(a)
	p.Points = append(p.Points, a.Add(d.Mul(1.0/3)), a.Add(d.Mul(2.0/3)), q)
	return p
}

func rectangle(x0, y0, x1, y1 float64) document.Path {
	return poly(true, pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

// ellipse returns an axis-parallel ellipse made of four cubic arcs.
// The path runs clockwise on the screen.
func ellipse(cx, cy, rx, ry float64) document.Path {
	kx, ky := kappa*rx, kappa*ry
	return document.Path{
		Points: []vec.Vec2{
			pt(cx+rx, cy),
			pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry),
			pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy),
			pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry),
			pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy),
		},
		Closed: true,
	}
}

func circle(cx, cy, r float64) document.Path {
	return ellipse(cx, cy, r, r)
}

// star returns a five-pointed star drawn as a single self-intersecting
// pentagram, so that the center is covered twice.
func star(cx, cy, r float64) document.Path {
	var pts []vec.Vec2
	for i := range 5 {
		phi := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		pts = append(pts, pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	return poly(true, pts...)
}

// shape returns a visible, opaque shape without paints.  The bounds are
// computed from the control points.
func shape(paths ...document.Path) *document.Shape {
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, p := range paths {
		for _, q := range p.Points {
			b.LLx = min(b.LLx, q.X)
			b.LLy = min(b.LLy, q.Y)
			b.URx = max(b.URx, q.X)
			b.URy = max(b.URy, q.Y)
		}
	}
	return &document.Shape{
		Paths:      paths,
		Fill:       document.NoPaint{},
		Stroke:     document.NoPaint{},
		MiterLimit: 10,
		Opacity:    1,
		Visible:    true,
		Bounds:     b,
	}
}

func filled(paint document.Paint, paths ...document.Path) *document.Shape {
	s := shape(paths...)
	s.Fill = paint
	return s
}

func stroked(paint document.Paint, width float64, paths ...document.Path) *document.Shape {
	s := shape(paths...)
	s.Stroke = paint
	s.StrokeWidth = width
	return s
}

func withCap(s *document.Shape, lc graphics.LineCapStyle, lj graphics.LineJoinStyle) *document.Shape {
	s.Cap = lc
	s.Join = lj
	return s
}

func withDash(s *document.Shape, phase float64, dash ...float64) *document.Shape {
	s.Dash = dash
	s.DashOffset = phase
	return s
}

func solid(c color.RGBA) document.Paint {
	return document.Solid{Color: color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}}
}

// translucent returns the color c with alpha a, not premultiplied.
func translucent(c color.RGBA, a uint8) document.Paint {
	return document.Solid{Color: color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}}
}

func stops(colors ...color.RGBA) []document.Stop {
	res := make([]document.Stop, len(colors))
	for i, c := range colors {
		res[i] = document.Stop{
			Offset: float64(i) / float64(max(len(colors)-1, 1)),
			Color:  color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A},
		}
	}
	return res
}

// linear returns a linear gradient from p0 to p1, in document space.
func linear(p0, p1 vec.Vec2, spread document.Spread, colors ...color.RGBA) document.Paint {
	return document.LinearGradient{Gradient: &document.Gradient{
		Transform: gradient.AxisMatrix(p0, p1),
		Spread:    spread,
		Stops:     stops(colors...),
	}}
}

// radial returns a radial gradient with the given circle and focal
// point, in document space.
func radial(center vec.Vec2, r float64, focus vec.Vec2, spread document.Spread, colors ...color.RGBA) document.Paint {
	m, focal := gradient.CircleMatrix(center, r, focus)
	return document.RadialGradient{Gradient: &document.Gradient{
		Transform: m,
		Spread:    spread,
		Stops:     stops(colors...),
		Focal:     focal,
	}}
}

func doc(w, h float64, shapes ...*document.Shape) *document.Document {
	return &document.Document{Width: w, Height: h, Shapes: shapes}
}
