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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// fitPadding is the margin, in pixels, left around a document by
// [View.Fit].
const fitPadding = 10

// View maps document space to surface space.  A document point p is drawn
// at p·Scale + Offset.
type View struct {
	Scale  float64
	Offset vec.Vec2
}

// Identity is the view which draws the document at its actual size in the
// top-left corner of the surface.
var Identity = View{Scale: 1}

// Matrix returns the view as an affine transformation.
func (v View) Matrix() matrix.Matrix {
	return matrix.Scale(v.Scale, v.Scale).Mul(matrix.Translate(v.Offset.X, v.Offset.Y))
}

// Apply maps a document point to the surface.
func (v View) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X*v.Scale + v.Offset.X, Y: p.Y*v.Scale + v.Offset.Y}
}

// WithScale returns v with the scale replaced.  Scales which are not
// positive are ignored.
func (v View) WithScale(scale float64) View {
	if scale > 0 && !math.IsInf(scale, 0) {
		v.Scale = scale
	}
	return v
}

// Fit returns the view which shows a document of size w×h as large as
// possible inside bounds, centered, with a margin of 10 pixels.  If bounds
// are too small for the margin, the margin is dropped.  If bounds or the
// document are empty, v is returned unchanged.
func (v View) Fit(w, h float64, bounds image.Rectangle) View {
	bw, bh := float64(bounds.Dx()), float64(bounds.Dy())
	if bw <= 0 || bh <= 0 || !(w > 0) || !(h > 0) {
		return v
	}

	availW := bw - 2*fitPadding
	availH := bh - 2*fitPadding
	if availW <= 0 || availH <= 0 {
		availW, availH = bw, bh
	}

	v.Scale = min(availW/w, availH/h)
	return v.Center(w, h, bounds)
}

// Center returns v with the offset changed such that a document of size
// w×h is centered in bounds at the current scale.
func (v View) Center(w, h float64, bounds image.Rectangle) View {
	v.Offset = vec.Vec2{
		X: float64(bounds.Min.X) + (float64(bounds.Dx())-w*v.Scale)/2,
		Y: float64(bounds.Min.Y) + (float64(bounds.Dy())-h*v.Scale)/2,
	}
	return v
}

// ActualSize returns the view which shows a document of size w×h at
// scale 1, centered in bounds.
func (v View) ActualSize(w, h float64, bounds image.Rectangle) View {
	v.Scale = 1
	return v.Center(w, h, bounds)
}

// Rect maps a document-space rectangle to the surface.
func (v View) Rect(r rect.Rect) rect.Rect {
	a := v.Apply(vec.Vec2{X: r.LLx, Y: r.LLy})
	b := v.Apply(vec.Vec2{X: r.URx, Y: r.URy})
	return rect.Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}

// local returns the view for an offscreen buffer which covers the surface
// region r, downscaled by ratio.  A point drawn at q on the surface is
// drawn at (q - r.Min)·ratio in the buffer.
func (v View) local(r image.Rectangle, ratio float64) View {
	return View{
		Scale: v.Scale * ratio,
		Offset: vec.Vec2{
			X: (v.Offset.X - float64(r.Min.X)) * ratio,
			Y: (v.Offset.Y - float64(r.Min.Y)) * ratio,
		},
	}
}
