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

// Package document describes the vector documents which the renderer draws.
//
// A [Document] is produced by an external parser and is treated as immutable
// once it has been handed to the renderer.  Shapes are painted in slice
// order, first to last, which is back to front.
package document

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Document is a parsed vector image.
type Document struct {
	// Width and Height give the document size in document units.
	Width, Height float64

	// Shapes lists the shapes in painting order.
	Shapes []*Shape
}

// Shape is a set of paths which share fill and stroke attributes.
type Shape struct {
	// ID identifies the shape in log messages.  May be empty.
	ID string

	Paths []Path

	Fill   Paint
	Stroke Paint

	// FillRule selects how the interior of the paths is determined.
	FillRule FillRule

	// StrokeWidth is the line width in document units.  The shape is
	// only stroked if this is positive.
	StrokeWidth float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash gives alternating on/off lengths in document units.
	// Nil means a solid line.
	Dash       []float64
	DashOffset float64

	// Opacity is multiplied into the alpha of all paints, in [0, 1].
	Opacity float64

	Visible bool

	// Bounds is the bounding box of the paths in document space,
	// not including the stroke.
	Bounds rect.Rect

	// Mask, if non-nil, is a luminance mask for the shape.
	Mask *Mask
}

// Mask is a list of shapes whose luminance is used as the opacity of
// another shape.
type Mask struct {
	Shapes []*Shape
}

// Path is a chain of cubic Bézier segments.
// Points[0] is the start point, and every following triple gives the two
// control points and the end point of one segment.
type Path struct {
	Points []vec.Vec2
	Closed bool
}

// Data converts the path into a [path.Data] after mapping every point
// through xform.  Paths with fewer than two points cannot be drawn and
// give nil.  Incomplete trailing triples are ignored.
func (p Path) Data(xform func(vec.Vec2) vec.Vec2) *path.Data {
	if len(p.Points) < 2 {
		return nil
	}
	d := (&path.Data{}).MoveTo(xform(p.Points[0]))
	for i := 1; i+2 < len(p.Points); i += 3 {
		d = d.CubeTo(xform(p.Points[i]), xform(p.Points[i+1]), xform(p.Points[i+2]))
	}
	if p.Closed {
		d = d.Close()
	}
	return d
}

// Geometry combines all drawable paths of the shape into a single
// [path.Data], mapping points through xform.  If no path is drawable,
// nil is returned.
func (s *Shape) Geometry(xform func(vec.Vec2) vec.Vec2) *path.Data {
	var res *path.Data
	for _, p := range s.Paths {
		d := p.Data(xform)
		if d == nil {
			continue
		}
		if res == nil {
			res = d
			continue
		}
		res.Cmds = append(res.Cmds, d.Cmds...)
		res.Coords = append(res.Coords, d.Coords...)
	}
	return res
}

// HasFill reports whether the shape contributes a fill.
func (s *Shape) HasFill() bool {
	return !IsNone(s.Fill)
}

// HasStroke reports whether the shape contributes a stroke.
func (s *Shape) HasStroke() bool {
	return s.StrokeWidth > 0 && !IsNone(s.Stroke)
}

// HasMask reports whether the shape has a mask with at least one shape.
func (s *Shape) HasMask() bool {
	return s.Mask != nil && len(s.Mask.Shapes) > 0
}

// FillRule determines which points are inside a path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// RGBA decodes a color packed as 0xAABBGGRR, the layout used by the
// document parser.
func RGBA(packed uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}
