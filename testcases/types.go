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

// Package testcases defines the scenes used to test the renderer.
//
// Each scene is a small document together with the surface size and the
// view used to draw it.  Besides the full rendering, a scene can be
// reduced to its silhouette: the fill and stroke areas of its shapes in
// surface coordinates, without paints or masks.  Silhouettes are the
// input for the reference images in testdata/reference, which are
// generated by the command in testcases/genpdf.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
)

// Scene is a document with the surface size and view used to draw it.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Doc    *document.Document
	Width  int // surface width in pixels
	Height int // surface height in pixels

	// Scale and Offset map document space to surface space.  A zero
	// Scale means 1.
	Scale  float64
	Offset vec.Vec2
}

// Apply maps a document point to the surface.
func (s Scene) Apply(p vec.Vec2) vec.Vec2 {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return vec.Vec2{X: p.X*scale + s.Offset.X, Y: p.Y*scale + s.Offset.Y}
}

// Op is one step of a silhouette.
type Op interface {
	isOp()
}

// Fill covers the interior of Path.
type Fill struct {
	Path *path.Data
	Rule document.FillRule
}

// Stroke covers the area swept by a pen along Path.  All lengths are in
// surface units.
type Stroke struct {
	Path       *path.Data
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

func (Fill) isOp()   {}
func (Stroke) isOp() {}

// Silhouette returns the areas painted by the visible shapes of the
// scene, in painting order.
func (s Scene) Silhouette() []Op {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}

	var ops []Op
	for _, sh := range s.Doc.Shapes {
		if !sh.Visible {
			continue
		}
		p := sh.Geometry(s.Apply)
		if p == nil {
			continue
		}
		if sh.HasFill() {
			ops = append(ops, Fill{Path: p, Rule: sh.FillRule})
		}
		if sh.HasStroke() {
			op := Stroke{
				Path:       p,
				Width:      sh.StrokeWidth * scale,
				Cap:        sh.Cap,
				Join:       sh.Join,
				MiterLimit: sh.MiterLimit,
				DashPhase:  sh.DashOffset * scale,
			}
			for _, d := range sh.Dash {
				op.Dash = append(op.Dash, d*scale)
			}
			ops = append(ops, op)
		}
	}
	return ops
}
