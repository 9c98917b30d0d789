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

// Package surface defines the drawing target used by the renderer, and a
// software implementation which draws into an *image.RGBA.
//
// A Surface only needs flat color fills and strokes, offscreen buffers and
// buffer blits. Surfaces which can fill paths with gradients directly
// also implement GradientFiller.
package surface

import (
	"errors"
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
)

// ErrBufferSize is returned by NewBuffer when a buffer of the requested
// size cannot be provided.
var ErrBufferSize = errors.New("unsupported buffer size")

// Surface is a drawing target. All coordinates are surface pixels, with
// the y axis pointing down.
type Surface interface {
	// Bounds returns the drawable area.
	Bounds() image.Rectangle

	// SetColor sets the color used by FillPath and StrokePath.
	SetColor(c color.NRGBA)

	FillPath(p *path.Data, rule document.FillRule)
	StrokePath(p *path.Data, style StrokeStyle)

	// NewBuffer allocates a transparent offscreen buffer of the given size.
	NewBuffer(w, h int) (Buffer, error)

	// DrawBuffer composites the part src of b over the area dst of the
	// surface, scaling as needed.
	DrawBuffer(b Buffer, src, dst image.Rectangle)
}

// Buffer is an offscreen surface whose pixels can be accessed directly.
type Buffer interface {
	Surface

	// RGBA returns the pixels of the buffer, with premultiplied alpha.
	// The origin of the image is the origin of the buffer.
	RGBA() *image.RGBA
}

// StrokeStyle describes how a path is stroked.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// GradientFiller is implemented by surfaces with native gradient fills.
type GradientFiller interface {
	FillLinear(p *path.Data, rule document.FillRule, g LinearGradient)
	FillRadial(p *path.Data, rule document.FillRule, g RadialGradient)
}

// LinearGradient is a two-point gradient. Offset 0 is at P0 and offset 1
// at P1, with color constant along lines perpendicular to P0P1.
type LinearGradient struct {
	P0, P1  vec.Vec2
	Stops   []document.Stop
	Spread  document.Spread
	Opacity float64
}

// RadialGradient is a circular gradient. Offset 0 is at Focus, offset 1
// on the circle.
type RadialGradient struct {
	Center  vec.Vec2
	Radius  float64
	Focus   vec.Vec2
	Stops   []document.Stop
	Spread  document.Spread
	Opacity float64
}
