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

// Package vecpaint renders vector documents onto raster surfaces.
//
// A [document.Document] is a list of shapes.  Each shape has paths made of
// cubic Bézier segments, a fill paint, a stroke paint and optionally a
// luminance mask.  Paints are flat colors or linear and radial gradients.
// The [Renderer] draws the shapes in order onto a [surface.Surface],
// using the surface's native gradient primitives where the gradient
// geometry allows it and rasterizing the gradient in an offscreen buffer
// otherwise.
//
// The [Engine] adds the state of a simple viewer on top of this: the
// loaded document, the view (scale and offset) and the display mode.
//
// Rendering never fails.  Shapes which cannot be drawn exactly are drawn
// with a flat color approximation, and a debug message is logged via the
// logger installed with [SetLogger].
package vecpaint
