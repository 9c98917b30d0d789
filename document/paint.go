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

package document

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Paint describes how the fill or the stroke of a shape is colored.
// The implementations are [NoPaint], [Solid], [LinearGradient] and
// [RadialGradient]; a nil Paint is treated like NoPaint.
type Paint interface {
	isPaint()
}

// NoPaint disables the fill or stroke.
type NoPaint struct{}

// Solid paints with a single color.
type Solid struct {
	Color color.NRGBA
}

// LinearGradient paints with a linear gradient.
// In gradient space, the gradient parameter is the y-coordinate.
type LinearGradient struct {
	*Gradient
}

// RadialGradient paints with a radial gradient.
// In gradient space, the gradient parameter is the distance from the
// origin, or from the focal point if one is set.
type RadialGradient struct {
	*Gradient
}

func (NoPaint) isPaint()        {}
func (Solid) isPaint()          {}
func (LinearGradient) isPaint() {}
func (RadialGradient) isPaint() {}

// IsNone reports whether p paints nothing.
func IsNone(p Paint) bool {
	switch p := p.(type) {
	case Solid:
		return false
	case LinearGradient:
		return p.Gradient == nil
	case RadialGradient:
		return p.Gradient == nil
	default:
		return true
	}
}

// Gradient holds the data shared by linear and radial gradients.
// Gradients are never modified after the document is built, so
// several paints may refer to the same Gradient.
type Gradient struct {
	// Transform maps gradient space to document space.
	Transform matrix.Matrix

	Spread Spread

	// Stops should be sorted by offset, but this is not required.
	Stops []Stop

	// Focal is the focal point of a radial gradient in gradient space.
	// It must lie inside the unit circle.  The zero value places the
	// focal point at the center.
	Focal vec.Vec2
}

// Stop is a color at a position along the gradient.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// FirstColor returns the color of the first stop.
func (g *Gradient) FirstColor() (color.NRGBA, bool) {
	if g == nil || len(g.Stops) == 0 {
		return color.NRGBA{}, false
	}
	return g.Stops[0].Color, true
}

// MiddleColor returns the color of the stop in the middle of the stop list.
func (g *Gradient) MiddleColor() (color.NRGBA, bool) {
	if g == nil || len(g.Stops) == 0 {
		return color.NRGBA{}, false
	}
	return g.Stops[len(g.Stops)/2].Color, true
}

// Spread selects how a gradient continues outside of [0, 1].
type Spread int

const (
	// Pad continues with the colors of the end points.
	Pad Spread = iota

	// Repeat restarts the gradient at every integer.
	Repeat

	// Reflect runs the gradient alternately forwards and backwards.
	Reflect
)

func (s Spread) String() string {
	switch s {
	case Pad:
		return "pad"
	case Repeat:
		return "repeat"
	case Reflect:
		return "reflect"
	default:
		return "Spread(?)"
	}
}
