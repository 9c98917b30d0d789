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

package gradient

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/affine"
)

// Native reports whether a gradient with transform m (gradient space to
// device space) can be described by the simple geometry of a surface's
// built-in gradient primitives.  Linear gradients must not be rotated or
// skewed.  Radial gradients must additionally be scaled uniformly, since
// the primitives only know circles.
func Native(kind Kind, m matrix.Matrix) bool {
	if math.Abs(affine.Det(m)) < affine.SingularThreshold {
		return false
	}
	if affine.HasRotationOrSkew(m, affine.DefaultEpsilon) {
		return false
	}
	return kind == Linear || affine.IsUniformScale(m, affine.DefaultEpsilon)
}

// Axis returns the device-space images of the gradient-space points
// (0, 0) and (0, 1), which are the start and end of a linear gradient.
func Axis(m matrix.Matrix) (p0, p1 vec.Vec2) {
	p0 = affine.Apply(m, vec.Vec2{})
	p1 = affine.Apply(m, vec.Vec2{X: 0, Y: 1})
	return p0, p1
}

// Circle returns the device-space center, radius and focal point of a
// radial gradient.  The result is only meaningful if [Native] reports true.
func Circle(m matrix.Matrix, focal vec.Vec2) (center vec.Vec2, radius float64, focus vec.Vec2) {
	center = affine.Apply(m, vec.Vec2{})
	radius = math.Hypot(m[0], m[1])
	focus = affine.Apply(m, focal)
	return center, radius, focus
}

// AxisMatrix is the inverse construction of [Axis]: it returns a matrix
// from gradient space to device space whose gradient axis runs from p0 to
// p1.  The x-axis is mapped perpendicular to the gradient axis.
func AxisMatrix(p0, p1 vec.Vec2) matrix.Matrix {
	d := p1.Sub(p0)
	return matrix.Matrix{d.Y, -d.X, d.X, d.Y, p0.X, p0.Y}
}

// CircleMatrix is the inverse construction of [Circle], for a circle
// without rotation.  The focal point is returned in gradient space.
func CircleMatrix(center vec.Vec2, radius float64, focus vec.Vec2) (matrix.Matrix, vec.Vec2) {
	m := matrix.Matrix{radius, 0, 0, radius, center.X, center.Y}
	var focal vec.Vec2
	if radius != 0 {
		focal = focus.Sub(center).Mul(1 / radius)
	}
	return m, focal
}
