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

// Package affine implements the few operations on 2×3 affine matrices
// which the renderer needs beyond what [matrix.Matrix] offers: inversion
// with singularity detection and classification of transforms.
//
// Matrices use the PDF layout [a b c d e f], mapping (x, y) to
// (a·x + c·y + e, b·x + d·y + f).
package affine

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrSingular is returned by [Invert] for matrices which cannot be inverted.
var ErrSingular = errors.New("singular transform")

// SingularThreshold is the smallest determinant magnitude for which
// a matrix is considered invertible.
const SingularThreshold = 1e-6

// DefaultEpsilon is the tolerance used by callers of [IsUniformScale] and
// [HasRotationOrSkew] when no other value is required.
const DefaultEpsilon = 1e-3

// Det returns the determinant of the linear part of m.
func Det(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of m.
// If |det(m)| < [SingularThreshold], the error [ErrSingular] is returned.
func Invert(m matrix.Matrix) (matrix.Matrix, error) {
	det := Det(m)
	if math.Abs(det) < SingularThreshold || math.IsNaN(det) {
		return matrix.Matrix{}, ErrSingular
	}
	return m.Inv(), nil
}

// Apply maps the point v through m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// ApplyLinear maps the vector v through the linear part of m,
// ignoring the translation.
func ApplyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// basisLengths returns the lengths of the images of the two unit vectors.
func basisLengths(m matrix.Matrix) (float64, float64) {
	return math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3])
}

// IsUniformScale reports whether m scales both axes by the same amount.
// The basis lengths are compared relative to the larger of the two,
// so the result does not depend on the overall zoom level.
func IsUniformScale(m matrix.Matrix, eps float64) bool {
	sx, sy := basisLengths(m)
	scale := max(sx, sy)
	if scale == 0 {
		return false
	}
	return math.Abs(sx-sy) <= eps*scale
}

// HasRotationOrSkew reports whether the off-diagonal entries of m are
// significant compared to the size of the matrix.
func HasRotationOrSkew(m matrix.Matrix, eps float64) bool {
	sx, sy := basisLengths(m)
	scale := max(sx, sy, 1e-12)
	return math.Abs(m[1]) > eps*scale || math.Abs(m[2]) > eps*scale
}
