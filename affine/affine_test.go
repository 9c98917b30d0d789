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

package affine

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func closeMatrix(a, b matrix.Matrix, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps*max(1, math.Abs(b[i])) {
			return false
		}
	}
	return true
}

func TestInvertRoundTrip(t *testing.T) {
	cases := []matrix.Matrix{
		matrix.Identity,
		{2, 0, 0, 2, 10, -3},
		{0.5, 0.25, -1, 3, 7, 8},
		{0, 1, -1, 0, 0, 0},
		{1e-2, 0, 0, 1e-2, 1e3, 1e3},
		{120, 40, -7, 300, -5, 0.5},
	}
	for i, m := range cases {
		inv, err := Invert(m)
		if err != nil {
			t.Fatalf("%d: unexpected error %v", i, err)
		}
		back, err := Invert(inv)
		if err != nil {
			t.Fatalf("%d: unexpected error on second inversion: %v", i, err)
		}
		if !closeMatrix(back, m, 1e-9) {
			t.Errorf("%d: Invert(Invert(%v)) = %v", i, m, back)
		}
		if !closeMatrix(m.Mul(inv), matrix.Identity, 1e-9) {
			t.Errorf("%d: m·m⁻¹ = %v", i, m.Mul(inv))
		}
	}
}

func TestInvertSingular(t *testing.T) {
	cases := []matrix.Matrix{
		{},
		{1, 2, 2, 4, 0, 0},
		{1e-4, 0, 0, 1e-4, 5, 5},
	}
	for _, m := range cases {
		if _, err := Invert(m); !errors.Is(err, ErrSingular) {
			t.Errorf("Invert(%v): got %v, want ErrSingular", m, err)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	scale := matrix.Matrix{2, 0, 0, 2, 0, 0}
	shift := matrix.Matrix{1, 0, 0, 1, 10, 0}

	// scale first, then shift
	p := Apply(scale.Mul(shift), vec.Vec2{X: 1, Y: 1})
	if p != (vec.Vec2{X: 12, Y: 2}) {
		t.Errorf("scale then shift: got %v", p)
	}

	// shift first, then scale
	p = Apply(shift.Mul(scale), vec.Vec2{X: 1, Y: 1})
	if p != (vec.Vec2{X: 22, Y: 2}) {
		t.Errorf("shift then scale: got %v", p)
	}
}

func TestClassify(t *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	cases := []struct {
		name    string
		m       matrix.Matrix
		uniform bool
		rotSkew bool
	}{
		{"identity", matrix.Identity, true, false},
		{"zoomed", matrix.Matrix{250, 0, 0, 250, 3, 4}, true, false},
		{"stretched", matrix.Matrix{2, 0, 0, 1, 0, 0}, false, false},
		{"rotated", matrix.Matrix{c, s, -s, c, 0, 0}, true, true},
		{"skewed", matrix.Matrix{1, 0, 0.5, 1, 0, 0}, false, true},
		{"almost uniform", matrix.Matrix{1000, 0, 0, 1000.5, 0, 0}, true, false},
		{"tiny off-diagonal", matrix.Matrix{1000, 0.01, 0, 1000, 0, 0}, true, false},
		{"mirrored", matrix.Matrix{-1, 0, 0, 1, 0, 0}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniformScale(tc.m, DefaultEpsilon); got != tc.uniform {
				t.Errorf("IsUniformScale = %t, want %t", got, tc.uniform)
			}
			if got := HasRotationOrSkew(tc.m, DefaultEpsilon); got != tc.rotSkew {
				t.Errorf("HasRotationOrSkew = %t, want %t", got, tc.rotSkew)
			}
		})
	}
}
