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

// Package gradient evaluates linear and radial gradients.
//
// Colors are looked up in a 256-entry table built from the gradient stops.
// A [Sampler] maps device-space points back into gradient space and can
// paint a gradient into the covered pixels of an RGBA buffer.
package gradient

import (
	"math"

	"seehuhn.de/go/vecpaint/document"
)

// ApplySpread maps the gradient parameter t into [0, 1] using the given
// spread mode.  Unknown modes are treated like [document.Pad].
func ApplySpread(mode document.Spread, t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	switch mode {
	case document.Repeat:
		t -= math.Floor(t)
		if t >= 1 { // rounding for tiny negative t
			t = 0
		}
		return t
	case document.Reflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
		return t
	default:
		return min(max(t, 0), 1)
	}
}
