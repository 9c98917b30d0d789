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
	"image/color"
	"math"

	"seehuhn.de/go/vecpaint/document"
)

// LUTSize is the number of entries in a color lookup table.
const LUTSize = 256

// LUT is a color lookup table for gradient parameters in [0, 1].
// Entry i holds the color at t = i/255.
type LUT [LUTSize]color.NRGBA

// BuildLUT samples the stops of g at 256 evenly spaced positions.
// The alpha of every entry is multiplied by opacity.
// If g has no stops, all entries are transparent.
func BuildLUT(g *document.Gradient, opacity float64) *LUT {
	lut := &LUT{}
	if g == nil || len(g.Stops) == 0 {
		return lut
	}
	opacity = min(max(opacity, 0), 1)
	for i := range lut {
		t := float64(i) / (LUTSize - 1)
		c := colorAt(g.Stops, t)
		c.A = uint8(math.Round(float64(c.A) * opacity))
		lut[i] = c
	}
	return lut
}

// Lookup returns the table entry closest to t.
// The caller must apply the spread mode first; t is clamped to [0, 1].
func (l *LUT) Lookup(t float64) color.NRGBA {
	return l[Index(t)]
}

// Index returns the table index for the gradient parameter t.
func Index(t float64) int {
	i := int(t*(LUTSize-1) + 0.5)
	return min(max(i, 0), LUTSize-1)
}

// colorAt interpolates the stops at t.  The stops need not be sorted:
// the first adjacent pair which brackets t is used.  Outside the range
// of all offsets the first or last stop is used, and if unsorted stops
// leave t without a bracket, the nearest stop is used.
func colorAt(stops []document.Stop, t float64) color.NRGBA {
	if len(stops) == 1 {
		return stops[0].Color
	}

	for k := range len(stops) - 1 {
		a, b := stops[k], stops[k+1]
		if a.Offset <= t && t <= b.Offset {
			localT := 0.0
			if width := b.Offset - a.Offset; width > 0 {
				localT = (t - a.Offset) / width
			}
			return lerp(a.Color, b.Color, localT)
		}
	}

	lo, hi := stops[0].Offset, stops[0].Offset
	best := 0
	for k, s := range stops {
		lo = min(lo, s.Offset)
		hi = max(hi, s.Offset)
		if math.Abs(s.Offset-t) < math.Abs(stops[best].Offset-t) {
			best = k
		}
	}
	switch {
	case t < lo:
		return stops[0].Color
	case t > hi:
		return stops[len(stops)-1].Color
	default:
		return stops[best].Color
	}
}

// lerp interpolates all four channels independently.
func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t
		return uint8(math.Round(min(max(v, 0), 255)))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
