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

package vecpaint

import (
	"image"
)

// ApplyLuminance multiplies the alpha of content by the luminance of mask.
// Both images hold premultiplied pixels.  Only the area common to both
// images is changed.
//
// The mask opacity of a pixel is its luminance times its alpha, where the
// luminance is computed from the unpremultiplied color as
// (54·R + 183·G + 19·B)/256.  When the content alpha is reduced, the color
// channels are scaled by the same factor, so the pixel stays a valid
// premultiplied color.
func ApplyLuminance(content, mask *image.RGBA) {
	r := content.Bounds().Intersect(mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ci := content.PixOffset(r.Min.X, y)
		mi := mask.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, ci, mi = x+1, ci+4, mi+4 {
			c := content.Pix[ci : ci+4 : ci+4]
			oldA := uint32(c[3])
			if oldA == 0 {
				continue
			}

			m := mask.Pix[mi : mi+4 : mi+4]
			newA := oldA * maskOpacity(m[0], m[1], m[2], m[3]) / 255
			if newA >= oldA {
				continue
			}
			c[0] = uint8(uint32(c[0]) * newA / oldA)
			c[1] = uint8(uint32(c[1]) * newA / oldA)
			c[2] = uint8(uint32(c[2]) * newA / oldA)
			c[3] = uint8(newA)
		}
	}
}

// maskOpacity returns the opacity, in the range 0 to 255, which a
// premultiplied mask pixel imposes on the content.
func maskOpacity(r, g, b, a uint8) uint32 {
	if a == 0 {
		return 0
	}
	alpha := uint32(a)
	// unpremultiply
	R := min(uint32(r)*255/alpha, 255)
	G := min(uint32(g)*255/alpha, 255)
	B := min(uint32(b)*255/alpha, 255)

	lum := (54*R + 183*G + 19*B) / 256
	return lum * alpha / 255
}
