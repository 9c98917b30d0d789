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

package testcases

import (
	"image/color"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
)

var gradientScenes = []Scene{
	{
		Name: "linear",
		Doc: doc(64, 64, filled(linear(pt(8, 0), pt(56, 0), document.Pad,
			colornames.Red, colornames.Blue), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "linear_diagonal",
		Doc: doc(64, 64, filled(linear(pt(8, 8), pt(56, 56), document.Pad,
			colornames.Yellow, colornames.Green, colornames.Navy), circle(32, 32, 28))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "linear_repeat",
		Doc: doc(64, 64, filled(linear(pt(24, 0), pt(36, 0), document.Repeat,
			colornames.White, colornames.Black), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "linear_reflect",
		Doc: doc(64, 64, filled(linear(pt(0, 24), pt(0, 36), document.Reflect,
			colornames.White, colornames.Black), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial",
		Doc: doc(64, 64, filled(radial(pt(32, 32), 28, pt(32, 32), document.Pad,
			colornames.White, colornames.Orange, colornames.Darkred), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial_focal",
		Doc: doc(64, 64, filled(radial(pt(32, 32), 28, pt(20, 22), document.Pad,
			colornames.White, colornames.Darkblue), circle(32, 32, 28))),
		Width:  64,
		Height: 64,
	},
	{
		// the focal point lies outside the circle and is pulled inside
		Name: "radial_focal_outside",
		Doc: doc(64, 64, filled(radial(pt(32, 32), 20, pt(60, 32), document.Pad,
			colornames.White, colornames.Darkblue), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial_reflect",
		Doc: doc(64, 64, filled(radial(pt(32, 32), 8, pt(32, 32), document.Reflect,
			colornames.Black, colornames.Lime), rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		// an elliptic gradient, which has no native equivalent
		Name: "radial_elliptic",
		Doc: doc(64, 64, filled(document.RadialGradient{Gradient: &document.Gradient{
			Transform: matrix.Matrix{28, 0, 0, 12, 32, 32},
			Stops:     stops(colornames.White, colornames.Crimson),
		}}, rectangle(4, 4, 60, 60))),
		Width:  64,
		Height: 64,
	},
	{
		// a rotated gradient, which is always rasterized
		Name: "rotated",
		Doc: doc(64, 64, filled(document.LinearGradient{Gradient: &document.Gradient{
			Transform: matrix.Matrix{10, 10, -20, 20, 32, 32},
			Spread:    document.Reflect,
			Stops:     stops(colornames.Skyblue, colornames.Midnightblue),
		}}, circle(32, 32, 28))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "transparent_stops",
		Doc: doc(64, 64,
			filled(solid(colornames.Black), rectangle(0, 28, 64, 36)),
			filled(linear(pt(4, 0), pt(60, 0), document.Pad,
				colornames.Red, color.RGBA{}), rectangle(4, 4, 60, 60)),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroke",
		Doc: doc(64, 64, withCap(stroked(linear(pt(8, 0), pt(56, 0), document.Pad,
			colornames.Orange, colornames.Purple), 8, poly(false, pt(8, 48), pt(32, 12), pt(56, 48))),
			graphics.LineCapRound, graphics.LineJoinRound)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroke_dashed",
		Doc: doc(64, 64, withDash(stroked(radial(pt(32, 32), 24, pt(32, 32), document.Pad,
			colornames.Red, colornames.Blue), 6, circle(32, 32, 22)), 0, 10, 6)),
		Width:  64,
		Height: 64,
	},
	{
		// a singular transform is drawn with the first stop
		Name: "singular",
		Doc: doc(64, 64, filled(document.LinearGradient{Gradient: &document.Gradient{
			Transform: matrix.Matrix{1, 2, 2, 4, 0, 0},
			Stops:     stops(colornames.Seagreen, colornames.Black),
		}}, rectangle(8, 8, 56, 56))),
		Width:  64,
		Height: 64,
	},
}
