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
	"golang.org/x/image/colornames"

	"seehuhn.de/go/vecpaint/document"
)

func masked(s *document.Shape, mask ...*document.Shape) *document.Shape {
	s.Mask = &document.Mask{Shapes: mask}
	return s
}

var maskScenes = []Scene{
	{
		Name: "half",
		Doc: doc(64, 64, masked(filled(solid(colornames.Red), rectangle(8, 8, 56, 56)),
			filled(solid(colornames.White), rectangle(0, 0, 32, 64)),
			filled(solid(colornames.Black), rectangle(32, 0, 64, 64)),
		)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "gray",
		Doc: doc(64, 64,
			filled(solid(colornames.Black), rectangle(0, 28, 64, 36)),
			masked(filled(solid(colornames.Orange), circle(32, 32, 24)),
				filled(solid(colornames.Gray), rectangle(0, 0, 64, 64)),
			),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "ramp",
		Doc: doc(64, 64, masked(filled(solid(colornames.Blue), circle(32, 32, 26)),
			filled(linear(pt(6, 0), pt(58, 0), document.Pad, colornames.White, colornames.Black),
				rectangle(0, 0, 64, 64)),
		)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "gradient_content",
		Doc: doc(64, 64, masked(filled(radial(pt(32, 32), 26, pt(32, 32), document.Pad,
			colornames.Yellow, colornames.Red), circle(32, 32, 26)),
			filled(solid(colornames.White), star(32, 32, 30)),
		)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroked_content",
		Doc: doc(64, 64, masked(stroked(solid(colornames.Darkgreen), 6, circle(32, 32, 20)),
			filled(solid(colornames.White), rectangle(0, 0, 64, 32)),
		)),
		Width:  64,
		Height: 64,
	},
	{
		// a mask shape which has a mask of its own
		Name: "nested",
		Doc: doc(64, 64, masked(filled(solid(colornames.Purple), rectangle(4, 4, 60, 60)),
			masked(filled(solid(colornames.White), circle(32, 32, 28)),
				filled(solid(colornames.White), rectangle(0, 0, 64, 32)),
			),
		)),
		Width:  64,
		Height: 64,
	},
}
