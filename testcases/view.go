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
	"seehuhn.de/go/pdf/graphics"
)

// viewScenes draw small documents with a non-trivial view.
var viewScenes = []Scene{
	{
		Name: "scaled",
		Doc: doc(16, 16,
			filled(solid(colornames.Gold), star(8, 8, 7)),
			withCap(stroked(solid(colornames.Black), 1, poly(false, pt(2, 14), pt(14, 14))),
				graphics.LineCapRound, graphics.LineJoinRound),
		),
		Width:  64,
		Height: 64,
		Scale:  4,
	},
	{
		Name: "shrunk",
		Doc: doc(256, 256,
			filled(solid(colornames.Teal), circle(128, 128, 100)),
			stroked(solid(colornames.Black), 8, rectangle(16, 16, 240, 240)),
		),
		Width:  64,
		Height: 64,
		Scale:  0.25,
	},
	{
		Name: "offset",
		Doc: doc(64, 64,
			filled(solid(colornames.Crimson), rectangle(0, 0, 40, 40)),
			filled(solid(colornames.Navy), circle(60, 60, 20)),
		),
		Width:  64,
		Height: 64,
		Offset: pt(20, 10),
	},
	{
		// most shapes lie outside the surface and are culled
		Name: "culled",
		Doc: doc(200, 200,
			filled(solid(colornames.Red), rectangle(100, 100, 200, 200)),
			filled(solid(colornames.Green), rectangle(-50, -50, -10, -10)),
			filled(solid(colornames.Blue), rectangle(10, 10, 40, 40)),
			withCap(stroked(solid(colornames.Black), 6, poly(false, pt(66, 0), pt(66, 64))),
				graphics.LineCapButt, graphics.LineJoinMiter),
		),
		Width:  64,
		Height: 64,
	},
}
