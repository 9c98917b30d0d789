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

// largeScenes cover regions larger than the default buffer limit of 2048
// pixels, so that gradients and masks are drawn at reduced resolution.
var largeScenes = []Scene{
	{
		Name: "linear",
		Doc: doc(2400, 48, filled(linear(pt(0, 0), pt(2400, 0), document.Reflect,
			colornames.Red, colornames.Blue), rectangle(0, 0, 2400, 48))),
		Width:  2400,
		Height: 48,
	},
	{
		Name: "radial",
		Doc: doc(1200, 24, filled(radial(pt(600, 12), 600, pt(600, 12), document.Pad,
			colornames.White, colornames.Black), rectangle(0, 0, 1200, 24))),
		Width:  2400,
		Height: 48,
		Scale:  2,
	},
	{
		Name: "mask",
		Doc: doc(2400, 48, masked(filled(solid(colornames.Green), rectangle(0, 0, 2400, 48)),
			filled(linear(pt(0, 0), pt(2400, 0), document.Pad, colornames.Black, colornames.White),
				rectangle(0, 0, 2400, 48)),
		)),
		Width:  2400,
		Height: 48,
	},
}
