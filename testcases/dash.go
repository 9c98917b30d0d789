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

var dashScenes = []Scene{
	{
		Name:   "simple",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 4, poly(false, pt(5, 32), pt(59, 32))), 0, 10, 5)),
		Width:  64,
		Height: 64,
	},
	{
		// odd patterns are repeated: [5 3 8] becomes [5 3 8 5 3 8]
		Name:   "three_element",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 4, poly(false, pt(5, 32), pt(59, 32))), 0, 5, 3, 8)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "phase",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 4, poly(false, pt(5, 32), pt(59, 32))), 7, 10, 5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 4, poly(false, pt(10, 50), pt(32, 14), pt(54, 50))), 0, 12, 4)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "closed",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 3, rectangle(12, 12, 52, 52)), 3, 9, 6)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Doc:    doc(64, 64, withDash(stroked(solid(colornames.Black), 3, circle(32, 32, 22)), 0, 6, 4)),
		Width:  64,
		Height: 64,
	},
	{
		// zero-length dashes with round caps give dots
		Name: "dots",
		Doc: doc(64, 64, withDash(withCap(stroked(solid(colornames.Black), 5, poly(false, pt(8, 32), pt(56, 32))),
			graphics.LineCapRound, graphics.LineJoinRound), 0, 0, 8)),
		Width:  64,
		Height: 64,
	},
}
