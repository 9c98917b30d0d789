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

var fillScenes = []Scene{
	{
		Name:   "triangle",
		Doc:    doc(64, 64, filled(solid(colornames.Black), poly(true, pt(10, 50), pt(32, 10), pt(54, 50)))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Doc:    doc(64, 64, filled(solid(colornames.Darkgreen), rectangle(10, 10, 44, 44))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_nonzero",
		Doc:    doc(64, 64, filled(solid(colornames.Gold), star(32, 32, 25))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "star_evenodd",
		Doc: func() *document.Document {
			s := filled(solid(colornames.Gold), star(32, 32, 25))
			s.FillRule = document.EvenOdd
			return doc(64, 64, s)
		}(),
		Width:  64,
		Height: 64,
	},
	{
		// two circles in one shape, the inner one cut out
		Name: "ring_evenodd",
		Doc: func() *document.Document {
			s := filled(solid(colornames.Steelblue), circle(32, 32, 26), circle(32, 32, 14))
			s.FillRule = document.EvenOdd
			return doc(64, 64, s)
		}(),
		Width:  64,
		Height: 64,
	},
	{
		Name: "translucent_overlap",
		Doc: doc(64, 64,
			filled(translucent(colornames.Red, 128), rectangle(8, 8, 40, 40)),
			filled(translucent(colornames.Blue, 128), rectangle(24, 24, 56, 56)),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "opacity",
		Doc: func() *document.Document {
			s := filled(solid(colornames.Purple), circle(32, 32, 24))
			s.Opacity = 0.25
			return doc(64, 64, s)
		}(),
		Width:  64,
		Height: 64,
	},
	{
		Name: "hidden",
		Doc: func() *document.Document {
			s := filled(solid(colornames.Black), rectangle(0, 0, 64, 64))
			s.Visible = false
			return doc(64, 64, s, filled(solid(colornames.Orange), rectangle(16, 16, 48, 48)))
		}(),
		Width:  64,
		Height: 64,
	},
}
