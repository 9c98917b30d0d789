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

	"seehuhn.de/go/vecpaint/document"
)

var strokeScenes = []Scene{
	{
		Name: "line_butt",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Black), 8, poly(false, pt(10, 32), pt(54, 32))),
			graphics.LineCapButt, graphics.LineJoinMiter)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "line_round",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Black), 8, poly(false, pt(10, 32), pt(54, 32))),
			graphics.LineCapRound, graphics.LineJoinMiter)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "line_square",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Black), 8, poly(false, pt(10, 32), pt(54, 32))),
			graphics.LineCapSquare, graphics.LineJoinMiter)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "corner_miter",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Navy), 6, poly(false, pt(10, 50), pt(32, 14), pt(54, 50))),
			graphics.LineCapButt, graphics.LineJoinMiter)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "corner_round",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Navy), 6, poly(false, pt(10, 50), pt(32, 14), pt(54, 50))),
			graphics.LineCapButt, graphics.LineJoinRound)),
		Width:  64,
		Height: 64,
	},
	{
		Name: "corner_bevel",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Navy), 6, poly(false, pt(10, 50), pt(32, 14), pt(54, 50))),
			graphics.LineCapButt, graphics.LineJoinBevel)),
		Width:  64,
		Height: 64,
	},
	{
		// the sharp angle exceeds the miter limit and falls back to a bevel
		Name: "miter_limit",
		Doc: func() *document.Document {
			s := withCap(stroked(solid(colornames.Navy), 4, poly(false, pt(8, 56), pt(32, 8), pt(40, 56))),
				graphics.LineCapButt, graphics.LineJoinMiter)
			s.MiterLimit = 2
			return doc(64, 64, s)
		}(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "closed_square",
		Doc:    doc(64, 64, stroked(solid(colornames.Maroon), 5, rectangle(12, 12, 52, 52))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "fill_and_stroke",
		Doc: func() *document.Document {
			s := filled(solid(colornames.Yellow), circle(32, 32, 20))
			s.Stroke = solid(colornames.Black)
			s.StrokeWidth = 4
			return doc(64, 64, s)
		}(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hairline",
		Doc:    doc(64, 64, stroked(solid(colornames.Black), 0.25, poly(false, pt(4, 4), pt(60, 30), pt(4, 60)))),
		Width:  64,
		Height: 64,
	},
}
