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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/document"
)

var curveScenes = []Scene{
	{
		Name:   "circle_fill",
		Doc:    doc(64, 64, filled(solid(colornames.Teal), circle(32, 32, 24))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_stroke",
		Doc:    doc(64, 64, stroked(solid(colornames.Teal), 3, circle(32, 32, 24))),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Doc:    doc(64, 64, filled(solid(colornames.Indigo), ellipse(32, 32, 28, 12))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "s_curve",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Black), 5, document.Path{
			Points: []vec.Vec2{pt(8, 56), pt(8, 8), pt(56, 56), pt(56, 8)},
		}), graphics.LineCapRound, graphics.LineJoinRound)),
		Width:  64,
		Height: 64,
	},
	{
		// the control points form a loop
		Name: "loop",
		Doc: doc(64, 64, stroked(solid(colornames.Black), 2, document.Path{
			Points: []vec.Vec2{pt(10, 40), pt(70, 0), pt(-6, 0), pt(54, 40)},
		})),
		Width:  64,
		Height: 64,
	},
	{
		// all control points coincide
		Name: "dot",
		Doc: doc(64, 64, withCap(stroked(solid(colornames.Black), 10, document.Path{
			Points: []vec.Vec2{pt(32, 32), pt(32, 32), pt(32, 32), pt(32, 32)},
		}), graphics.LineCapRound, graphics.LineJoinRound)),
		Width:  64,
		Height: 64,
	},
}
