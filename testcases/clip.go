// seehuhn.de/go/pixel - integer rasterization of lines and circles
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
	"image"

	"seehuhn.de/go/pixel"
)

// clipCases use explicit bounds smaller than the extent of the points.
var clipCases = []TestCase{
	{
		Name:   "drop_outside",
		Shape:  Points{List: []image.Point{pt(-2, -2), pt(0, 0)}},
		Bounds: &pixel.Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1},
	},
	{
		Name:      "circle_quadrant",
		Shape:     Circle{Radius: 6},
		CellWidth: 2,
		Bounds:    &pixel.Bounds{MinX: 0, MaxX: 7, MinY: 0, MaxY: 7},
	},
	{
		Name:   "line_window",
		Shape:  Line{From: pt(-6, -3), To: pt(6, 3)},
		Bounds: &pixel.Bounds{MinX: -2, MaxX: 2, MinY: -2, MaxY: 2},
	},
}
