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

var lineCases = []TestCase{
	{
		Name:  "shallow",
		Shape: Line{From: pt(0, 0), To: pt(5, 2)},
	},
	{
		Name:  "diagonal",
		Shape: Line{From: pt(1, 3), To: pt(8, 10)},
	},
	{
		Name:  "steep_down",
		Shape: Line{From: pt(0, 0), To: pt(2, -7)},
	},
	{
		Name:  "leftwards",
		Shape: Line{From: pt(3, 1), To: pt(-4, -2)},
	},
	{
		Name:  "horizontal",
		Shape: Line{From: pt(-3, 0), To: pt(3, 0)},
	},
	{
		Name:  "single",
		Shape: Line{From: pt(4, 4), To: pt(4, 4)},
	},
}

var circleCases = []TestCase{
	{
		Name:      "r1",
		Shape:     Circle{Radius: 1},
		CellWidth: 2,
	},
	{
		Name:      "r3",
		Shape:     Circle{Radius: 3},
		CellWidth: 2,
	},
	{
		Name:      "r5",
		Shape:     Circle{Radius: 5},
		CellWidth: 2,
	},
	{
		Name:      "r10",
		Shape:     Circle{Radius: 10},
		CellWidth: 2,
	},
}
