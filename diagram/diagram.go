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

// Package diagram writes rendered point grids as PDF files.
//
// Each marked coordinate becomes a filled square, so that circles look
// round independently of the cell width used for text output.
package diagram

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixel"
)

// DefaultCell is the side length of one grid cell in PDF points, used when
// no positive cell size is given.
const DefaultCell = 10.0

// PageRect returns the page area used for g, with the lower left corner at
// the origin.  An empty grid gives an empty rectangle.
func PageRect(g *pixel.Grid, cell float64) rect.Rect {
	if cell <= 0 {
		cell = DefaultCell
	}
	if g.Len() == 0 {
		return rect.Rect{}
	}
	b := g.Bounds()
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(b.Dx()) * cell,
		URy: float64(b.Dy()) * cell,
	}
}

// WritePDF writes g to the file fname as a single-page PDF document.
// Marked cells are drawn in black on a white background.
func WritePDF(fname string, g *pixel.Grid, cell float64) error {
	if cell <= 0 {
		cell = DefaultCell
	}
	area := PageRect(g, cell)
	if area.URx <= 0 || area.URy <= 0 {
		// PDF pages need a positive size
		area = rect.Rect{URx: cell, URy: cell}
	}
	paper := &pdf.Rectangle{
		URx: area.URx,
		URy: area.URy,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, area.URx, area.URy)
	page.Fill()

	// Both the grid and PDF user space have y pointing upwards, so only
	// a scale is needed to map grid coordinates to points.
	page.Transform(matrix.Matrix{cell, 0, 0, cell, 0, 0})

	page.SetFillColor(color.DeviceGray(0))
	if g.Len() > 0 {
		b := g.Bounds()
		n := 0
		for y := b.MinY; y <= b.MaxY; y++ {
			for x := b.MinX; x <= b.MaxX; x++ {
				if g.Marked(x, y) {
					page.Rectangle(float64(x-b.MinX), float64(y-b.MinY), 1, 1)
					n++
				}
			}
		}
		if n > 0 {
			page.Fill()
		}
	}

	return page.Close()
}
