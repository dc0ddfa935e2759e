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

package pixel

import (
	"bytes"
	"image"
	"io"
)

// GridOptions controls how [RenderGrid] lays out a point collection.
// A nil *GridOptions is equivalent to the zero value.
type GridOptions struct {
	// Bounds, if non-nil, fixes the coordinate range shown by the grid.
	// Points outside these bounds are silently dropped.
	// If Bounds is nil, the smallest rectangle containing all points and
	// all Refs is used.
	Bounds *Bounds

	// Refs lists additional points (for example the end points of a line)
	// which are included when the bounds are derived automatically.
	// Refs are not marked.
	Refs []image.Point

	// CellWidth is the number of characters used for each x coordinate.
	// Terminal cells are about twice as high as wide, so circles look
	// round with a cell width of 2.  Values less than 1 are treated as 1.
	CellWidth int

	// Mark and Blank are the characters used for marked and empty cells.
	// The zero values select '*' and ' '.
	Mark, Blank byte
}

// Grid is a text rendering of a set of points.
// Row 0 of the grid corresponds to the largest y coordinate.
//
// A Grid is not modified after construction and is safe for concurrent use.
type Grid struct {
	bounds    Bounds
	cellWidth int
	rows      [][]byte
	marked    []bool // one entry per coordinate, in row order
}

// RenderGrid marks every point of points in a new character grid.
// Points may be repeated; the result is the same as if every point occurred
// exactly once.
//
// If opt.Bounds is nil and there are no points and no reference points,
// the returned grid has no rows.
func RenderGrid(points []image.Point, opt *GridOptions) *Grid {
	if opt == nil {
		opt = &GridOptions{}
	}
	g := &Grid{
		cellWidth: max(opt.CellWidth, 1),
	}
	mark := opt.Mark
	if mark == 0 {
		mark = '*'
	}
	blank := opt.Blank
	if blank == 0 {
		blank = ' '
	}

	if opt.Bounds != nil {
		g.bounds = *opt.Bounds
	} else {
		b, ok := BoundsOf(points, opt.Refs...)
		if !ok {
			return g
		}
		g.bounds = b
	}
	if !g.bounds.Valid() {
		return g
	}

	b := g.bounds
	width := b.Dx() * g.cellWidth
	buf := bytes.Repeat([]byte{blank}, b.Dy()*width)
	g.rows = make([][]byte, b.Dy())
	for i := range g.rows {
		g.rows[i] = buf[i*width : (i+1)*width : (i+1)*width]
	}
	g.marked = make([]bool, b.Dx()*b.Dy())

	for _, p := range points {
		if !b.Contains(p) {
			continue
		}
		g.marked[g.index(p.X, p.Y)] = true
		row := g.rows[b.MaxY-p.Y]
		col := (p.X - b.MinX) * g.cellWidth
		for i := range g.cellWidth {
			row[col+i] = mark
		}
	}
	return g
}

// Bounds returns the coordinate range covered by the grid.
// The result is only meaningful if the grid has at least one row.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// CellWidth returns the number of characters per x coordinate.
func (g *Grid) CellWidth() int {
	return g.cellWidth
}

// Len returns the number of rows in the grid.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Rows returns the rows of the grid, from the largest y coordinate down to
// the smallest.  All rows have the same length.
func (g *Grid) Rows() []string {
	res := make([]string, len(g.rows))
	for i, row := range g.rows {
		res[i] = string(row)
	}
	return res
}

// Marked reports whether the cell for (x, y) is marked.
// Coordinates outside the grid are never marked.  The answer does not
// depend on the Mark and Blank characters, even if they coincide.
func (g *Grid) Marked(x, y int) bool {
	p := image.Point{X: x, Y: y}
	if len(g.rows) == 0 || !g.bounds.Contains(p) {
		return false
	}
	return g.marked[g.index(x, y)]
}

// index returns the position of (x, y) in g.marked.
func (g *Grid) index(x, y int) int {
	return (g.bounds.MaxY-y)*g.bounds.Dx() + x - g.bounds.MinX
}

// String returns the rows of the grid, each terminated by a newline.
func (g *Grid) String() string {
	var buf bytes.Buffer
	g.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the rows of the grid to w, each terminated by a newline.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range g.rows {
		n, err := w.Write(row)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = w.Write([]byte{'\n'})
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
