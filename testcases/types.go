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
	"fmt"
	"image"

	"seehuhn.de/go/pixel"
)

// TestCase defines a single rasterization scenario.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Shape     Shape         // the geometry to rasterize
	CellWidth int           // characters per x coordinate (0 means 1)
	Bounds    *pixel.Bounds // fixed grid bounds (nil means derived)
}

// Shape is the geometry of a test case.
type Shape interface {
	isShape()
}

// Line is a straight segment between two end points.
type Line struct {
	From, To image.Point
}

func (Line) isShape() {}

// Circle is a circle of the given radius around the origin.
type Circle struct {
	Radius int
}

func (Circle) isShape() {}

// Points is an explicit list of points.
type Points struct {
	List []image.Point
}

func (Points) isShape() {}

// Points rasterizes the shape of the test case.
func (tc TestCase) Points() ([]image.Point, error) {
	switch s := tc.Shape.(type) {
	case Line:
		return pixel.Line(s.From.X, s.From.Y, s.To.X, s.To.Y), nil
	case Circle:
		return pixel.Circle(s.Radius)
	case Points:
		return s.List, nil
	default:
		return nil, fmt.Errorf("shape %T: %w", s, pixel.ErrInvalidArgument)
	}
}

// Options returns the grid options used to render the test case.
// Line end points are used as reference points for the derived bounds.
func (tc TestCase) Options() *pixel.GridOptions {
	opt := &pixel.GridOptions{
		Bounds:    tc.Bounds,
		CellWidth: tc.CellWidth,
		Blank:     '.',
	}
	if l, ok := tc.Shape.(Line); ok {
		opt.Refs = []image.Point{l.From, l.To}
	}
	return opt
}

// Render rasterizes the test case and returns the resulting grid.
func (tc TestCase) Render() (*pixel.Grid, error) {
	pts, err := tc.Points()
	if err != nil {
		return nil, err
	}
	return pixel.RenderGrid(pts, tc.Options()), nil
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
