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

// Package pixel generates integer pixel coordinates for straight line
// segments and origin-centred circles, and renders point collections as
// text grids or images for inspection.
//
// All rasterization is done in integer arithmetic.  Coordinates use the
// mathematical convention (y grows upwards); the grid and image helpers
// flip the y axis so that larger y values appear further up.
package pixel

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref

import (
	"errors"
	"image"
)

// ErrInvalidArgument is returned (wrapped) when a function is called with
// an argument outside its domain, for example a non-positive radius.
var ErrInvalidArgument = errors.New("invalid argument")

// Bounds describes a rectangle of integer coordinates.
// All four limits are inclusive.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoundsOf returns the smallest Bounds which contains all points and all
// reference points.  If both slices are empty, ok is false.
func BoundsOf(points []image.Point, refs ...image.Point) (b Bounds, ok bool) {
	for _, list := range [][]image.Point{points, refs} {
		for _, p := range list {
			if !ok {
				b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, p.X)
			b.MaxX = max(b.MaxX, p.X)
			b.MinY = min(b.MinY, p.Y)
			b.MaxY = max(b.MaxY, p.Y)
		}
	}
	return b, ok
}

// Dx returns the number of integer x coordinates covered by b.
func (b Bounds) Dx() int {
	return b.MaxX - b.MinX + 1
}

// Dy returns the number of integer y coordinates covered by b.
func (b Bounds) Dy() int {
	return b.MaxY - b.MinY + 1
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p image.Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Valid reports whether the lower limits do not exceed the upper limits.
func (b Bounds) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Dedup returns a copy of points with repeated points removed.
// The first occurrence of each point is kept, in the original order.
func Dedup(points []image.Point) []image.Point {
	seen := make(map[image.Point]struct{}, len(points))
	res := make([]image.Point, 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		res = append(res, p)
	}
	return res
}
