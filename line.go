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
	"image"
	"iter"
)

// Line returns the pixels of the straight segment from (x0, y0) to (x1, y1),
// computed with Bresenham's algorithm.
//
// The first element is the start point and the last element is the end
// point.  Consecutive points are 8-connected and the result has
// max(|x1-x0|, |y1-y0|)+1 elements.  The caller must keep the coordinates
// small enough that 2*(|x1-x0|+|y1-y0|) does not overflow an int.
func Line(x0, y0, x1, y1 int) []image.Point {
	p0 := image.Point{X: x0, Y: y0}
	p1 := image.Point{X: x1, Y: y1}
	return AppendLine(make([]image.Point, 0, lineLen(p0, p1)), p0, p1)
}

// AppendLine appends the pixels of the segment from p0 to p1 to dst and
// returns the extended slice.  See [Line] for details.
func AppendLine(dst []image.Point, p0, p1 image.Point) []image.Point {
	s := newLineStepper(p0, p1)
	for {
		p, more := s.next()
		dst = append(dst, p)
		if !more {
			return dst
		}
	}
}

// LinePoints returns an iterator over the pixels of the segment from p0 to
// p1, in the same order as [Line].
func LinePoints(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		s := newLineStepper(p0, p1)
		for {
			p, more := s.next()
			if !yield(p) || !more {
				return
			}
		}
	}
}

// lineStepper holds the decision state of one Bresenham walk.
type lineStepper struct {
	x, y   int // current pixel
	x1, y1 int // end point
	dx, dy int // absolute extent
	sx, sy int // step directions, +1 or -1
	err    int
}

func newLineStepper(p0, p1 image.Point) lineStepper {
	s := lineStepper{
		x:  p0.X,
		y:  p0.Y,
		x1: p1.X,
		y1: p1.Y,
		dx: abs(p1.X - p0.X),
		dy: abs(p1.Y - p0.Y),
		sx: -1,
		sy: -1,
	}
	if p0.X < p1.X {
		s.sx = 1
	}
	if p0.Y < p1.Y {
		s.sy = 1
	}
	s.err = s.dx - s.dy
	return s
}

// next returns the current pixel and advances to the following one.
// more is false once the end point has been returned.
func (s *lineStepper) next() (p image.Point, more bool) {
	p = image.Point{X: s.x, Y: s.y}
	if s.x == s.x1 && s.y == s.y1 {
		return p, false
	}
	e2 := 2 * s.err
	if e2 > -s.dy {
		s.err -= s.dy
		s.x += s.sx
	}
	if e2 < s.dx {
		s.err += s.dx
		s.y += s.sy
	}
	return p, true
}

// lineLen returns the number of pixels on the segment from p0 to p1.
func lineLen(p0, p1 image.Point) int {
	return max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
