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
	"fmt"
	"image"
)

// Circle returns pixels approximating the circle of the given radius
// around the origin, computed with the midpoint circle algorithm.
//
// One octant (0 <= x <= y) is walked and every step emits the eight
// mirror images (x,y), (y,x), (-x,y), (-y,x), (x,-y), (y,-x), (-x,-y),
// (-y,-x) in this order.  Points on the octant boundaries (x == 0 or
// x == y) are emitted more than once; use [Dedup] to remove repetitions.
//
// If radius is not positive, an error wrapping [ErrInvalidArgument] is
// returned.
func Circle(radius int) ([]image.Point, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle radius %d: %w", radius, ErrInvalidArgument)
	}
	return AppendCircle(make([]image.Point, 0, circleCap(radius)), radius)
}

// AppendCircle appends the pixels of the circle of the given radius to dst
// and returns the extended slice.  See [Circle] for details.
func AppendCircle(dst []image.Point, radius int) ([]image.Point, error) {
	if radius <= 0 {
		return dst, fmt.Errorf("circle radius %d: %w", radius, ErrInvalidArgument)
	}

	x, y := 0, radius
	d := 3 - 2*radius
	for x <= y {
		dst = append(dst,
			image.Point{X: x, Y: y},
			image.Point{X: y, Y: x},
			image.Point{X: -x, Y: y},
			image.Point{X: -y, Y: x},
			image.Point{X: x, Y: -y},
			image.Point{X: y, Y: -x},
			image.Point{X: -x, Y: -y},
			image.Point{X: -y, Y: -x},
		)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return dst, nil
}

// circleCap returns an upper bound for the number of points emitted by
// AppendCircle.  The walk stops once x exceeds r/sqrt(2) < 3r/4+1.
func circleCap(radius int) int {
	return 8 * (3*radius/4 + 2)
}

// Disk returns all pixels (x, y) with x² + y² <= radius², ordered by
// increasing y and then by increasing x.  A radius of zero gives the
// origin only.  If radius is negative, an error wrapping
// [ErrInvalidArgument] is returned.
func Disk(radius int) ([]image.Point, error) {
	if radius < 0 {
		return nil, fmt.Errorf("disk radius %d: %w", radius, ErrInvalidArgument)
	}

	r2 := radius * radius
	var res []image.Point
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				res = append(res, image.Point{X: x, Y: y})
			}
		}
	}
	return res, nil
}
