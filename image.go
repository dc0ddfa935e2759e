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
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Plot sets the pixels of dst which correspond to points.
// The point (0, 0) is drawn at origin, and the y axis is flipped so that
// positive y values appear above origin.  Points which fall outside
// dst.Bounds() are skipped.
func Plot(dst draw.Image, points []image.Point, origin image.Point, c color.Color) {
	r := dst.Bounds()
	for _, p := range points {
		q := image.Point{X: origin.X + p.X, Y: origin.Y - p.Y}
		if q.In(r) {
			dst.Set(q.X, q.Y, c)
		}
	}
}

// Image returns the grid as a grayscale image, with marked cells in black
// and empty cells in white.  Each grid character becomes a block of
// scale×scale pixels; values of scale less than 1 are treated as 1.
func (g *Grid) Image(scale int) *image.Gray {
	scale = max(scale, 1)

	h := len(g.rows)
	w := 0
	if h > 0 {
		w = len(g.rows[0])
	}
	small := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		line := small.Pix[y*small.Stride : y*small.Stride+w]
		for x := range w {
			if g.Marked(g.bounds.MinX+x/g.cellWidth, g.bounds.MaxY-y) {
				line[x] = 0
			} else {
				line[x] = 255
			}
		}
	}
	if scale == 1 {
		return small
	}

	big := image.NewGray(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return big
}

// WritePNG encodes img as a PNG image.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
