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

// Package viewshed computes which cells of a height map can be seen from a
// given observer position.
//
// Sight lines are rasterized with [pixel.Line] and tested in integer
// arithmetic: a target is hidden if the ground at any intermediate pixel
// rises above the straight line from the observer's eye to the target.
package viewshed

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"seehuhn.de/go/pixel"
)

// DefaultVantage is the eye height of the observer above the ground, used
// when Compute is called with a nil *Config.
const DefaultVantage = 2

// HeightMap is a rectangular grid of ground heights, in row-major order.
type HeightMap struct {
	Width, Height int
	Data          []uint16
}

// NewHeightMap wraps data as a HeightMap of the given size.
// The data is not copied.
func NewHeightMap(width, height int, data []uint16) (*HeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("height map size %dx%d: %w", width, height, pixel.ErrInvalidArgument)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("height map %dx%d needs %d values, got %d: %w",
			width, height, width*height, len(data), pixel.ErrInvalidArgument)
	}
	return &HeightMap{Width: width, Height: height, Data: data}, nil
}

// At returns the height at (x, y).  The coordinates must be inside the map.
func (h *HeightMap) At(x, y int) uint16 {
	return h.Data[y*h.Width+x]
}

// Contains reports whether p is a valid cell of the map.
func (h *HeightMap) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < h.Width && p.Y >= 0 && p.Y < h.Height
}

// Config holds the parameters of a viewshed computation.
type Config struct {
	// Vantage is the eye height of the observer above the ground.
	Vantage int

	// Radius limits the computation to cells with dx²+dy² <= Radius².
	// Cells further away are reported as not visible.
	// Zero means no limit.
	Radius int

	// Workers is the number of goroutines used.
	// Values less than 1 select runtime.GOMAXPROCS(0).
	Workers int

	// WallsBlock marks cells of height 0 as walls.  Walls are never
	// visible and block every sight line which passes through them.
	WallsBlock bool
}

// Compute returns a visibility mask for hm, in the same row-major layout
// as hm.Data.  The observer stands at from, which is always visible,
// except that with cfg.WallsBlock an observer on a wall sees nothing and
// the mask is all false.
//
// If hm.Data does not match the map size or from lies outside the map, an
// error wrapping [pixel.ErrInvalidArgument] is returned.  If ctx is cancelled before the computation completes,
// ctx.Err() is returned.
func Compute(ctx context.Context, hm *HeightMap, from image.Point, cfg *Config) ([]bool, error) {
	if cfg == nil {
		cfg = &Config{Vantage: DefaultVantage}
	}
	if hm.Width <= 0 || hm.Height <= 0 || len(hm.Data) != hm.Width*hm.Height {
		return nil, fmt.Errorf("height map %dx%d with %d values: %w",
			hm.Width, hm.Height, len(hm.Data), pixel.ErrInvalidArgument)
	}
	if !hm.Contains(from) {
		return nil, fmt.Errorf("observer %v outside %dx%d map: %w",
			from, hm.Width, hm.Height, pixel.ErrInvalidArgument)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, hm.Height)

	log := pixel.Logger()
	start := time.Now()

	mask := make([]bool, len(hm.Data))
	if cfg.WallsBlock && hm.At(from.X, from.Y) == 0 {
		return mask, ctx.Err()
	}
	eye := int64(hm.At(from.X, from.Y)) + int64(cfg.Vantage)
	r2 := cfg.Radius * cfg.Radius

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()

			var buf []image.Point
			for y := range rows {
				if ctx.Err() != nil {
					continue
				}
				for x := range hm.Width {
					target := image.Point{X: x, Y: y}
					d := target.Sub(from)
					if cfg.Radius > 0 && d.X*d.X+d.Y*d.Y > r2 {
						continue
					}
					if target == from {
						mask[y*hm.Width+x] = true
						continue
					}
					buf = pixel.AppendLine(buf[:0], from, target)
					mask[y*hm.Width+x] = visible(hm, buf, eye, cfg.WallsBlock)
				}
			}
		}()
	}

feed:
	for y := range hm.Height {
		select {
		case rows <- y:
		case <-ctx.Done():
			break feed
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("viewshed computed",
		"width", hm.Width,
		"height", hm.Height,
		"from", from,
		"workers", workers,
		"visible", Count(mask),
		"elapsed", time.Since(start))
	return mask, nil
}

// visible reports whether the last point of line can be seen from an eye
// at height eye above the first point of line.
//
// With n = len(line)-1 steps, the sight line at step k has height
// eye + (target-eye)*k/n.  Multiplying by n keeps the test in integers.
func visible(hm *HeightMap, line []image.Point, eye int64, wallsBlock bool) bool {
	last := line[len(line)-1]
	target := int64(hm.At(last.X, last.Y))
	if wallsBlock && target == 0 {
		return false
	}

	n := int64(len(line) - 1)
	for k := int64(1); k < n; k++ {
		p := line[k]
		ground := int64(hm.At(p.X, p.Y))
		if wallsBlock && ground == 0 {
			return false
		}
		if ground*n > eye*n+(target-eye)*k {
			return false
		}
	}
	return true
}

// Count returns the number of visible cells in mask.
func Count(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}
	return n
}
