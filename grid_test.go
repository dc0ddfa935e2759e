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
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderGridClip(t *testing.T) {
	pts := []image.Point{{-2, -2}, {0, 0}}
	g := RenderGrid(pts, &GridOptions{
		Bounds: &Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1},
	})
	want := []string{
		"   ",
		" * ",
		"   ",
	}
	if d := cmp.Diff(want, g.Rows()); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}
	if !g.Marked(0, 0) {
		t.Error("(0,0) not marked")
	}
	if g.Marked(-2, -2) || g.Marked(-1, -1) {
		t.Error("out-of-bounds point marked")
	}
}

func TestRenderGridLine(t *testing.T) {
	pts := Line(0, 0, 5, 2)
	g := RenderGrid(pts, &GridOptions{Refs: []image.Point{{0, 0}, {5, 2}}})

	want := "    **\n  **  \n**    \n"
	if got := g.String(); got != want {
		t.Errorf("grid:\n%s\nwant:\n%s", got, want)
	}
	if b := g.Bounds(); b != (Bounds{MinX: 0, MaxX: 5, MinY: 0, MaxY: 2}) {
		t.Errorf("bounds = %+v", b)
	}
}

func TestRenderGridRefsWiden(t *testing.T) {
	g := RenderGrid([]image.Point{{1, 1}}, &GridOptions{
		Refs: []image.Point{{-1, 0}, {2, 3}},
		Mark: '#',
	})
	want := []string{
		"    ",
		"    ",
		"  # ",
		"    ",
	}
	if d := cmp.Diff(want, g.Rows()); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}
	if g.Marked(-1, 0) {
		t.Error("reference point marked")
	}
}

func TestRenderGridCellWidth(t *testing.T) {
	pts, err := Circle(1)
	if err != nil {
		t.Fatal(err)
	}
	g := RenderGrid(pts, &GridOptions{CellWidth: 2, Blank: '.'})
	want := []string{
		"..**..",
		"**..**",
		"..**..",
	}
	if d := cmp.Diff(want, g.Rows()); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}
	if g.CellWidth() != 2 {
		t.Errorf("CellWidth() = %d, want 2", g.CellWidth())
	}
	for _, r := range g.Rows() {
		if len(r) != 6 {
			t.Errorf("row %q has length %d, want 6", r, len(r))
		}
	}
}

func TestRenderGridDefaults(t *testing.T) {
	pts := []image.Point{{3, 4}}
	for _, opt := range []*GridOptions{nil, {}, {CellWidth: -3}} {
		g := RenderGrid(pts, opt)
		if d := cmp.Diff([]string{"*"}, g.Rows()); d != "" {
			t.Errorf("opt %+v (-want +got):\n%s", opt, d)
		}
	}
}

func TestRenderGridIdempotent(t *testing.T) {
	pts := Line(-3, 2, 4, -1)
	once := RenderGrid(pts, nil)
	twice := RenderGrid(append(pts, pts...), nil)
	if d := cmp.Diff(once.Rows(), twice.Rows()); d != "" {
		t.Errorf("duplicated points change the grid (-once +twice):\n%s", d)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	g := RenderGrid(nil, nil)
	if g.Len() != 0 || len(g.Rows()) != 0 || g.String() != "" {
		t.Errorf("empty input gave %d rows", g.Len())
	}
	if g.Marked(0, 0) {
		t.Error("empty grid has a marked cell")
	}

	// explicit bounds give blank rows even without points
	g = RenderGrid(nil, &GridOptions{Bounds: &Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 0}})
	if d := cmp.Diff([]string{"  "}, g.Rows()); d != "" {
		t.Errorf("blank grid (-want +got):\n%s", d)
	}

	// inverted bounds are rejected
	g = RenderGrid([]image.Point{{0, 0}}, &GridOptions{Bounds: &Bounds{MinX: 1, MaxX: 0}})
	if g.Len() != 0 {
		t.Errorf("invalid bounds gave %d rows", g.Len())
	}
}

func TestRenderGridRowsSnapshot(t *testing.T) {
	g := RenderGrid([]image.Point{{0, 0}}, nil)
	rows := g.Rows()
	rows[0] = "x"
	if got := g.Rows()[0]; got != "*" {
		t.Errorf("grid changed through Rows(): %q", got)
	}
}

func TestGridWriteTo(t *testing.T) {
	g := RenderGrid(Line(0, 0, 2, 2), nil)
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
	if got, want := buf.String(), "  *\n * \n*  \n"; got != want {
		t.Errorf("WriteTo wrote %q, want %q", got, want)
	}
	if !strings.HasSuffix(g.String(), "\n") {
		t.Error("String() misses the final newline")
	}
}

// Marked must not depend on the characters chosen for the text output.
func TestRenderGridMarkEqualsBlank(t *testing.T) {
	pts := Line(0, 0, 2, 1)
	for _, opt := range []*GridOptions{
		{Mark: '#', Blank: '#'},
		{Blank: '*'},
	} {
		g := RenderGrid(pts, opt)
		for y := 0; y <= 1; y++ {
			for x := 0; x <= 2; x++ {
				want := slices.Contains(pts, image.Pt(x, y))
				if got := g.Marked(x, y); got != want {
					t.Errorf("opt %+v: Marked(%d, %d) = %t, want %t", opt, x, y, got, want)
				}
			}
		}

		img := g.Image(1)
		if got := img.GrayAt(1, 0).Y; got != 255 {
			t.Errorf("opt %+v: empty cell (1,1) painted with %d", opt, got)
		}
		if got := img.GrayAt(0, 1).Y; got != 0 {
			t.Errorf("opt %+v: marked cell (0,0) painted with %d", opt, got)
		}
	}
}
