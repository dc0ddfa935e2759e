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

// Command genref regenerates the reference grids used by the tests.
// For every test case it writes a text grid and, if -pdf is given, a PDF
// diagram to testdata/reference.  Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixel/diagram"
	"seehuhn.de/go/pixel/testcases"
)

const refDir = "testdata/reference"

func main() {
	withPDF := flag.Bool("pdf", false, "also write PDF diagrams")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name, *withPDF); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string, withPDF bool) error {
	g, err := tc.Render()
	if err != nil {
		return err
	}

	txtPath := filepath.Join(refDir, name+".txt")
	if err := os.WriteFile(txtPath, []byte(g.String()), 0644); err != nil {
		return err
	}

	if withPDF {
		pdfPath := filepath.Join(refDir, name+".pdf")
		if err := diagram.WritePDF(pdfPath, g, diagram.DefaultCell); err != nil {
			return err
		}
	}
	return nil
}
