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

package pixel_test

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/pixel/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".txt")
				ref, err := os.ReadFile(refPath)
				if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				g, err := tc.Render()
				if err != nil {
					t.Fatal(err)
				}

				if got := g.String(); got != string(ref) {
					t.Errorf("grid differs from %s\ngot:\n%s\nwant:\n%s", refPath, got, ref)
				}
			})
		}
	}
}

// BenchmarkRenderAll renders every test case, including rasterization.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	for b.Loop() {
		for _, tc := range cases {
			if _, err := tc.Render(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
