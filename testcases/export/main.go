// Command export writes the test cases, together with their rasterized
// points, to JSON for use by external checking tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Shape     string   `json:"shape"`
	Params    []int    `json:"params,omitempty"`
	CellWidth int      `json:"cell_width,omitempty"`
	Bounds    []int    `json:"bounds,omitempty"` // min_x, max_x, min_y, max_y
	Points    [][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		CellWidth: tc.CellWidth,
	}

	switch s := tc.Shape.(type) {
	case testcases.Line:
		jtc.Shape = "line"
		jtc.Params = []int{s.From.X, s.From.Y, s.To.X, s.To.Y}
	case testcases.Circle:
		jtc.Shape = "circle"
		jtc.Params = []int{s.Radius}
	case testcases.Points:
		jtc.Shape = "points"
	}
	if b := tc.Bounds; b != nil {
		jtc.Bounds = []int{b.MinX, b.MaxX, b.MinY, b.MaxY}
	}

	pts, err := tc.Points()
	if err != nil {
		return jtc, err
	}
	jtc.Points = make([][2]int, len(pts))
	for i, p := range pts {
		jtc.Points[i] = [2]int{p.X, p.Y}
	}
	return jtc, nil
}
