// Command export writes test case definitions to JSON for external
// reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
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
	Name       string       `json:"name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Background []int        `json:"background"`
	Circles    []jsonCircle `json:"circles"`
}

// jsonCircle mirrors the field order of the reference generator:
// center, radius, then the four color channels.
type jsonCircle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	R      float32 `json:"r"`
	G      float32 `json:"g"`
	B      float32 `json:"b"`
	A      float32 `json:"a"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Background: []int{int(tc.Background[0]), int(tc.Background[1]), int(tc.Background[2]), int(tc.Background[3])},
		Circles:    make([]jsonCircle, 0, len(tc.Circles)),
	}
	for _, c := range tc.Circles {
		jtc.Circles = append(jtc.Circles, circleToJSON(c))
	}
	return jtc
}

func circleToJSON(c circles.Circle) jsonCircle {
	return jsonCircle{
		X:      c.Center.X,
		Y:      c.Center.Y,
		Radius: c.Radius,
		R:      c.R,
		G:      c.G,
		B:      c.B,
		A:      c.A,
	}
}
