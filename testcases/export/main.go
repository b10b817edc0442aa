// Command export writes test case definitions to JSON, so that pictures can
// be checked against other encoders.
// Run from the sliderpic module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sliderpic/testcases"
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
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Pixels     [][]string  `json:"pixels"`
	Body       string      `json:"body"`
	Border     string      `json:"border"`
	Background string      `json:"background"`
	Quality    int         `json:"quality,omitempty"`
	BlackOff   bool        `json:"black_off,omitempty"`
	BorderOff  bool        `json:"border_off,omitempty"`
	Duration   int         `json:"duration,omitempty"`
	CircleSize float64     `json:"circle_size,omitempty"`
	Motion     *jsonMotion `json:"motion,omitempty"`
}

type jsonMotion struct {
	Kind   string      `json:"kind"`
	Pts    [][]float64 `json:"pts"`
	Radius float64     `json:"radius,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	b := tc.Image.Bounds()
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      b.Dx(),
		Height:     b.Dy(),
		Body:       tc.Palette.Body,
		Border:     tc.Palette.Border,
		Background: tc.Palette.Background,
		Quality:    tc.Quality,
		BlackOff:   tc.BlackOff,
		BorderOff:  tc.BorderOff,
		Duration:   tc.Duration,
		CircleSize: tc.CircleSize,
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]string, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			c := tc.Image.NRGBAAt(x, y)
			row = append(row, fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A))
		}
		jtc.Pixels = append(jtc.Pixels, row)
	}

	switch m := tc.Motion.(type) {
	case testcases.Still:
		jtc.Motion = &jsonMotion{Kind: "still", Pts: [][]float64{{m.Pos.X, m.Pos.Y}}}
	case testcases.Line:
		jtc.Motion = &jsonMotion{Kind: "line", Pts: [][]float64{{m.From.X, m.From.Y}, {m.To.X, m.To.Y}}}
	case testcases.Circle:
		jtc.Motion = &jsonMotion{Kind: "circle", Pts: [][]float64{{m.Center.X, m.Center.Y}}, Radius: m.Radius}
	}
	return jtc
}
