// seehuhn.de/go/circles - alpha-blended circle rasterizer
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

package testcases

import (
	"math"

	"seehuhn.de/go/circles"
)

// largeCases contain scenes with many circles.
var largeCases = []TestCase{
	{
		Name:    "grid",
		Width:   256,
		Height:  256,
		Circles: circleGrid(8, 8, 256, 256),
	},
	{
		Name:    "spiral",
		Width:   200,
		Height:  150,
		Circles: spiral(100, 75, 300),
	},
}

// circleGrid builds a grid of translucent circles which touch their
// neighbours.
func circleGrid(rows, cols, width, height int) []circles.Circle {
	cw := float64(width) / float64(cols)
	ch := float64(height) / float64(rows)
	r := min(cw, ch) / 2
	var res []circles.Circle
	for i := range rows {
		for j := range cols {
			x := (float64(j) + 0.5) * cw
			y := (float64(i) + 0.5) * ch
			red := float32(j) / float32(cols)
			green := float32(i) / float32(rows)
			res = append(res, circle(x, y, r+2, red, green, 0.5, 0.7))
		}
	}
	return res
}

// spiral builds n overlapping circles along an Archimedean spiral, using
// a simple deterministic color sequence.
func spiral(cx, cy float64, n int) []circles.Circle {
	res := make([]circles.Circle, 0, n)
	for i := range n {
		t := float64(i) / 8
		x := cx + t*math.Cos(t)
		y := cy + t*math.Sin(t)
		r := 3 + float64(i%7)
		red := float32(i%11) / 10
		green := float32(i%13) / 12
		blue := float32(i%17) / 16
		alpha := 0.2 + float32(i%5)/8
		res = append(res, circle(x, y, r, red, green, blue, alpha))
	}
	return res
}
