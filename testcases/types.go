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

// Package testcases contains named circle scenes used to test the
// rasterizer and to generate reference images.
package testcases

import "seehuhn.de/go/circles"

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string           // lowercase a-z, 0-9 and _ only
	Width      int              // canvas width in pixels
	Height     int              // canvas height in pixels
	Background [4]byte          // initial RGBA value of every pixel
	Circles    []circles.Circle // composited in order
}

// Canvas returns a pixel buffer for the test case, filled with the
// background color.
func (tc TestCase) Canvas() []byte {
	pix := make([]byte, tc.Width*tc.Height*4)
	if tc.Background != [4]byte{} {
		for i := 0; i < len(pix); i += 4 {
			copy(pix[i:i+4], tc.Background[:])
		}
	}
	return pix
}

// circle is a shorthand for [circles.NewCircle].
func circle(x, y, r float64, red, green, blue, alpha float32) circles.Circle {
	return circles.NewCircle(x, y, r, red, green, blue, alpha)
}
