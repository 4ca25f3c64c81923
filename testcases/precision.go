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

import "seehuhn.de/go/circles"

// precisionCases check that centers, radii and colors are truncated
// rather than rounded.
var precisionCases = []TestCase{
	{
		Name:    "center_frac_99",
		Width:   16,
		Height:  16,
		Circles: []circles.Circle{circle(7.99, 7.99, 4, 1, 1, 1, 1)},
	},
	{
		Name:    "radius_frac_99",
		Width:   16,
		Height:  16,
		Circles: []circles.Circle{circle(8, 8, 4.99, 1, 1, 1, 1)},
	},
	{
		Name:    "negative_center_frac",
		Width:   8,
		Height:  8,
		Circles: []circles.Circle{circle(-0.9, -0.9, 3, 1, 1, 1, 1)},
	},
	{
		Name:    "color_truncation",
		Width:   8,
		Height:  8,
		Circles: []circles.Circle{circle(4, 4, 3, 0.999, 0.5, 0.0039, 1)},
	},
	{
		Name:       "blend_truncation",
		Width:      8,
		Height:     8,
		Background: [4]byte{1, 3, 5, 7},
		Circles:    []circles.Circle{circle(4, 4, 3, 0.3, 0.6, 0.7, 0.333)},
	},
}
