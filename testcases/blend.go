package testcases

import "seehuhn.de/go/circles"

// blendCases exercise the straight alpha blend formula.
var blendCases = []TestCase{
	{
		Name:       "half_red_on_grey",
		Width:      1,
		Height:     1,
		Background: [4]byte{100, 100, 100, 100},
		Circles:    []circles.Circle{circle(0, 0, 3, 1, 0, 0, 0.5)},
	},
	{
		Name:    "half_white_on_clear",
		Width:   16,
		Height:  16,
		Circles: []circles.Circle{circle(8, 8, 5, 1, 1, 1, 0.5)},
	},
	{
		Name:       "transparent",
		Width:      16,
		Height:     16,
		Background: [4]byte{40, 80, 120, 160},
		Circles:    []circles.Circle{circle(8, 8, 6, 1, 1, 1, 0)},
	},
	{
		Name:       "opaque_replaces",
		Width:      16,
		Height:     16,
		Background: [4]byte{40, 80, 120, 160},
		Circles:    []circles.Circle{circle(8, 8, 6, 0.2, 0.4, 0.6, 1)},
	},
	{
		Name:   "stacked_alpha",
		Width:  24,
		Height: 24,
		Circles: []circles.Circle{
			circle(12, 12, 10, 0.9, 0.1, 0.3, 0.3),
			circle(12, 12, 10, 0.9, 0.1, 0.3, 0.3),
			circle(12, 12, 10, 0.9, 0.1, 0.3, 0.3),
			circle(12, 12, 10, 0.9, 0.1, 0.3, 0.3),
		},
	},
	{
		Name:   "out_of_range_color",
		Width:  8,
		Height: 8,
		Circles: []circles.Circle{
			circle(4, 4, 3, 1.5, -0.25, 2, 1),
			circle(4, 4, 2, 0.5, 0.5, 0.5, 1.25),
		},
	},
}
