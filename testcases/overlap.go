package testcases

import "seehuhn.de/go/circles"

// overlapCases contain overlapping circles, where the result depends on
// the drawing order.
var overlapCases = []TestCase{
	{
		Name:   "red_then_blue",
		Width:  48,
		Height: 32,
		Circles: []circles.Circle{
			circle(18, 16, 12, 1, 0, 0, 0.6),
			circle(30, 16, 12, 0, 0, 1, 0.6),
		},
	},
	{
		Name:   "blue_then_red",
		Width:  48,
		Height: 32,
		Circles: []circles.Circle{
			circle(30, 16, 12, 0, 0, 1, 0.6),
			circle(18, 16, 12, 1, 0, 0, 0.6),
		},
	},
	{
		Name:   "three_way",
		Width:  64,
		Height: 64,
		Circles: []circles.Circle{
			circle(24, 24, 16, 1, 0, 0, 0.5),
			circle(40, 24, 16, 0, 1, 0, 0.5),
			circle(32, 38, 16, 0, 0, 1, 0.5),
		},
	},
	{
		Name:   "concentric",
		Width:  64,
		Height: 64,
		Circles: []circles.Circle{
			circle(32, 32, 28, 0.1, 0.2, 0.9, 1),
			circle(32, 32, 20, 0.9, 0.8, 0.1, 0.75),
			circle(32, 32, 12, 0.2, 0.9, 0.2, 0.5),
			circle(32, 32, 4, 1, 1, 1, 0.25),
		},
	},
}
