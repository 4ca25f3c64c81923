package testcases

import "seehuhn.de/go/circles"

// boundsCases contain circles which are partially or fully outside the
// canvas.
var boundsCases = []TestCase{
	{
		Name:   "outside",
		Width:  16,
		Height: 16,
		Circles: []circles.Circle{
			circle(-20, 8, 5, 1, 1, 1, 1),
			circle(40, 8, 5, 1, 1, 1, 1),
			circle(8, -20, 5, 1, 1, 1, 1),
			circle(8, 40, 5, 1, 1, 1, 1),
		},
	},
	{
		Name:   "corners",
		Width:  16,
		Height: 16,
		Circles: []circles.Circle{
			circle(0, 0, 6, 1, 0, 0, 1),
			circle(15, 0, 6, 0, 1, 0, 1),
			circle(0, 15, 6, 0, 0, 1, 1),
			circle(15, 15, 6, 1, 1, 0, 1),
		},
	},
	{
		Name:    "covers_canvas",
		Width:   20,
		Height:  10,
		Circles: []circles.Circle{circle(10, 5, 100, 0.25, 0.5, 0.75, 1)},
	},
	{
		Name:    "negative_radius",
		Width:   16,
		Height:  16,
		Circles: []circles.Circle{circle(8, 8, -4, 1, 1, 1, 1)},
	},
	{
		Name:    "empty",
		Width:   16,
		Height:  16,
		Circles: nil,
	},
	{
		Name:    "unrepresentable",
		Width:   16,
		Height:  16,
		Circles: []circles.Circle{circle(1e12, 8, 1e12+4, 1, 1, 1, 1)},
	},
}
