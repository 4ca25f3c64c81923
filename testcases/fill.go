package testcases

import "seehuhn.de/go/circles"

// fillCases contain single, fully opaque circles.
var fillCases = []TestCase{
	{
		Name:    "white_r2",
		Width:   10,
		Height:  10,
		Circles: []circles.Circle{circle(5, 5, 2, 1, 1, 1, 1)},
	},
	{
		Name:    "red_r0",
		Width:   8,
		Height:  8,
		Circles: []circles.Circle{circle(3, 4, 0, 1, 0, 0, 1)},
	},
	{
		Name:    "green_r1",
		Width:   8,
		Height:  8,
		Circles: []circles.Circle{circle(3, 3, 1, 0, 1, 0, 1)},
	},
	{
		Name:    "blue_r20",
		Width:   64,
		Height:  64,
		Circles: []circles.Circle{circle(32, 32, 20, 0, 0, 1, 1)},
	},
	{
		Name:    "grey_r25",
		Width:   64,
		Height:  48,
		Circles: []circles.Circle{circle(30, 24, 25, 0.5, 0.5, 0.5, 1)},
	},
	{
		Name:       "on_background",
		Width:      32,
		Height:     32,
		Background: [4]byte{10, 20, 30, 255},
		Circles:    []circles.Circle{circle(16, 16, 8, 1, 1, 0, 1)},
	},
}
