// Package generate produces random circles for benchmarks and examples.
package generate

import (
	"iter"
	"math/rand/v2"

	"seehuhn.de/go/circles"
)

// Default radius range used by [New].
const (
	DefaultMinRadius = 5
	DefaultMaxRadius = 50
)

// Generator produces uniformly distributed random circles.
//
// Centers are uniform on [0, Width) × [0, Height), radii are uniform on
// [MinRadius, MaxRadius) and all four color channels are uniform on [0, 1).
// All values are rounded to single precision.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	Width, Height        int
	MinRadius, MaxRadius float64

	rng *rand.Rand
}

// New returns a generator for a width×height canvas.
// Generators with the same seed produce the same sequence of circles.
func New(width, height int, seed uint64) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		MinRadius: DefaultMinRadius,
		MaxRadius: DefaultMaxRadius,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next returns the next random circle.
func (g *Generator) Next() circles.Circle {
	x := g.uniform(0, float64(g.Width))
	y := g.uniform(0, float64(g.Height))
	radius := g.uniform(g.MinRadius, g.MaxRadius)
	r := float32(g.rng.Float64())
	gr := float32(g.rng.Float64())
	b := float32(g.rng.Float64())
	a := float32(g.rng.Float64())
	return circles.NewCircle(x, y, radius, r, gr, b, a)
}

// Circles returns n random circles.
func (g *Generator) Circles(n int) []circles.Circle {
	res := make([]circles.Circle, n)
	for i := range res {
		res[i] = g.Next()
	}
	return res
}

// Seq returns an iterator over n random circles.
// The circles are generated while iterating.
func (g *Generator) Seq(n int) iter.Seq[circles.Circle] {
	return func(yield func(circles.Circle) bool) {
		for range n {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// uniform returns a value in [lo, hi), rounded to single precision.
func (g *Generator) uniform(lo, hi float64) float64 {
	v := float32(lo + (hi-lo)*g.rng.Float64())
	return float64(v)
}
