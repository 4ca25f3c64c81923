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

package circles

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxCoord bounds the magnitude of truncated centers and radii.
// Within this range all bounding box arithmetic fits into 32 bits and
// squared distances fit into 64 bits.
const maxCoord = 1 << 30

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// Circle is a filled disc with a straight (non-premultiplied) RGBA color.
//
// Circle values are not validated.  Colour channels are expected in [0, 1],
// but other values are rendered with well-defined (wrapping) arithmetic.
type Circle struct {
	Center vec.Vec2 // canvas pixel coordinates, may lie outside the canvas
	Radius float64  // a negative radius covers no pixels

	R, G, B, A float32
}

// NewCircle returns the circle with the given geometry and color.
// All values are stored verbatim.
func NewCircle(x, y, radius float64, r, g, b, a float32) Circle {
	return Circle{
		Center: vec.Vec2{X: x, Y: y},
		Radius: radius,
		R:      r,
		G:      g,
		B:      b,
		A:      a,
	}
}

// Footprint returns the integer center and radius used for rasterization.
// All three values are truncated toward zero.
//
// If ok is false, the circle covers no pixels.  This is the case for a
// negative radius, for non-finite values, and for values whose magnitude
// exceeds 2^30.
func (c Circle) Footprint() (cx, cy, r int, ok bool) {
	if c.Radius < 0 {
		return 0, 0, 0, false
	}
	cx, okX := truncate(c.Center.X)
	cy, okY := truncate(c.Center.Y)
	r, okR := truncate(c.Radius)
	if !okX || !okY || !okR {
		return 0, 0, 0, false
	}
	return cx, cy, r, true
}

// Bounds returns the square of pixels scanned for the circle.
// The square has side length 2r+1, where r is the truncated radius,
// and is a superset of the pixels covered by the disc.
func (c Circle) Bounds() image.Rectangle {
	cx, cy, r, ok := c.Footprint()
	if !ok {
		return image.Rectangle{}
	}
	return image.Rect(cx-r, cy-r, cx+r+1, cy+r+1)
}

// Outline returns a vector approximation of the pixels covered by the
// circle, for use with vector renderers.  Pixel (x, y) occupies the unit
// square with corner (x, y), so the outline is centered at cx+1/2, cy+1/2.
// The result is empty if the circle covers no pixels.
func (c Circle) Outline() *path.Data {
	icx, icy, ir, ok := c.Footprint()
	if !ok {
		return &path.Data{}
	}
	cx := float64(icx) + 0.5
	cy := float64(icy) + 0.5
	r := float64(ir) + 0.5
	k := r * kappa

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// truncate converts v to an integer, rounding toward zero.
// NaN fails both comparisons and is rejected.
func truncate(v float64) (int, bool) {
	if !(v > -maxCoord-1 && v < maxCoord+1) {
		return 0, false
	}
	return int(v), true
}
