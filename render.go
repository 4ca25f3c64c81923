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

// Package circles rasterizes filled, alpha-blended circles into an RGBA
// pixel buffer.
//
// The pixel buffer holds width*height pixels in row-major order, four bytes
// per pixel in the order R, G, B, A.  Colors are straight (not
// premultiplied) and circles are composited in the order they are given,
// so that later circles are drawn on top of earlier ones.
//
// Rendering is deliberately simple and bit-exact: there is no
// anti-aliasing, the disc test uses the truncated radius, and all channel
// conversions truncate toward zero.
package circles

//go:generate go run ./testcases/export

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
)

var (
	// ErrCanvasSize is returned for negative or overflowing canvas
	// dimensions.
	ErrCanvasSize = errors.New("invalid canvas size")

	// ErrBufferSize is returned if the pixel buffer does not hold exactly
	// width*height*4 bytes.
	ErrBufferSize = errors.New("pixel buffer does not match canvas size")
)

// Render composites the circles into pix, in sequence order.
//
// The buffer is not cleared first; callers normally start from a buffer
// where all bytes are zero (see [Clear]).  If the buffer size does not
// match the canvas, an error is returned and pix is left unchanged.
// Pixels outside the canvas, and circles which cover no pixels, are
// silently ignored.
func Render(pix []byte, width, height int, seq iter.Seq[Circle]) error {
	if err := checkCanvas(pix, width, height); err != nil {
		return err
	}

	var n, rejected int
	for c := range seq {
		n++
		if !drawCircle(pix, width, height, c) {
			rejected++
		}
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("circles rendered",
			"width", width, "height", height,
			"circles", n, "rejected", rejected)
	}
	return nil
}

// RenderSlice is like [Render], but takes the circles from a slice.
func RenderSlice(pix []byte, width, height int, circles []Circle) error {
	return Render(pix, width, height, slices.Values(circles))
}

// Clear sets all pixels to transparent black.
func Clear(pix []byte) {
	clear(pix)
}

func checkCanvas(pix []byte, width, height int) error {
	if width < 0 || height < 0 || (width > 0 && height > math.MaxInt/4/width) {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return fmt.Errorf("%w: %dx%d canvas needs %d bytes, got %d",
			ErrBufferSize, width, height, want, len(pix))
	}
	return nil
}

// drawCircle blends a single circle into pix.
// The return value is false if the circle could not be represented
// on the integer pixel grid.
func drawCircle(pix []byte, width, height int, c Circle) bool {
	cx, cy, r, ok := c.Footprint()
	if !ok {
		return false
	}

	// Clipping the scan to the canvas gives the same result as scanning
	// the whole bounding square and skipping pixels outside the canvas.
	xMin, xMax := max(cx-r, 0), min(cx+r, width-1)
	yMin, yMax := max(cy-r, 0), min(cy+r, height-1)
	if xMin > xMax || yMin > yMax {
		return true
	}

	srcR := float32(channelByte(c.R * 255))
	srcG := float32(channelByte(c.G * 255))
	srcB := float32(channelByte(c.B * 255))
	srcA := float32(channelByte(c.A * 255))
	alpha := c.A
	beta := 1 - alpha

	r2 := int64(r) * int64(r)
	stride := 4 * width
	for y := yMin; y <= yMax; y++ {
		dy := int64(y - cy)
		row := pix[y*stride : (y+1)*stride]
		for x := xMin; x <= xMax; x++ {
			dx := int64(x - cx)
			if dx*dx+dy*dy > r2 {
				continue
			}

			p := row[4*x : 4*x+4]
			dstR, dstG, dstB, dstA := p[0], p[1], p[2], p[3]
			p[0] = blend(alpha, beta, srcR, dstR)
			p[1] = blend(alpha, beta, srcG, dstG)
			p[2] = blend(alpha, beta, srcB, dstB)
			p[3] = blend(alpha, beta, srcA, dstA)
		}
	}
	return true
}

// blend computes alpha*src + beta*dst in single precision and truncates
// the result to a byte.
func blend(alpha, beta, src float32, dst byte) byte {
	// The explicit conversions prevent fused multiply-add, so that
	// each product is rounded separately.
	return channelByte(float32(alpha*src) + float32(beta*float32(dst)))
}

// channelByte truncates v toward zero and keeps the low eight bits of the
// result.  Values outside the 32-bit integer range (and NaN) map to 0.
func channelByte(v float32) byte {
	if !(v > math.MinInt32 && v < math.MaxInt32) {
		return 0
	}
	return byte(int32(v))
}
