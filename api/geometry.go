// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package api

import (
	"fmt"
	"math"
)

// Point is a position in diagram or image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// BoundingBox is an axis-aligned box. Coordinates may be negative until the
// box is clipped to an image.
type BoundingBox struct {
	Left   float64 `json:"l"`
	Top    float64 `json:"t"`
	Right  float64 `json:"r"`
	Bottom float64 `json:"b"`
}

func BoxFromXYWH(x, y, w, h float64) BoundingBox {
	return BoundingBox{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// BoxFromPoints returns the smallest box that covers all points.
func BoxFromPoints(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Left: points[0].X, Top: points[0].Y, Right: points[0].X, Bottom: points[0].Y}
	for _, p := range points[1:] {
		b.Left = math.Min(b.Left, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Right = math.Max(b.Right, p.X)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b
}

func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

func (b BoundingBox) Scale(s float64) BoundingBox {
	return BoundingBox{Left: b.Left * s, Top: b.Top * s, Right: b.Right * s, Bottom: b.Bottom * s}
}

func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   math.Min(b.Left, o.Left),
		Top:    math.Min(b.Top, o.Top),
		Right:  math.Max(b.Right, o.Right),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

// IsWithin reports whether the box lies inside a w x h canvas.
func (b BoundingBox) IsWithin(w, h float64) bool {
	return b.Left >= 0 && b.Top >= 0 && b.Right <= w && b.Bottom <= h
}

// Clip cuts the box to a w x h canvas. A box entirely outside the canvas
// collapses onto its nearest border.
func (b BoundingBox) Clip(w, h float64) BoundingBox {
	l := clamp(b.Left, 0, w)
	t := clamp(b.Top, 0, h)
	return BoundingBox{
		Left:   l,
		Top:    t,
		Right:  clamp(b.Right, l, w),
		Bottom: clamp(b.Bottom, t, h),
	}
}

// PadMinSize grows the box symmetrically until it is at least wMin x hMin.
func (b BoundingBox) PadMinSize(wMin, hMin float64) BoundingBox {
	if dw := wMin - b.Width(); dw > 0 {
		b.Left -= dw / 2
		b.Right += dw / 2
	}
	if dh := hMin - b.Height(); dh > 0 {
		b.Top -= dh / 2
		b.Bottom += dh / 2
	}
	return b
}

// Fit moves the box inside a w x h canvas without changing its size. Boxes
// larger than the canvas are clipped.
func (b BoundingBox) Fit(w, h float64) BoundingBox {
	if b.Left < 0 {
		b.Right -= b.Left
		b.Left = 0
	}
	if b.Right > w {
		b.Left -= b.Right - w
		b.Right = w
	}
	if b.Top < 0 {
		b.Bottom -= b.Top
		b.Top = 0
	}
	if b.Bottom > h {
		b.Top -= b.Bottom - h
		b.Bottom = h
	}
	return b.Clip(w, h)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(l=%g, t=%g, r=%g, b=%g)", b.Left, b.Top, b.Right, b.Bottom)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
