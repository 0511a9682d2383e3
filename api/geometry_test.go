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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxFromPoints(t *testing.T) {
	b := BoxFromPoints([]Point{{X: 10, Y: -5}, {X: -2, Y: 8}, {X: 4, Y: 4}})
	assert.Equal(t, BoundingBox{Left: -2, Top: -5, Right: 10, Bottom: 8}, b)
	assert.Equal(t, 12.0, b.Width())
	assert.Equal(t, 13.0, b.Height())

	line := BoxFromPoints([]Point{{X: 3, Y: 1}, {X: 3, Y: 9}})
	assert.Equal(t, 0.0, line.Width())
}

func TestBoxScaleAndUnion(t *testing.T) {
	b := BoxFromXYWH(10, 20, 30, 40).Scale(0.5)
	assert.Equal(t, BoundingBox{Left: 5, Top: 10, Right: 20, Bottom: 30}, b)

	u := b.Union(BoxFromXYWH(0, 50, 1, 1))
	assert.Equal(t, BoundingBox{Left: 0, Top: 10, Right: 20, Bottom: 51}, u)
}

func TestBoxClip(t *testing.T) {
	tests := []struct {
		in   BoundingBox
		want BoundingBox
	}{
		{BoundingBox{Left: -5, Top: -5, Right: 10, Bottom: 10}, BoundingBox{Left: 0, Top: 0, Right: 10, Bottom: 10}},
		{BoundingBox{Left: 90, Top: 40, Right: 120, Bottom: 70}, BoundingBox{Left: 90, Top: 40, Right: 100, Bottom: 50}},
		{BoundingBox{Left: 150, Top: 60, Right: 160, Bottom: 70}, BoundingBox{Left: 100, Top: 50, Right: 100, Bottom: 50}},
		{BoundingBox{Left: 1, Top: 2, Right: 3, Bottom: 4}, BoundingBox{Left: 1, Top: 2, Right: 3, Bottom: 4}},
	}

	for i, tt := range tests {
		got := tt.in.Clip(100, 50)
		assert.Equal(t, tt.want, got, "#%d", i)
		assert.True(t, got.IsWithin(100, 50), "#%d", i)
	}
}

func TestBoxPadMinSize(t *testing.T) {
	b := BoundingBox{Left: 10, Top: 5, Right: 10, Bottom: 35}.PadMinSize(20, 20)
	assert.Equal(t, BoundingBox{Left: 0, Top: 5, Right: 20, Bottom: 35}, b)

	big := BoxFromXYWH(0, 0, 50, 50)
	assert.Equal(t, big, big.PadMinSize(20, 20))
}

func TestBoxFit(t *testing.T) {
	b := BoundingBox{Left: -4, Top: 40, Right: 16, Bottom: 60}.Fit(100, 50)
	assert.Equal(t, BoundingBox{Left: 0, Top: 30, Right: 20, Bottom: 50}, b)

	tooWide := BoundingBox{Left: -10, Top: 0, Right: 30, Bottom: 10}.Fit(20, 20)
	assert.Equal(t, BoundingBox{Left: 0, Top: 0, Right: 20, Bottom: 10}, tooWide)
}
