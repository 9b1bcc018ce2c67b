// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import "math"

// Default geometry values.
const (
	DefaultLineHeight = 20
	DefaultPadding    = 10
)

// Viewport is the area that the terminal is drawn into. All values are in
// pixels.
type Viewport struct {
	Height      float32
	LineHeight  float32
	PaddingTop  float32
	PaddingLeft float32
}

// DefaultViewport returns a viewport of the given height with the default
// line height and padding.
func DefaultViewport(height float32) Viewport {
	return Viewport{
		Height:      height,
		LineHeight:  DefaultLineHeight,
		PaddingTop:  DefaultPadding,
		PaddingLeft: DefaultPadding,
	}
}

// MaxVisibleLines returns the number of lines that fit in the viewport,
// including the input line.
func (v Viewport) MaxVisibleLines() int {
	if v.LineHeight <= 0 {
		return 0
	}
	n := math.Floor(float64(v.Height-2*v.PaddingTop) / float64(v.LineHeight))
	return max(int(n), 0)
}

// VisibleSlice returns the range of lines from a buffer of the given size
// that should be drawn. One row of the viewport is kept for the input line.
func VisibleSlice(size int, v Viewport) (start int, end int) {
	n := v.MaxVisibleLines()
	if n < 1 {
		return size, size
	}
	return max(0, size-(n-1)), size
}
