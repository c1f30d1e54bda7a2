// seehuhn.de/go/pagefit - page size fitting for PDF viewers
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

package pagefit

import "math"

// FitWidth scales a page to the given width, keeping the aspect ratio.
// The resulting height is rounded down to a whole number.
//
// The page size must be positive in both dimensions.
func FitWidth(page Size, maxWidth float32) SizeF {
	ratio := float32(page.Width) / float32(page.Height)
	return SizeF{
		Width:  maxWidth,
		Height: floor(maxWidth / ratio),
	}
}

// FitHeight scales a page to the given height, keeping the aspect ratio.
// The resulting width is rounded down to a whole number.
//
// The page size must be positive in both dimensions.
func FitHeight(page Size, maxHeight float32) SizeF {
	ratio := float32(page.Height) / float32(page.Width)
	return SizeF{
		Width:  floor(maxHeight / ratio),
		Height: maxHeight,
	}
}

// FitBoth returns the largest size with the aspect ratio of page which fits
// into maxWidth x maxHeight.  The page touches at least one of the two
// bounds, and the other dimension is rounded down to a whole number.
//
// The page size must be positive in both dimensions.
func FitBoth(page Size, maxWidth, maxHeight float32) SizeF {
	ratio := float32(page.Width) / float32(page.Height)
	w := maxWidth
	h := floor(maxWidth / ratio)
	if h > maxHeight {
		h = maxHeight
		w = floor(maxHeight * ratio)
	}
	return SizeF{Width: w, Height: h}
}

// floor rounds x down to a whole number.
func floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}
