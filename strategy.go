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

// Strategy decides how pages are sized on screen.
//
// Implementations must not keep state between calls; a single value may be
// shared by many calculators.
type Strategy interface {
	// ReferenceSizes computes the on-screen sizes of the widest and of the
	// tallest page of the document.  This is called once, when a
	// [Calculator] is constructed.
	ReferenceSizes(args Args) ReferenceSizes

	// PageSize computes the on-screen size of a single page.
	// The argument ref is the value previously returned by ReferenceSizes
	// for the same args.  Pages with non-positive width or height
	// must be mapped to SizeF{}.
	PageSize(page Size, args Args, ref ReferenceSizes) SizeF
}

// DefaultStrategy sizes pages according to [Args.Policy].
//
// Unless [Args.FitEachPage] is set, all pages are scaled by the factor which
// makes the extremal page fit the viewport, so that the relative sizes of
// the pages are preserved.
type DefaultStrategy struct{}

// ReferenceSizes implements the [Strategy] interface.
func (DefaultStrategy) ReferenceSizes(args Args) ReferenceSizes {
	maxW := args.MaxWidthPage
	maxH := args.MaxHeightPage
	view := args.Viewport

	var ref ReferenceSizes
	switch args.Policy {
	case Height:
		ref.MaxHeightPage = FitHeight(maxH, float32(view.Height))
		ref.HeightRatio = ref.MaxHeightPage.Height / float32(maxH.Height)
		ref.MaxWidthPage = FitHeight(maxW, float32(maxW.Height)*ref.HeightRatio)

	case Both:
		// The scale of the widest page limits the width available to the
		// tallest page and vice versa.  Two passes are made; for pages with
		// very different aspect ratios the result is an approximation.
		first := FitBoth(maxW, float32(view.Width), float32(view.Height))
		firstRatio := first.Width / float32(maxW.Width)
		ref.MaxHeightPage = FitBoth(maxH, float32(maxH.Width)*firstRatio, float32(view.Height))
		ref.HeightRatio = ref.MaxHeightPage.Height / float32(maxH.Height)
		ref.MaxWidthPage = FitBoth(maxW, float32(view.Width), float32(maxW.Height)*ref.HeightRatio)
		ref.WidthRatio = ref.MaxWidthPage.Width / float32(maxW.Width)

	default:
		ref.MaxWidthPage = FitWidth(maxW, float32(view.Width))
		ref.WidthRatio = ref.MaxWidthPage.Width / float32(maxW.Width)
		ref.MaxHeightPage = FitWidth(maxH, float32(maxH.Width)*ref.WidthRatio)
	}
	return ref
}

// PageSize implements the [Strategy] interface.
func (DefaultStrategy) PageSize(page Size, args Args, ref ReferenceSizes) SizeF {
	if !page.valid() {
		return SizeF{}
	}

	var maxWidth, maxHeight float32
	if args.FitEachPage {
		maxWidth = float32(args.Viewport.Width)
		maxHeight = float32(args.Viewport.Height)
	} else {
		maxWidth = float32(page.Width) * ref.WidthRatio
		maxHeight = float32(page.Height) * ref.HeightRatio
	}

	switch args.Policy {
	case Height:
		return FitHeight(page, maxHeight)
	case Both:
		return FitBoth(page, maxWidth, maxHeight)
	default:
		return FitWidth(page, maxWidth)
	}
}
