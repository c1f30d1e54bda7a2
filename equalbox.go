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

// EqualBoxStrategy places every page into one common box.
//
// The box is the widest page of the document, scaled to the viewport width.
// Each page is scaled to fit into this box on its own, so that pages with
// different aspect ratios take up the same space in the layout.
// The fit policy and [Args.FitEachPage] are ignored.
type EqualBoxStrategy struct{}

// ReferenceSizes implements the [Strategy] interface.
// Both reference sizes are set to the common box.
func (EqualBoxStrategy) ReferenceSizes(args Args) ReferenceSizes {
	box := FitWidth(args.MaxWidthPage, float32(args.Viewport.Width))
	return ReferenceSizes{
		MaxWidthPage:  box,
		MaxHeightPage: box,
	}
}

// PageSize implements the [Strategy] interface.
func (EqualBoxStrategy) PageSize(page Size, args Args, ref ReferenceSizes) SizeF {
	if !page.valid() {
		return SizeF{}
	}
	box := ref.MaxWidthPage
	return FitBoth(page, box.Width, box.Height)
}
