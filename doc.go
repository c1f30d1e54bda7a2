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

// Package pagefit computes on-screen page sizes for documents whose pages
// may have different native sizes.
//
// A [Calculator] is constructed once per document and viewport.  It is told
// the native sizes of the widest and of the tallest page of the document,
// the size of the viewport and a [FitPolicy]:
//
//	calc := pagefit.NewCalculator(pagefit.Args{
//	    Policy:        pagefit.Width,
//	    MaxWidthPage:  pagefit.Size{Width: 800, Height: 1200},
//	    MaxHeightPage: pagefit.Size{Width: 800, Height: 1200},
//	    Viewport:      pagefit.Size{Width: 1000, Height: 1600},
//	}, nil)
//	ext := calc.OptimalMaxWidthPageSize() // {1000, 1500}
//	sz := calc.Calculate(pagefit.Size{Width: 400, Height: 1200}) // {500, 1500}
//
// The scale applied to every page is derived from the extremal pages, so that
// pages keep their relative sizes on screen.  Setting [Args.FitEachPage]
// instead fits every page to the viewport on its own.
//
// How sizes are computed is decided by a [Strategy].  Two strategies are
// provided: [DefaultStrategy], which implements the fit policies, and
// [EqualBoxStrategy], which places every page into one common box.
// Callers may supply their own.
//
// Pages with a non-positive width or height are mapped to the zero size
// SizeF{}, which means that the page cannot be shown.
package pagefit
