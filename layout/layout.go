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

// Package layout arranges the pages of a document for display.
//
// A [Document] uses a [pagefit.Calculator] to size every page and places
// the pages one after another along the scroll direction.  It answers the
// questions a viewer has about the arrangement: where each page is, how
// large the scrollable area is, and which page lies under a given point.
//
// Document coordinates are measured in on-screen units at zoom 1, with the
// origin at the top-left corner of the document and y growing downwards.
package layout

import (
	"errors"
	"fmt"
	"sort"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pagefit"
)

// Direction is the direction in which the document scrolls.
type Direction int

// The supported scroll directions.
const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Options controls how a document is laid out.
type Options struct {
	// Policy is the fit policy used to size the pages.
	Policy pagefit.FitPolicy

	// FitEachPage fits every page to the viewport on its own.
	FitEachPage bool

	// Strategy decides how pages are sized.
	// If this is nil, [pagefit.DefaultStrategy] is used.
	Strategy pagefit.Strategy

	// Spacing is the gap between consecutive pages, in on-screen units.
	Spacing float64

	// Direction is the scroll direction.
	Direction Direction
}

var defaultOptions = &Options{}

var (
	// ErrNoPages is returned by [New] if no page has a positive size.
	ErrNoPages = errors.New("no pages of positive size")

	// ErrViewport is returned by [New] if the viewport is empty.
	ErrViewport = errors.New("viewport must have positive width and height")

	// ErrSpacing is returned by [New] if the page spacing is negative.
	ErrSpacing = errors.New("negative page spacing")
)

// Document is the layout of one document in one viewport.
//
// A Document cannot be changed after it has been created.  When the
// viewport or the options change, a new Document must be created.
type Document struct {
	calc    *pagefit.Calculator
	dir     Direction
	spacing float64

	native  []pagefit.Size
	sizes   []pagefit.SizeF
	offsets []float64 // page start along the scroll direction

	length float64 // size along the scroll direction
	cross  float64 // size across the scroll direction
}

// Extremes returns the native sizes of the widest and of the tallest page.
// If several pages have the same extremal size, the first one is used.
// Pages with non-positive width or height are ignored.  If there are no
// valid pages, two zero sizes are returned.
func Extremes(pages []pagefit.Size) (maxWidth, maxHeight pagefit.Size) {
	for _, p := range pages {
		if p.Width <= 0 || p.Height <= 0 {
			continue
		}
		if p.Width > maxWidth.Width {
			maxWidth = p
		}
		if p.Height > maxHeight.Height {
			maxHeight = p
		}
	}
	return maxWidth, maxHeight
}

// New lays out a document with the given native page sizes.
//
// Pages with non-positive width or height are kept, so that page numbers
// do not change, but take up no space.  No spacing is added for them.
func New(pages []pagefit.Size, viewport pagefit.Size, opt *Options) (*Document, error) {
	if opt == nil {
		opt = defaultOptions
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("viewport %s: %w", viewport, ErrViewport)
	}
	if opt.Spacing < 0 {
		return nil, fmt.Errorf("spacing %g: %w", opt.Spacing, ErrSpacing)
	}
	maxWidth, maxHeight := Extremes(pages)
	if maxWidth.Width == 0 {
		return nil, ErrNoPages
	}

	calc := pagefit.NewCalculator(pagefit.Args{
		Policy:        opt.Policy,
		MaxWidthPage:  maxWidth,
		MaxHeightPage: maxHeight,
		Viewport:      viewport,
		FitEachPage:   opt.FitEachPage,
	}, opt.Strategy)

	d := &Document{
		calc:    calc,
		dir:     opt.Direction,
		spacing: opt.Spacing,
		native:  append([]pagefit.Size(nil), pages...),
		sizes:   make([]pagefit.SizeF, len(pages)),
		offsets: make([]float64, len(pages)),
	}

	if d.dir == Horizontal {
		d.cross = float64(calc.OptimalMaxHeightPageSize().Height)
	} else {
		d.cross = float64(calc.OptimalMaxWidthPageSize().Width)
	}

	var pos float64
	placed := false
	for i, p := range pages {
		sz := calc.Calculate(p)
		d.sizes[i] = sz
		if !sz.IsZero() {
			if placed {
				pos += d.spacing
			}
			placed = true
		}
		d.offsets[i] = pos

		along, across := d.split(sz)
		pos += along
		// With FitEachPage a page can be larger than the reference page.
		d.cross = max(d.cross, across)
	}
	d.length = pos

	return d, nil
}

// split returns the extent of a page along and across the scroll direction.
func (d *Document) split(sz pagefit.SizeF) (along, across float64) {
	if d.dir == Horizontal {
		return float64(sz.Width), float64(sz.Height)
	}
	return float64(sz.Height), float64(sz.Width)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.sizes)
}

// Calculator returns the page size calculator used for the layout.
func (d *Document) Calculator() *pagefit.Calculator {
	return d.calc
}

// Direction returns the scroll direction.
func (d *Document) Direction() Direction {
	return d.dir
}

// NativeSize returns the native size of page i.
func (d *Document) NativeSize(i int) pagefit.Size {
	return d.native[i]
}

// PageSize returns the on-screen size of page i.
func (d *Document) PageSize(i int) pagefit.SizeF {
	return d.sizes[i]
}

// PageOffset returns the position of the top-left corner of page i.
// Across the scroll direction, pages are centred.
func (d *Document) PageOffset(i int) vec.Vec2 {
	_, across := d.split(d.sizes[i])
	margin := (d.cross - across) / 2
	if d.dir == Horizontal {
		return vec.Vec2{X: d.offsets[i], Y: margin}
	}
	return vec.Vec2{X: margin, Y: d.offsets[i]}
}

// PageRect returns the area covered by page i.
// Since y grows downwards, LLy is the top edge of the page.
func (d *Document) PageRect(i int) rect.Rect {
	off := d.PageOffset(i)
	sz := d.sizes[i]
	return rect.Rect{
		LLx: off.X,
		LLy: off.Y,
		URx: off.X + float64(sz.Width),
		URy: off.Y + float64(sz.Height),
	}
}

// Extent returns the size of the scrollable area.
func (d *Document) Extent() vec.Vec2 {
	if d.dir == Horizontal {
		return vec.Vec2{X: d.length, Y: d.cross}
	}
	return vec.Vec2{X: d.cross, Y: d.length}
}

// PageAt returns the page at position pos along the scroll direction.
// The gap after a page belongs to that page.  Positions outside the
// document are mapped to the first or last page.  Pages which take up no
// space are skipped, unless there is no earlier page.
func (d *Document) PageAt(pos float64) int {
	i := sort.Search(len(d.offsets), func(i int) bool {
		return d.offsets[i] > pos
	})
	i = max(i-1, 0)
	for i > 0 && d.sizes[i].IsZero() {
		i--
	}
	return i
}

// Locate finds the page which contains the document point p.
// It returns the page number and the point relative to the top-left corner
// of the page.  If p lies between pages or outside the document, ok is
// false.
func (d *Document) Locate(p vec.Vec2) (page int, local vec.Vec2, ok bool) {
	pos := p.Y
	if d.dir == Horizontal {
		pos = p.X
	}
	page = d.PageAt(pos)
	if d.sizes[page].IsZero() || !contains(d.PageRect(page), p) {
		return page, vec.Vec2{}, false
	}
	return page, p.Sub(d.PageOffset(page)), true
}

// contains reports whether p lies in r, including the boundary.
func contains(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// Normalize converts a document point into coordinates relative to the
// extent of the document, so that (0, 0) is the top-left and (1, 1) is the
// bottom-right corner.  Normalized points do not depend on the viewport
// size.
func (d *Document) Normalize(p vec.Vec2) vec.Vec2 {
	ext := d.Extent()
	return vec.Vec2{X: p.X / ext.X, Y: p.Y / ext.Y}
}

// Denormalize is the inverse of [Document.Normalize].
func (d *Document) Denormalize(p vec.Vec2) vec.Vec2 {
	ext := d.Extent()
	return vec.Vec2{X: p.X * ext.X, Y: p.Y * ext.Y}
}

// ViewAt returns the view which shows page i at the start of the viewport,
// using the given zoom factor.
func (d *Document) ViewAt(i int, zoom float64) View {
	i = min(max(i, 0), len(d.offsets)-1)
	pos := -d.offsets[i] * zoom
	if d.dir == Horizontal {
		return View{Offset: vec.Vec2{X: pos}, Zoom: zoom}
	}
	return View{Offset: vec.Vec2{Y: pos}, Zoom: zoom}
}
