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

// Calculator computes the on-screen sizes of the pages of one document.
//
// A Calculator is tied to one set of [Args].  When the viewport or the
// fit policy changes, a new Calculator must be constructed.
// After construction, all methods are safe for concurrent use.
type Calculator struct {
	args     Args
	ref      ReferenceSizes
	strategy Strategy
}

// NewCalculator returns a calculator for the given arguments.
// If s is nil, [DefaultStrategy] is used.
//
// The reference sizes are computed here, once.
func NewCalculator(args Args, s Strategy) *Calculator {
	if s == nil {
		s = DefaultStrategy{}
	}
	return &Calculator{
		args:     args,
		ref:      s.ReferenceSizes(args),
		strategy: s,
	}
}

// Calculate returns the on-screen size for a page with the given native size.
// The result is SizeF{} if the page has non-positive width or height.
func (c *Calculator) Calculate(page Size) SizeF {
	return c.strategy.PageSize(page, c.args, c.ref)
}

// OptimalMaxWidthPageSize returns the on-screen size of the widest page.
func (c *Calculator) OptimalMaxWidthPageSize() SizeF {
	return c.ref.MaxWidthPage
}

// OptimalMaxHeightPageSize returns the on-screen size of the tallest page.
func (c *Calculator) OptimalMaxHeightPageSize() SizeF {
	return c.ref.MaxHeightPage
}

// Args returns the arguments the calculator was constructed with.
func (c *Calculator) Args() Args {
	return c.args
}

// ReferenceSizes returns the reference sizes computed by the strategy.
func (c *Calculator) ReferenceSizes() ReferenceSizes {
	return c.ref
}

// Strategy returns the sizing strategy used by the calculator.
func (c *Calculator) Strategy() Strategy {
	return c.strategy
}
