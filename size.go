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

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the native size of a page, in document units.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// valid reports whether both dimensions are positive.
func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// SizeF is the size of a page on screen.
//
// The zero value is returned for pages which cannot be laid out.
type SizeF struct {
	Width, Height float32
}

// IsZero reports whether s is the zero size.
func (s SizeF) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s SizeF) String() string {
	return strconv.FormatFloat(float64(s.Width), 'f', -1, 32) + "x" +
		strconv.FormatFloat(float64(s.Height), 'f', -1, 32)
}

// FitPolicy selects which viewport dimensions constrain the page size.
type FitPolicy int

// The supported fit policies.
const (
	// Width scales pages so that the widest page fills the viewport width.
	Width FitPolicy = iota

	// Height scales pages so that the tallest page fills the viewport height.
	Height

	// Both scales pages so that they fit into the viewport in both
	// directions.
	Both
)

var policyNames = []string{
	Width:  "width",
	Height: "height",
	Both:   "both",
}

func (p FitPolicy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("FitPolicy(%d)", int(p))
}

// ParseFitPolicy converts a policy name (as returned by
// [FitPolicy.String]) into a FitPolicy.  Case is ignored.
func ParseFitPolicy(s string) (FitPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return FitPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fit policy %q", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p FitPolicy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(policyNames) {
		return nil, fmt.Errorf("invalid fit policy %d", int(p))
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *FitPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseFitPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Args collects the inputs of a page size calculation.
// The values do not change once a [Calculator] has been constructed.
type Args struct {
	// Policy is the fit policy.
	Policy FitPolicy

	// MaxWidthPage is the native size of the page with the greatest width.
	MaxWidthPage Size

	// MaxHeightPage is the native size of the page with the greatest height.
	// This may be the same page as MaxWidthPage.
	MaxHeightPage Size

	// Viewport is the size of the area the document is shown in.
	// Both dimensions must be positive.
	Viewport Size

	// FitEachPage indicates that every page is fitted to the viewport on its
	// own, instead of being scaled together with the rest of the document.
	FitEachPage bool
}

// ReferenceSizes holds the on-screen sizes of the two extremal pages,
// together with the scale factors derived from them.
type ReferenceSizes struct {
	// MaxWidthPage is the on-screen size of the page with the greatest width.
	MaxWidthPage SizeF

	// MaxHeightPage is the on-screen size of the page with the greatest
	// height.
	MaxHeightPage SizeF

	// WidthRatio is the ratio between on-screen and native width,
	// or 0 if the strategy does not scale by width.
	WidthRatio float32

	// HeightRatio is the ratio between on-screen and native height,
	// or 0 if the strategy does not scale by height.
	HeightRatio float32
}
