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

// Package paper provides standard paper sizes and converts them into
// native page sizes for the page size calculator.
//
// All rectangles are given in PDF points (1/72 inch).
package paper

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pagefit"
)

// Standard paper sizes.
var (
	A3        = rect.Rect{URx: 841.890, URy: 1190.551}
	A4        = rect.Rect{URx: 595.276, URy: 841.890}
	A5        = rect.Rect{URx: 420.945, URy: 595.276}
	B5        = rect.Rect{URx: 498.898, URy: 708.661}
	Letter    = rect.Rect{URx: 612, URy: 792}
	Legal     = rect.Rect{URx: 612, URy: 1008}
	Tabloid   = rect.Rect{URx: 792, URy: 1224}
	Executive = rect.Rect{URx: 522, URy: 756}
)

var byName = map[string]rect.Rect{
	"a3":        A3,
	"a4":        A4,
	"a5":        A5,
	"b5":        B5,
	"letter":    Letter,
	"legal":     Legal,
	"tabloid":   Tabloid,
	"executive": Executive,
}

// Names returns the names of all known paper sizes, in alphabetical order.
func Names() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

// SpecError is returned by [Parse] for page size specifications which
// cannot be understood.
type SpecError struct {
	Spec string
	Err  error
}

func (err *SpecError) Error() string {
	return "invalid paper size " + strconv.Quote(err.Spec) + ": " + err.Err.Error()
}

func (err *SpecError) Unwrap() error {
	return err.Err
}

var (
	errUnknownName = errors.New("unknown paper name")
	errNotPositive = errors.New("width and height must be positive")
)

// Parse converts a page size specification into a rectangle.
//
// The specification is either the name of a paper size (see [Names]) or an
// explicit size of the form "WxH" in PDF points, optionally followed by
// "-landscape" or "-portrait".  Names are not case sensitive.
func Parse(spec string) (rect.Rect, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	landscape := false
	if base, ok := strings.CutSuffix(s, "-landscape"); ok {
		s = base
		landscape = true
	} else if base, ok := strings.CutSuffix(s, "-portrait"); ok {
		s = base
	}

	r, ok := byName[s]
	if !ok {
		w, h, isDims := strings.Cut(s, "x")
		if !isDims {
			return rect.Rect{}, &SpecError{Spec: spec, Err: errUnknownName}
		}
		var err error
		r, err = parseDims(spec, w, h)
		if err != nil {
			return rect.Rect{}, err
		}
	}
	if landscape {
		r = Landscape(r)
	}
	return r, nil
}

func parseDims(spec, w, h string) (rect.Rect, error) {
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return rect.Rect{}, &SpecError{Spec: spec, Err: err}
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return rect.Rect{}, &SpecError{Spec: spec, Err: err}
	}
	if !(width > 0 && height > 0) {
		return rect.Rect{}, &SpecError{Spec: spec, Err: errNotPositive}
	}
	return rect.Rect{URx: width, URy: height}, nil
}

// Landscape returns the paper size with width and height swapped,
// if the paper is in portrait orientation.
func Landscape(r rect.Rect) rect.Rect {
	if r.Dx() >= r.Dy() {
		return r
	}
	return rect.Rect{URx: r.Dy(), URy: r.Dx()}
}

// ToSize converts a page box into the native page size used by the page
// size calculator, at the given resolution.  Fractional pixels are
// truncated, like the native renderer does.
func ToSize(r rect.Rect, dpi float64) pagefit.Size {
	return pagefit.Size{
		Width:  int(r.Dx() * dpi / 72),
		Height: int(r.Dy() * dpi / 72),
	}
}

// letterRegions lists the regions where US paper sizes are in common use.
var letterRegions = map[string]bool{
	"US": true, "CA": true, "MX": true, "PH": true, "CL": true,
	"CO": true, "VE": true, "CR": true, "DO": true, "GT": true,
	"NI": true, "PA": true, "PR": true, "SV": true, "BZ": true,
}

// Default returns the default paper size for a locale.
// This is Letter in North America and some Latin American countries,
// and A4 everywhere else.
func Default(tag language.Tag) rect.Rect {
	region, conf := tag.Region()
	if conf != language.No && letterRegions[region.String()] {
		return Letter
	}
	return A4
}
