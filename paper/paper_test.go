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

package paper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pagefit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want rect.Rect
	}{
		{"A4", A4},
		{"letter", Letter},
		{" Legal ", Legal},
		{"a4-portrait", A4},
		{"a4-landscape", rect.Rect{URx: 841.890, URy: 595.276}},
		{"executive", Executive},
		{"executive-landscape", rect.Rect{URx: 756, URy: 522}},
		{"tabloid-landscape", rect.Rect{URx: 1224, URy: 792}},
		{"595x842", rect.Rect{URx: 595, URy: 842}},
		{"100.5X20", rect.Rect{URx: 100.5, URy: 20}},
		{"100x200-landscape", rect.Rect{URx: 200, URy: 100}},
	}
	for _, test := range tests {
		got, err := Parse(test.spec)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.spec, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Parse(%q): %s", test.spec, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  error
	}{
		{"a9", errUnknownName},
		{"", errUnknownName},
		{"0x100", errNotPositive},
		{"100x-3", errNotPositive},
		{"axb", strconv.ErrSyntax},
		{"12x", strconv.ErrSyntax},
	}
	for _, test := range tests {
		_, err := Parse(test.spec)
		var specErr *SpecError
		if !errors.As(err, &specErr) {
			t.Errorf("Parse(%q): got %v, want *SpecError", test.spec, err)
			continue
		}
		if specErr.Spec != test.spec {
			t.Errorf("Parse(%q): error names %q", test.spec, specErr.Spec)
		}
		if !errors.Is(err, test.err) {
			t.Errorf("Parse(%q): got %v, want %v", test.spec, err, test.err)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"a3", "a4", "a5", "b5", "executive", "legal", "letter", "tabloid"}
	names := Names()
	if d := cmp.Diff(want, names); d != "" {
		t.Error(d)
	}
	names[0] = "zz"
	if d := cmp.Diff(want, Names()); d != "" {
		t.Error(d)
	}
	for _, name := range Names() {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
	}
}

func TestToSize(t *testing.T) {
	tests := []struct {
		box  rect.Rect
		dpi  float64
		want pagefit.Size
	}{
		{Letter, 72, pagefit.Size{Width: 612, Height: 792}},
		{Letter, 144, pagefit.Size{Width: 1224, Height: 1584}},
		{A4, 72, pagefit.Size{Width: 595, Height: 841}},
		{A4, 150, pagefit.Size{Width: 1240, Height: 1753}},
	}
	for _, test := range tests {
		got := ToSize(test.box, test.dpi)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("ToSize(%v, %g): %s", test.box, test.dpi, d)
		}
	}
}

func TestDefault(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want rect.Rect
	}{
		{language.AmericanEnglish, Letter},
		{language.MustParse("es-MX"), Letter},
		{language.MustParse("fr-CA"), Letter},
		{language.BritishEnglish, A4},
		{language.MustParse("de-DE"), A4},
		{language.Japanese, A4},
	}
	for _, test := range tests {
		if d := cmp.Diff(test.want, Default(test.tag)); d != "" {
			t.Errorf("Default(%s): %s", test.tag, d)
		}
	}
}
