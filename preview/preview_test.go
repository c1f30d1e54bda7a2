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

package preview

import (
	"image/color"
	"testing"

	"seehuhn.de/go/pagefit"
	"seehuhn.de/go/pagefit/layout"
)

var (
	bg     = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	white  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black  = color.RGBA{0, 0, 0, 0xff}
	border = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

func testDocument(t *testing.T) *layout.Document {
	t.Helper()
	pages := []pagefit.Size{{Width: 800, Height: 600}, {Width: 400, Height: 1200}, {Width: 600, Height: 800}}
	doc, err := layout.New(pages, pagefit.Size{Width: 1000, Height: 1600}, &layout.Options{Spacing: 10})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRenderScaled(t *testing.T) {
	doc := testDocument(t)

	// The document is 1000x3270, so this gives a scale of 0.1.
	img := Render(doc, &Options{MaxSize: 327})
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 327 {
		t.Fatalf("image size %dx%d, want 100x327", b.Dx(), b.Dy())
	}

	tests := []struct {
		x, y int
		want color.RGBA
		what string
	}{
		{20, 20, white, "inside page 1"},
		{0, 40, border, "left edge of page 1"},
		{10, 150, bg, "left of page 2"},
		{50, 100, white, "inside page 2"},
		{99, 326, bg, "right of page 3"},
	}
	for _, test := range tests {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("%s: pixel (%d, %d) is %v, want %v", test.what, test.x, test.y, got, test.want)
		}
	}

	labelPixels := 0
	for y := 0; y < 75; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == black {
				labelPixels++
			}
		}
	}
	if labelPixels == 0 {
		t.Error("page 1 has no label")
	}
}

func TestRenderNoUpscale(t *testing.T) {
	doc := testDocument(t)
	img := Render(doc, &Options{MaxSize: 10000, NoLabels: true})
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 3270 {
		t.Fatalf("image size %dx%d, want 1000x3270", b.Dx(), b.Dy())
	}
	for y := 0; y < 750; y += 25 {
		for x := 1; x < 999; x += 25 {
			if y == 0 {
				continue
			}
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d, %d) is %v", x, y, got)
			}
		}
	}
}

func TestRenderDefaults(t *testing.T) {
	doc := testDocument(t)
	img := Render(doc, nil)
	b := img.Bounds()
	if max(b.Dx(), b.Dy()) != 800 {
		t.Errorf("image size %dx%d, want longest side 800", b.Dx(), b.Dy())
	}
}
