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

// Package preview draws the layout of a document into an image.
//
// Only the page rectangles and page numbers are drawn; page contents are
// not rendered.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pagefit/layout"
)

// Options controls the appearance of the preview.
type Options struct {
	// MaxSize is the maximal width and height of the image, in pixels.
	// Larger layouts are scaled down.  Zero means 800.
	MaxSize int

	Background color.Color
	Page       color.Color
	Border     color.Color
	Label      color.Color

	// NoLabels disables the page numbers.
	NoLabels bool
}

var defaultOptions = &Options{}

// Render draws the layout of doc.
func Render(doc *layout.Document, opt *Options) *image.RGBA {
	if opt == nil {
		opt = defaultOptions
	}
	maxSize := opt.MaxSize
	if maxSize <= 0 {
		maxSize = 800
	}

	ext := doc.Extent()
	scale := 1.0
	if longest := max(ext.X, ext.Y); longest > float64(maxSize) {
		scale = float64(maxSize) / longest
	}
	width := max(int(math.Ceil(ext.X*scale)), 1)
	height := max(int(math.Ceil(ext.Y*scale)), 1)

	r := &renderer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
		scale:  scale,
	}
	draw.Draw(r.img, r.img.Bounds(),
		image.NewUniform(orDefault(opt.Background, color.RGBA{0xcc, 0xcc, 0xcc, 0xff})),
		image.Point{}, draw.Src)

	border := orDefault(opt.Border, color.RGBA{0x80, 0x80, 0x80, 0xff})
	paper := orDefault(opt.Page, color.White)
	label := orDefault(opt.Label, color.Black)
	for i := range doc.NumPages() {
		if doc.PageSize(i).IsZero() {
			continue
		}
		box := doc.PageRect(i)
		r.fill(box, 0, border)
		r.fill(box, 1, paper)
		if !opt.NoLabels {
			r.label(box, strconv.Itoa(i+1), label)
		}
	}
	return r.img
}

type renderer struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	scale  float64
}

// fill paints a page rectangle, shrunk by inset pixels on every side.
func (r *renderer) fill(box rect.Rect, inset float64, col color.Color) {
	x0 := box.LLx*r.scale + inset
	y0 := box.LLy*r.scale + inset
	x1 := box.URx*r.scale - inset
	y1 := box.URy*r.scale - inset
	if x1 <= x0 || y1 <= y0 {
		return
	}

	b := r.img.Bounds()
	r.raster.Reset(b.Dx(), b.Dy())
	r.raster.MoveTo(float32(x0), float32(y0))
	r.raster.LineTo(float32(x1), float32(y0))
	r.raster.LineTo(float32(x1), float32(y1))
	r.raster.LineTo(float32(x0), float32(y1))
	r.raster.ClosePath()
	r.raster.Draw(r.img, b, image.NewUniform(col), image.Point{})
}

// label writes text in the centre of a page, if there is enough room.
func (r *renderer) label(box rect.Rect, text string, col color.Color) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	w := box.Dx() * r.scale
	h := box.Dy() * r.scale
	if float64(textWidth+2) > w || float64(textHeight+2) > h {
		return
	}

	x := int(box.LLx*r.scale + (w-float64(textWidth))/2)
	y := int(box.LLy*r.scale+(h-float64(textHeight))/2) + metrics.Ascent.Ceil()
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
