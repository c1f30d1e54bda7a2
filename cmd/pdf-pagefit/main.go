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

// Pdf-pagefit shows how the pages of a document are sized and arranged in a
// viewer.
//
// Usage:
//
//	pdf-pagefit [options] page...
//
// Every page is given as a paper size name ("a4", "letter-landscape") or as
// "WxH" in PDF points, optionally preceded by a repeat count ("10*a4").
// If no pages are given, a single page of the default paper size for the
// locale is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/pagefit"
	"seehuhn.de/go/pagefit/layout"
	"seehuhn.de/go/pagefit/paper"
	"seehuhn.de/go/pagefit/preview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdf-pagefit: ")

	var policy pagefit.FitPolicy
	flag.TextVar(&policy, "policy", pagefit.Width, "fit policy (width, height or both)")
	fitEach := flag.Bool("fit-each", false, "fit every page to the viewport on its own")
	equalBox := flag.Bool("equal-box", false, "place all pages into boxes of equal size")
	viewport := flag.String("viewport", "1080x1920", "viewport size in pixels")
	spacing := flag.Float64("spacing", 0, "gap between pages, in pixels")
	horizontal := flag.Bool("horizontal", false, "scroll horizontally")
	dpi := flag.Float64("dpi", 72, "resolution used to convert page sizes to pixels")
	locale := flag.String("locale", "", "locale for the default paper size (default from $LANG)")
	pngOut := flag.String("png", "", "write a preview image to this file (\"-\" for stdout)")
	force := flag.Bool("f", false, "overwrite the preview image if it exists")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] page...\n\n", os.Args[0])
		fmt.Fprintf(out, "Pages are paper names (%s), optionally with\n",
			strings.Join(paper.Names(), ", "))
		fmt.Fprintln(out, "a \"-landscape\" suffix, or sizes \"WxH\" in points.")
		fmt.Fprintln(out, "A repeat count can be given as \"N*page\".")
		fmt.Fprintln(out)
		flag.PrintDefaults()
	}
	flag.Parse()

	view, err := parseViewport(*viewport)
	if err != nil {
		log.Fatal(err)
	}

	specs := flag.Args()
	if len(specs) == 0 {
		tag, err := localeTag(*locale)
		if err != nil {
			log.Fatal(err)
		}
		box := paper.Default(tag)
		specs = []string{fmt.Sprintf("%gx%g", box.Dx(), box.Dy())}
	}
	pages, err := parsePages(specs, *dpi)
	if err != nil {
		log.Fatal(err)
	}

	opt := &layout.Options{
		Policy:      policy,
		FitEachPage: *fitEach,
		Spacing:     *spacing,
	}
	if *equalBox {
		opt.Strategy = pagefit.EqualBoxStrategy{}
	}
	if *horizontal {
		opt.Direction = layout.Horizontal
	}

	doc, err := layout.New(pages, view, opt)
	if err != nil {
		log.Fatal(err)
	}

	if *pngOut != "-" {
		err = report(os.Stdout, doc)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *pngOut != "" {
		err = writePreview(*pngOut, *force, doc)
		if err != nil {
			log.Fatal(err)
		}
	}
}

// parseViewport parses a viewport size of the form "WxH".
func parseViewport(s string) (pagefit.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return pagefit.Size{}, fmt.Errorf("invalid viewport %q", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return pagefit.Size{}, fmt.Errorf("invalid viewport %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return pagefit.Size{}, fmt.Errorf("invalid viewport %q: %w", s, err)
	}
	return pagefit.Size{Width: width, Height: height}, nil
}

// parsePages converts page specifications into native page sizes.
func parsePages(specs []string, dpi float64) ([]pagefit.Size, error) {
	if !(dpi > 0) {
		return nil, fmt.Errorf("invalid resolution %g", dpi)
	}
	var pages []pagefit.Size
	for _, spec := range specs {
		count := 1
		if n, rest, ok := strings.Cut(spec, "*"); ok {
			var err error
			count, err = strconv.Atoi(n)
			if err != nil || count < 1 {
				return nil, fmt.Errorf("invalid repeat count in %q", spec)
			}
			spec = rest
		}
		box, err := paper.Parse(spec)
		if err != nil {
			return nil, err
		}
		size := paper.ToSize(box, dpi)
		for range count {
			pages = append(pages, size)
		}
	}
	return pages, nil
}

// localeTag returns the language tag for the -locale option.  If the
// option is empty, the locale is taken from the environment.
func localeTag(s string) (language.Tag, error) {
	if s == "" {
		for _, key := range []string{"LC_ALL", "LC_PAPER", "LANG"} {
			if s = os.Getenv(key); s != "" {
				break
			}
		}
		// strip the encoding, as in "de_DE.UTF-8"
		s, _, _ = strings.Cut(s, ".")
		if s == "" || s == "C" || s == "POSIX" {
			return language.Und, nil
		}
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

func report(w io.Writer, doc *layout.Document) error {
	calc := doc.Calculator()
	args := calc.Args()
	ext := doc.Extent()

	fmt.Fprintf(w, "policy %s, %s scrolling, viewport %s, %T\n",
		args.Policy, doc.Direction(), args.Viewport, calc.Strategy())
	fmt.Fprintf(w, "widest page:  %s -> %s\n", args.MaxWidthPage, calc.OptimalMaxWidthPageSize())
	fmt.Fprintf(w, "tallest page: %s -> %s\n", args.MaxHeightPage, calc.OptimalMaxHeightPageSize())
	fmt.Fprintf(w, "document:     %gx%g\n\n", ext.X, ext.Y)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "page\tnative\tsize\toffset\t")
	for i := range doc.NumPages() {
		off := doc.PageOffset(i)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g,%g\t\n",
			i+1, doc.NativeSize(i), doc.PageSize(i), off.X, off.Y)
	}
	return tw.Flush()
}

var (
	errTerminal = errors.New("refusing to write image data to a terminal")
	errExists   = errors.New("output file already exists")
)

func writePreview(fname string, force bool, doc *layout.Document) error {
	img := preview.Render(doc, nil)

	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return png.Encode(os.Stdout, img)
	}

	if !force {
		_, err := os.Stat(fname)
		if err == nil {
			return fmt.Errorf("%q: %w", fname, errExists)
		} else if !os.IsNotExist(err) {
			return err
		}
	}
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
