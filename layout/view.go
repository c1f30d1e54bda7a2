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

package layout

import "seehuhn.de/go/geom/vec"

// View describes which part of a document is visible in the viewport.
type View struct {
	// Offset is the position of the document origin in viewport
	// coordinates.  The components are negative once the document has been
	// scrolled.
	Offset vec.Vec2

	// Zoom is the zoom factor.  It must be positive.
	Zoom float64
}

// ToDocument converts a point in viewport coordinates into document
// coordinates.
func (v View) ToDocument(p vec.Vec2) vec.Vec2 {
	return p.Sub(v.Offset).Mul(1 / v.Zoom)
}

// FromDocument converts a point in document coordinates into viewport
// coordinates.
func (v View) FromDocument(p vec.Vec2) vec.Vec2 {
	return p.Mul(v.Zoom).Add(v.Offset)
}
