// seehuhn.de/go/tounicode - a writer for PDF ToUnicode CMap files
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

// Package tounicode writes ToUnicode CMap files.
//
// A ToUnicode CMap is embedded into a PDF font dictionary so that text
// extraction tools can map the character identifiers (CIDs) used inside the
// font back to Unicode text.  The package provides a single type, [Writer],
// which accumulates CID-to-text mappings in any order and serializes them
// as an Adobe-Identity-UCS CMap with 16-bit character codes.
//
// To keep the generated CMap small, runs of consecutive CIDs whose values
// are consecutive single codepoints are merged into bfrange entries:
//
//	w := tounicode.NewWriter()
//	w.Add(1, "A")
//	w.Add(2, "B")
//	w.Add(3, "C")
//	err := w.Write(out) // emits the single entry <0001> <0003> <0041>
//
// The generated file is plain 7-bit ASCII and is normally embedded as a
// compressed stream in the font descriptor's ToUnicode entry.
package tounicode
