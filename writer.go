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

package tounicode

import (
	"errors"
	"fmt"
)

// Writer accumulates mappings from CIDs to unicode strings and writes them
// as a ToUnicode CMap.  The CMap name is always Adobe-Identity-UCS, and
// character codes are always 16 bits wide.
//
// The zero value is an empty mapping, ready for use.  A Writer is not safe
// for concurrent use.
type Writer struct {
	mappings map[uint16]string
	wMode    int
}

// Errors returned by [Writer.Add].
var (
	ErrCIDRange = errors.New("CID outside the range 0 to 65535")
	ErrNoText   = errors.New("replacement text is empty")
)

// NewWriter returns a new Writer with an empty mapping and horizontal
// writing mode.
func NewWriter() *Writer {
	return &Writer{
		mappings: make(map[uint16]string),
	}
}

// SetWMode sets the writing mode of the CMap: 0 for horizontal writing
// (the default), 1 for vertical writing.
func (w *Writer) SetWMode(wMode int) {
	w.wMode = wMode
}

// Add records that cid maps to the unicode string text.  Adding a mapping
// for the same CID a second time replaces the earlier value.
//
// The CID must be in the range 0 to 65535, and text must not be empty.
// Values longer than 512 bytes in UTF-16 encoding lead to CMaps which some
// PDF readers reject; this is not checked here.
func (w *Writer) Add(cid int, text string) error {
	if cid < 0 || cid > 0xFFFF {
		return fmt.Errorf("Add(%d): %w", cid, ErrCIDRange)
	}
	if text == "" {
		return fmt.Errorf("Add(%d): %w", cid, ErrNoText)
	}
	if w.mappings == nil {
		w.mappings = make(map[uint16]string)
	}
	w.mappings[uint16(cid)] = text
	return nil
}
