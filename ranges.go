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
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A bfRange maps the CIDs srcFrom to srcTo (inclusive) to unicode strings.
// The string for srcFrom is dst; for each following CID in the range the
// codepoint is incremented by one.
type bfRange struct {
	srcFrom, srcTo uint16
	dst            string
}

func (r bfRange) String() string {
	return fmt.Sprintf("%d-%d: %q", r.srcFrom, r.srcTo, r.dst)
}

// makeRanges converts the accumulated mappings into bfrange entries, in
// ascending CID order.  A run of consecutive CIDs mapping to consecutive
// single codepoints is merged into one entry.  Strings with more than one
// codepoint neither extend a range nor are extended, so they always form
// singleton entries.
func (w *Writer) makeRanges() []bfRange {
	cids := maps.Keys(w.mappings)
	slices.Sort(cids)

	var res []bfRange
	prevCID := -1
	var prev []rune
	for _, cid := range cids {
		text := []rune(w.mappings[cid])
		if int(cid) == prevCID+1 &&
			len(prev) == 1 && len(text) == 1 &&
			text[0] == prev[0]+1 {
			res[len(res)-1].srcTo = cid
		} else {
			res = append(res, bfRange{
				srcFrom: cid,
				srcTo:   cid,
				dst:     w.mappings[cid],
			})
		}
		prevCID = int(cid)
		prev = text
	}
	return res
}
