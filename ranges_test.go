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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeRanges(t *testing.T) {
	cases := []struct {
		name string
		in   map[uint16]string
		want []bfRange
	}{
		{
			name: "empty",
			in:   map[uint16]string{},
			want: nil,
		},
		{
			name: "single entry",
			in:   map[uint16]string{7: "x"},
			want: []bfRange{{7, 7, "x"}},
		},
		{
			name: "consecutive codepoints merge",
			in:   map[uint16]string{1: "A", 2: "B", 3: "C"},
			want: []bfRange{{1, 3, "A"}},
		},
		{
			name: "merge starting at CID zero",
			in:   map[uint16]string{0: "A", 1: "B"},
			want: []bfRange{{0, 1, "A"}},
		},
		{
			name: "CID gap splits",
			in:   map[uint16]string{1: "A", 3: "B"},
			want: []bfRange{{1, 1, "A"}, {3, 3, "B"}},
		},
		{
			name: "codepoint gap splits",
			in:   map[uint16]string{1: "A", 2: "C"},
			want: []bfRange{{1, 1, "A"}, {2, 2, "C"}},
		},
		{
			name: "multi-codepoint value does not get extended",
			in:   map[uint16]string{1: "AB", 2: "C"},
			want: []bfRange{{1, 1, "AB"}, {2, 2, "C"}},
		},
		{
			name: "multi-codepoint value does not extend",
			in:   map[uint16]string{1: "A", 2: "BC"},
			want: []bfRange{{1, 1, "A"}, {2, 2, "BC"}},
		},
		{
			name: "run restarts after gap",
			in:   map[uint16]string{1: "A", 2: "B", 4: "D", 5: "E"},
			want: []bfRange{{1, 2, "A"}, {4, 5, "D"}},
		},
		{
			name: "non-BMP codepoints merge",
			in:   map[uint16]string{1: "\U0001F600", 2: "\U0001F601"},
			want: []bfRange{{1, 2, "\U0001F600"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &Writer{mappings: tc.in}
			got := w.makeRanges()
			if d := cmp.Diff(tc.want, got, cmp.AllowUnexported(bfRange{})); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMakeRangesInsertionOrder(t *testing.T) {
	w := NewWriter()
	for _, cid := range []int{3, 1, 2} {
		if err := w.Add(cid, string(rune('A'+cid-1))); err != nil {
			t.Fatal(err)
		}
	}
	want := []bfRange{{1, 3, "A"}}
	if d := cmp.Diff(want, w.makeRanges(), cmp.AllowUnexported(bfRange{})); d != "" {
		t.Error(d)
	}
}
