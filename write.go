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
	"io"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/postscript"
)

// Write writes the accumulated mappings to out as a complete CMap file.
// The output is 7-bit ASCII; unicode values are encoded as UTF-16BE and
// written in hexadecimal.
//
// Write does not mutate the Writer, so repeated calls produce identical
// output.  Write does not close out.  Output is streamed rather than
// buffered, so if a write fails the data written so far may form a
// truncated CMap.
func (w *Writer) Write(out io.Writer) error {
	data := &cmapData{
		WMode:  w.wMode,
		Ranges: w.makeRanges(),
	}
	return toUnicodeTmpl.Execute(out, data)
}

type cmapData struct {
	WMode  int
	Ranges []bfRange
}

// PostScript interpreters are only required to support 100 entries per
// beginbfrange/endbfrange block.
const chunkSize = 100

func chunks[T any](x []T) [][]T {
	var res [][]T
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func hexString(s string) string {
	var buf []byte
	for _, x := range utf16.Encode([]rune(s)) {
		buf = append(buf, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%X>", buf)
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"PS": func(s string) string {
		x := postscript.String(s)
		return x.PS()
	},
	"PN": func(s string) string {
		x := postscript.Name(s)
		return x.PS()
	},
	"RangeChunks": chunks[bfRange],
	"Range": func(r bfRange) string {
		return fmt.Sprintf("<%04X> <%04X> %s", r.srcFrom, r.srcTo, hexString(r.dst))
	},
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin

begincmap
/CIDSystemInfo
<< /Registry {{PS "Adobe"}}
/Ordering {{PS "UCS"}}
/Supplement 0
>> def

/CMapName {{PN "Adobe-Identity-UCS"}} def
/CMapType 2 def

{{if .WMode -}}
/WMode /{{.WMode}} def
{{end -}}
1 begincodespacerange
<0000> <FFFF>
endcodespacerange

{{range RangeChunks .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{Range .}}
{{end -}}
endbfrange

{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
